package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/infogrowkro/growkroweb/internal/helpers"
	"github.com/infogrowkro/growkroweb/internal/logging"
	"github.com/infogrowkro/growkroweb/internal/middleware"
	"github.com/infogrowkro/growkroweb/internal/models"
	"github.com/infogrowkro/growkroweb/internal/payments"
)

type CreateOrderRequest struct {
	PaymentType string `json:"payment_type" binding:"required"`
	PackageID   string `json:"package_id"`
	CreatorID   string `json:"creator_id"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

func CreatePaymentOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gateway := middleware.GetPaymentGateway(c)
	if gateway == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Payment system not configured.")
		return
	}

	gormDB, ok := database(c)
	if !ok {
		return
	}

	metadata := map[string]string{}
	if req.CreatorID != "" {
		metadata["creator_id"] = req.CreatorID
	}

	var amount int64
	switch req.PaymentType {
	case payments.TypeSubscription:
		amount = payments.SubscriptionAmount
	case payments.TypeVerification:
		amount = payments.VerificationAmount
	case payments.TypeHighlightPackage:
		pkg, found := models.FindHighlightPackage(req.PackageID)
		if !found {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid package ID")
			return
		}
		amount = payments.PackageAmount(pkg)
		metadata["package_id"] = pkg.ID
	default:
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid payment type")
		return
	}

	receipt := fmt.Sprintf("rcpt_%d", time.Now().Unix())
	notes := map[string]interface{}{"payment_type": req.PaymentType}
	for key, value := range metadata {
		notes[key] = value
	}

	orderID, err := gateway.CreateOrder(amount, payments.Currency, receipt, notes)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error creating payment order: %v", err))
		return
	}

	transaction := models.PaymentTransaction{
		OrderID:       orderID,
		PaymentType:   req.PaymentType,
		Amount:        amount,
		Currency:      payments.Currency,
		Status:        models.TransactionPending,
		PaymentStatus: models.PaymentCreated,
		Metadata:      metadata,
	}
	if creatorID, err := uuid.Parse(req.CreatorID); err == nil {
		transaction.CreatorID = &creatorID
	}

	if err := gormDB.Create(&transaction).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error recording transaction: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"amount":   amount,
		"currency": payments.Currency,
		"key_id":   gateway.KeyID(),
	})
}

func VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gateway := middleware.GetPaymentGateway(c)
	if gateway == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Payment system not configured.")
		return
	}

	gormDB, ok := database(c)
	if !ok {
		return
	}

	var transaction models.PaymentTransaction
	if err := gormDB.Where("order_id = ?", req.OrderID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Transaction not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching transaction: %v", err))
		return
	}

	if !gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid payment signature")
		return
	}

	updates := map[string]interface{}{
		"status":         models.TransactionCompleted,
		"payment_status": models.PaymentCaptured,
		"payment_id":     req.PaymentID,
	}
	if err := gormDB.Model(&transaction).Updates(updates).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error updating transaction: %v", err))
		return
	}

	// The profile update is deliberately non-transactional with the status
	// write above: a failure here is logged and swallowed, the payment
	// stays completed.
	applyPaymentEffect(gormDB, &transaction)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Payment verified successfully",
		"order_id": transaction.OrderID,
		"status":   models.TransactionCompleted,
	})
}

// applyPaymentEffect dispatches the post-verification side effect by the
// transaction's stored purpose.
func applyPaymentEffect(gormDB *gorm.DB, transaction *models.PaymentTransaction) {
	logger := logging.NewLogger("payments")

	creatorID := transaction.Metadata["creator_id"]

	switch transaction.PaymentType {
	case payments.TypeVerification:
		if creatorID == "" {
			logger.Warn().Str("order_id", transaction.OrderID).Msg("verification payment without creator_id metadata")
			return
		}
		err := gormDB.Model(&models.Creator{}).
			Where("id = ?", creatorID).
			Update("verification_status", true).Error
		if err != nil {
			logger.Error().Err(err).Str("order_id", transaction.OrderID).Msg("failed to mark creator verified")
		}
	case payments.TypeHighlightPackage:
		packageID := transaction.Metadata["package_id"]
		if creatorID == "" || packageID == "" {
			logger.Warn().Str("order_id", transaction.OrderID).Msg("package payment missing creator_id or package_id metadata")
			return
		}
		err := gormDB.Model(&models.Creator{}).
			Where("id = ?", creatorID).
			Update("highlight_package", packageID).Error
		if err != nil {
			logger.Error().Err(err).Str("order_id", transaction.OrderID).Msg("failed to assign highlight package")
		}
	case payments.TypeSubscription:
		// Subscription access is keyed off the transaction record itself.
	}
}

func GetTransaction(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	var transaction models.PaymentTransaction
	if err := gormDB.Where("order_id = ?", c.Param("order_id")).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Transaction not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching transaction: %v", err))
		return
	}

	c.JSON(http.StatusOK, transaction)
}

func GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, payments.PricingTable())
}
