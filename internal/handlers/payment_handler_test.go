package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infogrowkro/growkroweb/internal/models"
	"github.com/infogrowkro/growkroweb/internal/server"
)

func createOrder(t *testing.T, r *gin.Engine, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	w := performRequest(r, http.MethodPost, "/api/payments/create-order", body, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order map[string]interface{}
	decode(t, w, &order)
	return order
}

func TestCreateOrder_Subscription(t *testing.T) {
	r, db, _ := newTestRouter(t)

	order := createOrder(t, r, map[string]interface{}{"payment_type": "subscription"})
	assert.Equal(t, float64(4900), order["amount"])
	assert.Equal(t, "INR", order["currency"])
	assert.Equal(t, "rzp_test_growkro", order["key_id"])
	assert.NotEmpty(t, order["order_id"])

	var transaction models.PaymentTransaction
	require.NoError(t, db.Where("order_id = ?", order["order_id"]).First(&transaction).Error)
	assert.Equal(t, models.TransactionPending, transaction.Status)
	assert.Equal(t, models.PaymentCreated, transaction.PaymentStatus)
	assert.Equal(t, "subscription", transaction.PaymentType)
}

func TestCreateOrder_PackageAmounts(t *testing.T) {
	r, db, _ := newTestRouter(t)
	creator := seedCreator(t, db, &models.Creator{InstagramFollowers: 150000})

	for packageID, amount := range map[string]float64{
		"silver":   199900,
		"gold":     499900,
		"platinum": 999900,
	} {
		order := createOrder(t, r, map[string]interface{}{
			"payment_type": "highlight_package",
			"package_id":   packageID,
			"creator_id":   creator.ID.String(),
		})
		assert.Equal(t, amount, order["amount"], packageID)
	}
}

func TestCreateOrder_Rejections(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/payments/create-order", map[string]interface{}{
		"payment_type": "invalid_type",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodPost, "/api/payments/create-order", map[string]interface{}{
		"payment_type": "highlight_package",
		"package_id":   "diamond",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodPost, "/api/payments/create-order", map[string]interface{}{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_GatewayUnconfigured(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	db := newTestDB(t)

	r := gin.New()
	server.SetupRoutes(r, db, nil)

	w := performRequest(r, http.MethodPost, "/api/payments/create-order", map[string]interface{}{
		"payment_type": "subscription",
	}, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Payment system not configured")
}

func TestVerifyPayment_FabricatedSignature(t *testing.T) {
	r, db, _ := newTestRouter(t)

	order := createOrder(t, r, map[string]interface{}{"payment_type": "subscription"})
	orderID := order["order_id"].(string)

	w := performRequest(r, http.MethodPost, "/api/payments/verify", map[string]interface{}{
		"order_id":   orderID,
		"payment_id": "pay_test123",
		"signature":  "fabricated",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid payment signature")

	// The transaction must not have advanced.
	var transaction models.PaymentTransaction
	require.NoError(t, db.Where("order_id = ?", orderID).First(&transaction).Error)
	assert.Equal(t, models.TransactionPending, transaction.Status)
}

func TestVerifyPayment_UnknownOrder(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/payments/verify", map[string]interface{}{
		"order_id":   "order_missing",
		"payment_id": "pay_test123",
		"signature":  "whatever",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyPayment_VerificationPurpose(t *testing.T) {
	r, db, gateway := newTestRouter(t)
	creator := seedCreator(t, db, &models.Creator{})

	order := createOrder(t, r, map[string]interface{}{
		"payment_type": "verification",
		"creator_id":   creator.ID.String(),
	})
	assert.Equal(t, float64(19900), order["amount"])
	orderID := order["order_id"].(string)

	w := performRequest(r, http.MethodPost, "/api/payments/verify", map[string]interface{}{
		"order_id":   orderID,
		"payment_id": "pay_test456",
		"signature":  signFor(gateway.secret, orderID, "pay_test456"),
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var transaction models.PaymentTransaction
	require.NoError(t, db.Where("order_id = ?", orderID).First(&transaction).Error)
	assert.Equal(t, models.TransactionCompleted, transaction.Status)
	assert.Equal(t, models.PaymentCaptured, transaction.PaymentStatus)
	assert.Equal(t, "pay_test456", transaction.PaymentID)

	var updated models.Creator
	require.NoError(t, db.Where("id = ?", creator.ID).First(&updated).Error)
	assert.True(t, updated.VerificationStatus)
}

func TestVerifyPayment_PackagePurpose(t *testing.T) {
	r, db, gateway := newTestRouter(t)
	creator := seedCreator(t, db, &models.Creator{InstagramFollowers: 45000})

	order := createOrder(t, r, map[string]interface{}{
		"payment_type": "highlight_package",
		"package_id":   "silver",
		"creator_id":   creator.ID.String(),
	})
	orderID := order["order_id"].(string)

	w := performRequest(r, http.MethodPost, "/api/payments/verify", map[string]interface{}{
		"order_id":   orderID,
		"payment_id": "pay_test789",
		"signature":  signFor(gateway.secret, orderID, "pay_test789"),
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Creator
	require.NoError(t, db.Where("id = ?", creator.ID).First(&updated).Error)
	require.NotNil(t, updated.HighlightPackage)
	assert.Equal(t, "silver", *updated.HighlightPackage)
}

func TestGetTransaction(t *testing.T) {
	r, _, _ := newTestRouter(t)

	order := createOrder(t, r, map[string]interface{}{"payment_type": "subscription"})
	orderID := order["order_id"].(string)

	w := performRequest(r, http.MethodGet, "/api/payments/transaction/"+orderID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var transaction map[string]interface{}
	decode(t, w, &transaction)
	assert.Equal(t, orderID, transaction["order_id"])
	assert.Equal(t, "subscription", transaction["payment_type"])
	assert.Equal(t, float64(4900), transaction["amount"])

	w = performRequest(r, http.MethodGet, "/api/payments/transaction/order_fake123", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPricing(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := performRequest(r, http.MethodGet, "/api/payments/pricing", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var pricing map[string]map[string]map[string]interface{}
	decode(t, w, &pricing)

	annual := pricing["subscription"]["annual"]
	assert.Equal(t, float64(4900), annual["amount"])
	assert.Equal(t, float64(49), annual["amount_inr"])

	profile := pricing["verification"]["profile"]
	assert.Equal(t, float64(19900), profile["amount"])
	assert.Equal(t, float64(199), profile["amount_inr"])

	for packageID, want := range map[string][2]float64{
		"silver":   {199900, 1999},
		"gold":     {499900, 4999},
		"platinum": {999900, 9999},
	} {
		pkg := pricing["highlight_packages"][packageID]
		assert.Equal(t, want[0], pkg["amount"], packageID)
		assert.Equal(t, want[1], pkg["amount_inr"], packageID)
	}
}
