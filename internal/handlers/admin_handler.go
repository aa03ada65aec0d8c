package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/infogrowkro/growkroweb/internal/helpers"
	"github.com/infogrowkro/growkroweb/internal/models"
	"github.com/infogrowkro/growkroweb/internal/payments"
)

type ApprovalRequest struct {
	Action string `json:"action" binding:"required"`
	Notes  string `json:"notes"`
}

// Action tokens map straight onto target statuses; any action is legal
// from any prior status.
var approvalActions = map[string]struct {
	status string
	past   string
}{
	"approve":  {models.StatusApproved, "approved"},
	"reject":   {models.StatusRejected, "rejected"},
	"suspend":  {models.StatusSuspended, "suspended"},
	"activate": {models.StatusApproved, "activated"},
}

func ApproveCreator(c *gin.Context) {
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	action, known := approvalActions[req.Action]
	if !known {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid action. Use approve, reject, suspend or activate.")
		return
	}

	gormDB, ok := database(c)
	if !ok {
		return
	}

	var creator models.Creator
	if err := gormDB.Where("id = ?", c.Param("id")).First(&creator).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Creator not found")
		return
	}

	updates := map[string]interface{}{
		"profile_status": action.status,
		"admin_notes":    req.Notes,
	}
	if err := gormDB.Model(&creator).Updates(updates).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error updating creator status: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        fmt.Sprintf("Creator %s successfully", action.past),
		"profile_status": action.status,
	})
}

func ListPendingCreators(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	var creators []models.Creator
	err := gormDB.Where("profile_status = ?", models.StatusPending).
		Order("created_at ASC").
		Find(&creators).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching pending creators: %v", err))
		return
	}

	c.JSON(http.StatusOK, creators)
}

func AdminUserStats(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	counts := map[string]int64{}
	for label, condition := range map[string]interface{}{
		"total_creators":     nil,
		"pending_approval":   map[string]interface{}{"profile_status": models.StatusPending},
		"approved_creators":  map[string]interface{}{"profile_status": models.StatusApproved},
		"rejected_creators":  map[string]interface{}{"profile_status": models.StatusRejected},
		"suspended_creators": map[string]interface{}{"profile_status": models.StatusSuspended},
		"verified_creators":  map[string]interface{}{"verification_status": true},
	} {
		query := gormDB.Model(&models.Creator{})
		if condition != nil {
			query = query.Where(condition)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching user stats: %v", err))
			return
		}
		counts[label] = count
	}

	c.JSON(http.StatusOK, counts)
}

func FinancialTransactions(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	limit := helpers.QueryInt(c, "limit", 20)
	page := helpers.QueryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}

	var total int64
	if err := gormDB.Model(&models.PaymentTransaction{}).Count(&total).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching transactions: %v", err))
		return
	}

	var transactions []models.PaymentTransaction
	err := gormDB.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&transactions).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching transactions: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
		"total":        total,
		"page":         page,
	})
}

func RevenueStats(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	var completed []models.PaymentTransaction
	err := gormDB.Where("status = ?", models.TransactionCompleted).Find(&completed).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching revenue: %v", err))
		return
	}

	// Linear scan over completed transactions, recomputed per call.
	var totalPaise, subscriptionPaise, verificationPaise, packagePaise int64
	for _, transaction := range completed {
		totalPaise += transaction.Amount
		switch transaction.PaymentType {
		case payments.TypeSubscription:
			subscriptionPaise += transaction.Amount
		case payments.TypeVerification:
			verificationPaise += transaction.Amount
		case payments.TypeHighlightPackage:
			packagePaise += transaction.Amount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_revenue":        payments.Rupees(totalPaise),
		"subscription_revenue": payments.Rupees(subscriptionPaise),
		"verification_revenue": payments.Rupees(verificationPaise),
		"package_revenue":      payments.Rupees(packagePaise),
		"total_transactions":   len(completed),
	})
}

func AnalyticsDashboard(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	var firstErr error
	count := func(query *gorm.DB) int64 {
		var n int64
		if err := query.Count(&n).Error; err != nil && firstErr == nil {
			firstErr = err
		}
		return n
	}

	totalCreators := count(gormDB.Model(&models.Creator{}))
	active := count(gormDB.Model(&models.Creator{}).Where("profile_status = ?", models.StatusApproved))
	pending := count(gormDB.Model(&models.Creator{}).Where("profile_status = ?", models.StatusPending))
	verified := count(gormDB.Model(&models.Creator{}).Where("verification_status = ?", true))
	premium := count(gormDB.Model(&models.Creator{}).Where("highlight_package IS NOT NULL"))
	transactionCount := count(gormDB.Model(&models.PaymentTransaction{}).Where("status = ?", models.TransactionCompleted))

	var revenuePaise int64
	row := gormDB.Model(&models.PaymentTransaction{}).
		Where("status = ?", models.TransactionCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&revenuePaise); err != nil && firstErr == nil {
		firstErr = err
	}

	if firstErr != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error building dashboard: %v", firstErr))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_growth": gin.H{
			"total_creators":   totalCreators,
			"active_creators":  active,
			"pending_creators": pending,
		},
		"revenue_metrics": gin.H{
			"total_revenue":     payments.Rupees(revenuePaise),
			"transaction_count": transactionCount,
		},
		"engagement_metrics": gin.H{
			"verified_creators": verified,
			"premium_creators":  premium,
		},
	})
}

// ContentReports serves placeholder moderation counters; only the pending
// review queue is backed by real data.
func ContentReports(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	var pending int64
	err := gormDB.Model(&models.Creator{}).
		Where("profile_status = ?", models.StatusPending).
		Count(&pending).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching content reports: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"spam_reports":       0,
		"flagged_profiles":   0,
		"content_violations": 0,
		"pending_reviews":    pending,
	})
}
