package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/infogrowkro/growkroweb/internal/helpers"
	"github.com/infogrowkro/growkroweb/internal/models"
)

type NotificationRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Target  string `json:"target" binding:"required"`
}

// SendNotification resolves the target audience to a count and persists a
// broadcast log row. There is no delivery channel behind this.
func SendNotification(c *gin.Context) {
	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := database(c)
	if !ok {
		return
	}

	var targetCount int64
	var err error
	switch req.Target {
	case "all":
		var creators, businesses int64
		if err = gormDB.Model(&models.Creator{}).Count(&creators).Error; err == nil {
			err = gormDB.Model(&models.BusinessOwner{}).Count(&businesses).Error
		}
		targetCount = creators + businesses
	case "creators":
		err = gormDB.Model(&models.Creator{}).Count(&targetCount).Error
	case "business_owners":
		err = gormDB.Model(&models.BusinessOwner{}).Count(&targetCount).Error
	case "verified":
		err = gormDB.Model(&models.Creator{}).Where("verification_status = ?", true).Count(&targetCount).Error
	case "premium":
		err = gormDB.Model(&models.Creator{}).Where("highlight_package IS NOT NULL").Count(&targetCount).Error
	default:
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid notification target")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error resolving notification target: %v", err))
		return
	}

	notification := models.Notification{
		Title:       req.Title,
		Message:     req.Message,
		Target:      req.Target,
		TargetCount: targetCount,
		SentAt:      time.Now().UTC(),
	}
	if err := gormDB.Create(&notification).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error recording notification: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notification_id": notification.ID,
		"target_count":    targetCount,
		"message":         "Notification sent successfully",
	})
}

func NotificationHistory(c *gin.Context) {
	gormDB, ok := database(c)
	if !ok {
		return
	}

	limit := helpers.QueryInt(c, "limit", 50)

	var notifications []models.Notification
	err := gormDB.Order("sent_at DESC").Limit(limit).Find(&notifications).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error fetching notifications: %v", err))
		return
	}

	c.JSON(http.StatusOK, notifications)
}
