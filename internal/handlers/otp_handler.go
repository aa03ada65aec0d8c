package handlers

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/infogrowkro/growkroweb/internal/helpers"
	"github.com/infogrowkro/growkroweb/internal/models"
)

const (
	otpLength   = 6
	otpValidity = 10 * time.Minute
	otpCharset  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func generateOTPCode() (string, error) {
	code := make([]byte, otpLength)
	for i := range code {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(otpCharset))))
		if err != nil {
			return "", err
		}
		code[i] = otpCharset[index.Int64()]
	}
	return string(code), nil
}

// SendOTP issues a fresh code for an email. The code is returned in the
// response because there is no mail channel wired up.
func SendOTP(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Email is required")
		return
	}

	gormDB, ok := database(c)
	if !ok {
		return
	}

	code, err := generateOTPCode()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error generating OTP: %v", err))
		return
	}

	otp := models.OTP{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(otpValidity),
	}
	if err := gormDB.Create(&otp).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error storing OTP: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "OTP sent successfully",
		"otp":                code,
		"expires_in_minutes": int(otpValidity.Minutes()),
	})
}

// VerifyOTP checks code equality, the consumed flag, and the expiry, and
// burns the code on success.
func VerifyOTP(c *gin.Context) {
	email := c.Query("email")
	code := c.Query("otp")
	if email == "" || code == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Email and OTP are required")
		return
	}

	gormDB, ok := database(c)
	if !ok {
		return
	}

	var otp models.OTP
	err := gormDB.Where("email = ? AND code = ?", email, code).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid OTP")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error verifying OTP: %v", err))
		return
	}

	if otp.Consumed {
		helpers.RespondWithError(c, http.StatusBadRequest, "OTP already used")
		return
	}
	if otp.Expired(time.Now().UTC()) {
		helpers.RespondWithError(c, http.StatusBadRequest, "OTP expired")
		return
	}

	if err := gormDB.Model(&otp).Update("consumed", true).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error consuming OTP: %v", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}
