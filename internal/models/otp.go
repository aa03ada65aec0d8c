package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTP is a short-lived email verification code. Codes expire on a wall
// clock and burn on first successful verification.
type OTP struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"not null;index" json:"email"`
	Code      string    `gorm:"not null" json:"code"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Consumed  bool      `gorm:"not null;default:false" json:"consumed"`
	CreatedAt time.Time `json:"created_at"`
}

func (OTP) TableName() string {
	return "otps"
}

func (otp *OTP) BeforeCreate(tx *gorm.DB) (err error) {
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}
	return
}

// Expired reports whether the code is past its validity window.
func (otp *OTP) Expired(now time.Time) bool {
	return now.After(otp.ExpiresAt)
}
