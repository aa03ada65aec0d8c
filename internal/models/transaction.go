package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Local transaction statuses.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
	TransactionCancelled = "cancelled"
)

// Provider-side status mirror.
const (
	PaymentCreated    = "created"
	PaymentAuthorized = "authorized"
	PaymentCaptured   = "captured"
	PaymentRefunded   = "refunded"
	PaymentFailed     = "failed"
)

// PaymentTransaction mirrors one provider order through its lifecycle.
// Rows are never deleted.
type PaymentTransaction struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CreatorID     *uuid.UUID        `gorm:"type:uuid;index" json:"creator_id"`
	OrderID       string            `gorm:"unique;not null" json:"order_id"`
	PaymentID     string            `json:"payment_id"`
	PaymentType   string            `gorm:"not null" json:"payment_type"`
	Amount        int64             `gorm:"not null" json:"amount"`
	Currency      string            `gorm:"not null;default:'INR'" json:"currency"`
	Status        string            `gorm:"not null;default:'pending'" json:"status"`
	PaymentStatus string            `gorm:"not null;default:'created'" json:"payment_status"`
	Metadata      map[string]string `gorm:"serializer:json" json:"metadata"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (transaction *PaymentTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	return
}
