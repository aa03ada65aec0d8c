package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is a broadcast log row. Nothing is delivered anywhere;
// the row records what an admin sent and how many accounts it targeted.
type Notification struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Message     string    `gorm:"not null" json:"message"`
	Target      string    `gorm:"not null" json:"target"`
	TargetCount int64     `gorm:"not null;default:0" json:"target_count"`
	SentAt      time.Time `json:"sent_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (notification *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	return
}
