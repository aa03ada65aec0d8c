package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Collaboration request statuses.
const (
	CollaborationPending   = "pending"
	CollaborationAccepted  = "accepted"
	CollaborationRejected  = "rejected"
	CollaborationCompleted = "completed"
	CollaborationCancelled = "cancelled"
)

// CollaborationRequest links one business owner to one creator for a campaign.
type CollaborationRequest struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BusinessOwnerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"business_owner_id"`
	CreatorID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"creator_id"`
	CampaignTitle       string          `gorm:"not null" json:"campaign_title"`
	CampaignDescription string          `json:"campaign_description"`
	CollaborationType   string          `gorm:"not null" json:"collaboration_type"`
	BudgetAmount        decimal.Decimal `gorm:"type:numeric" json:"budget_amount"`
	DurationDays        int             `gorm:"not null;default:0" json:"duration_days"`
	Requirements        []string        `gorm:"serializer:json" json:"requirements"`
	Status              string          `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func (request *CollaborationRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	return
}
