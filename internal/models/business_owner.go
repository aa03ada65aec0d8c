package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessOwner struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Email              string    `gorm:"unique;not null" json:"email"`
	CompanyName        string    `gorm:"not null" json:"company_name"`
	CompanyDescription string    `json:"company_description"`
	Industry           string    `gorm:"not null" json:"industry"`
	Location           string    `json:"location"`
	BudgetRange        string    `json:"budget_range"`
	CollaborationType  string    `gorm:"not null" json:"collaboration_type"`
	TargetAudience     string    `json:"target_audience"`
	PreferredPlatforms []string  `gorm:"serializer:json" json:"preferred_platforms"`
	MinFollowers       int       `gorm:"not null;default:0" json:"min_followers"`
	MaxFollowers       int       `gorm:"not null;default:0" json:"max_followers"`
	ContactPhone       string    `json:"contact_phone"`
	Website            string    `json:"website"`
	ProfileStatus      string    `gorm:"not null;default:'pending'" json:"profile_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (owner *BusinessOwner) BeforeCreate(tx *gorm.DB) (err error) {
	if owner.ID == uuid.Nil {
		owner.ID = uuid.New()
	}
	return
}
