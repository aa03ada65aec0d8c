package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile lifecycle statuses shared by creators and business owners.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusSuspended = "suspended"
)

type Creator struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Email              string    `gorm:"unique;not null" json:"email"`
	Bio                string    `json:"bio"`
	InstagramHandle    string    `json:"instagram_handle"`
	InstagramFollowers int       `gorm:"not null;default:0" json:"instagram_followers"`
	YoutubeHandle      string    `json:"youtube_handle"`
	YoutubeSubscribers int       `gorm:"not null;default:0" json:"youtube_subscribers"`
	TwitterHandle      string    `json:"twitter_handle"`
	TwitterFollowers   int       `gorm:"not null;default:0" json:"twitter_followers"`
	TiktokHandle       string    `json:"tiktok_handle"`
	TiktokFollowers    int       `gorm:"not null;default:0" json:"tiktok_followers"`
	SnapchatHandle     string    `json:"snapchat_handle"`
	SnapchatFollowers  int       `gorm:"not null;default:0" json:"snapchat_followers"`
	HighlightPackage   *string   `json:"highlight_package"`
	VerificationStatus bool      `gorm:"not null;default:false" json:"verification_status"`
	ProfilePicture     string    `json:"profile_picture"`
	Location           string    `json:"location"`
	Category           string    `json:"category"`
	ProfileStatus      string    `gorm:"not null;default:'pending'" json:"profile_status"`
	AdminNotes         string    `json:"admin_notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (creator *Creator) BeforeCreate(tx *gorm.DB) (err error) {
	if creator.ID == uuid.Nil {
		creator.ID = uuid.New()
	}
	return
}

// TotalFollowers sums the audience across every linked platform.
func (creator *Creator) TotalFollowers() int {
	return creator.InstagramFollowers +
		creator.YoutubeSubscribers +
		creator.TwitterFollowers +
		creator.TiktokFollowers +
		creator.SnapchatFollowers
}
