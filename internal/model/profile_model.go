package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TierFree    = "free"
	TierPremium = "premium"
)

// Profile mirrors the managed auth provider's user row with the billing
// fields this service owns. Id equals the auth provider's user id.
type Profile struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email            string     `gorm:"type:text;index"`
	SubscriptionTier string     `gorm:"type:text;not null;default:'free'"`
	TrialStartDate   *time.Time `gorm:""`
	MidtransOrderId  string     `gorm:"type:text"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
