package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	TierFree    = "free"
	TierPremium = "premium"

	// TrialWindow is how long a free-tier account can generate calendars.
	TrialWindowHours = 48
)

type Profile struct {
	Id               uuid.UUID
	Email            string
	SubscriptionTier string
	TrialStartDate   *time.Time
	MidtransOrderId  string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// TrialExpired reports whether a free-tier profile's trial window has passed.
// Premium profiles never expire.
func (p *Profile) TrialExpired(now time.Time) bool {
	if p.SubscriptionTier != TierFree {
		return false
	}
	if p.TrialStartDate == nil {
		return true
	}
	return now.Sub(*p.TrialStartDate) > TrialWindowHours*time.Hour
}
