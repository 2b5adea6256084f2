package dto

import "time"

type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=monthly yearly"`
}

type CheckoutResponse struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

type SubscriptionStatusResponse struct {
	Tier           string     `json:"tier"`
	TrialStartDate *time.Time `json:"trial_start_date,omitempty"`
	TrialExpired   bool       `json:"trial_expired"`
}

type DemoAccessResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
