package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// DemoAccess is a short-lived grant letting an anonymous visitor try the
// coach chat without an account. Tokens live only in process memory; a
// restart revokes them all, which is acceptable for demo traffic.
type DemoAccess struct {
	Token     string    `json:"token"`
	GrantedAt time.Time `json:"granted_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type DemoTokenRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewDemoTokenRepository(ttl time.Duration) *DemoTokenRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	c := cache.New(ttl, 10*time.Minute)
	return &DemoTokenRepository{
		cache: c,
		ttl:   ttl,
	}
}

func (r *DemoTokenRepository) Issue() *DemoAccess {
	now := time.Now()
	access := &DemoAccess{
		Token:     uuid.NewString(),
		GrantedAt: now,
		ExpiresAt: now.Add(r.ttl),
	}
	r.cache.Set(access.Token, access, cache.DefaultExpiration)
	return access
}

func (r *DemoTokenRepository) Validate(token string) bool {
	_, found := r.cache.Get(token)
	return found
}

func (r *DemoTokenRepository) Revoke(token string) {
	r.cache.Delete(token)
}
