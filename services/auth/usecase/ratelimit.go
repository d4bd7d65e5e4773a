package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/constants"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/clinicnet/clinicnet/services/auth"
)

// RateLimiter holds the two OTP request gates of a phone: a short cooldown
// between dispatches and a fixed hourly window anchored at the first dispatch.
type RateLimiter struct {
	store       auth.CacheStore
	cooldown    time.Duration
	window      time.Duration
	maxRequests int64
	now         func() time.Time
}

// NewRateLimiter creates a rate limiter backed by store
func NewRateLimiter(store auth.CacheStore, cfg models.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		store:       store,
		cooldown:    cfg.Cooldown,
		window:      cfg.Window,
		maxRequests: int64(cfg.MaxRequests),
		now:         time.Now,
	}
}

// CheckCooldown reports whether phone may request a code now
func (r *RateLimiter) CheckCooldown(ctx context.Context, phone string) (models.CooldownStatus, error) {
	ttl, err := r.store.TTL(ctx, cooldownKey(phone))
	if err != nil {
		return models.CooldownStatus{}, fmt.Errorf("failed to read cooldown: %w", err)
	}

	switch ttl {
	case auth.TTLKeyMissing:
		return models.CooldownStatus{Allowed: true}, nil
	case auth.TTLNoExpiry:
		// a marker without expiry would block the phone forever
		if _, err := r.store.Expire(ctx, cooldownKey(phone), r.cooldown); err != nil {
			return models.CooldownStatus{}, fmt.Errorf("failed to repair cooldown: %w", err)
		}
		return models.CooldownStatus{RemainingSeconds: int(r.cooldown / time.Second)}, nil
	case 0:
		return models.CooldownStatus{RemainingSeconds: 1}, nil
	default:
		return models.CooldownStatus{RemainingSeconds: int(ttl)}, nil
	}
}

// SetCooldown starts the cooldown of phone
func (r *RateLimiter) SetCooldown(ctx context.Context, phone string) error {
	if err := r.store.Set(ctx, cooldownKey(phone), "1", r.cooldown); err != nil {
		return fmt.Errorf("failed to set cooldown: %w", err)
	}
	return nil
}

// CheckRateLimit reports whether phone has dispatches left in its window.
// ResetAt is derived from the counter's own expiry.
func (r *RateLimiter) CheckRateLimit(ctx context.Context, phone string) (models.RateLimitStatus, error) {
	key := rateKey(phone)

	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return models.RateLimitStatus{}, fmt.Errorf("failed to read rate limit: %w", err)
	}

	var count int64
	if found {
		count, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.RateLimitStatus{}, fmt.Errorf("corrupt rate limit counter %q: %w", raw, err)
		}
	}

	status := models.RateLimitStatus{Allowed: count < r.maxRequests}
	if status.Allowed {
		status.Remaining = int(r.maxRequests - count - 1)
	}

	if count > 0 {
		ttl, err := r.store.TTL(ctx, key)
		if err != nil {
			return models.RateLimitStatus{}, fmt.Errorf("failed to read rate limit ttl: %w", err)
		}
		if ttl >= 0 {
			resetAt := r.now().Add(time.Duration(ttl) * time.Second)
			status.ResetAt = &resetAt
		}
	}

	return status, nil
}

// Increment records one dispatch. The window starts on the first one.
func (r *RateLimiter) Increment(ctx context.Context, phone string) error {
	key := rateKey(phone)

	count, err := r.store.Incr(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to increment rate limit: %w", err)
	}
	if count == 1 {
		if _, err := r.store.Expire(ctx, key, r.window); err != nil {
			return fmt.Errorf("failed to start rate limit window: %w", err)
		}
	}
	return nil
}

// Reset clears both gates of phone
func (r *RateLimiter) Reset(ctx context.Context, phone string) error {
	if _, err := r.store.Del(ctx, cooldownKey(phone), rateKey(phone)); err != nil {
		return fmt.Errorf("failed to reset rate limits: %w", err)
	}
	return nil
}

func cooldownKey(phone string) string {
	return fmt.Sprintf(constants.KeyOTPCooldown, phone)
}

func rateKey(phone string) string {
	return fmt.Sprintf(constants.KeyOTPRate, phone)
}
