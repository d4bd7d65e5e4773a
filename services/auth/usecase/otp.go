package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/constants"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/clinicnet/clinicnet/services/auth"
)

// OTPManager owns the code and attempt counter of each phone. Phones must
// already be normalized.
type OTPManager struct {
	store       auth.CacheStore
	length      int
	ttl         time.Duration
	maxAttempts int64
	space       *big.Int
}

// NewOTPManager creates an OTP manager backed by store
func NewOTPManager(store auth.CacheStore, cfg models.OTPConfig) *OTPManager {
	return &OTPManager{
		store:       store,
		length:      cfg.Length,
		ttl:         cfg.TTL,
		maxAttempts: int64(cfg.MaxAttempts),
		space:       new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(cfg.Length)), nil),
	}
}

// Generate returns a zero-padded numeric code drawn from crypto/rand
func (m *OTPManager) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, m.space)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%0*d", m.length, n.Int64()), nil
}

// Store saves code for phone, replacing any previous one
func (m *OTPManager) Store(ctx context.Context, phone, code string) error {
	if err := m.store.Set(ctx, codeKey(phone), code, m.ttl); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// Verify checks code against the active code for phone. A match consumes the
// code. Once maxAttempts comparisons were made the phone is locked out until
// the attempt counter expires with the code.
func (m *OTPManager) Verify(ctx context.Context, phone, code string) (bool, error) {
	attemptsKey := attemptsKey(phone)

	raw, found, err := m.store.Get(ctx, attemptsKey)
	if err != nil {
		return false, fmt.Errorf("failed to read OTP attempts: %w", err)
	}
	if found {
		attempts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return false, fmt.Errorf("corrupt OTP attempts counter %q: %w", raw, err)
		}
		if attempts >= m.maxAttempts {
			return false, nil
		}
	}

	stored, found, err := m.store.Get(ctx, codeKey(phone))
	if err != nil {
		return false, fmt.Errorf("failed to read OTP: %w", err)
	}
	if !found {
		return false, nil
	}

	attempts, err := m.store.Incr(ctx, attemptsKey)
	if err != nil {
		return false, fmt.Errorf("failed to count OTP attempt: %w", err)
	}
	if attempts == 1 {
		if err := m.bindAttemptsToCode(ctx, phone); err != nil {
			return false, err
		}
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}

	if _, err := m.store.Del(ctx, codeKey(phone), attemptsKey); err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}
	return true, nil
}

// bindAttemptsToCode gives the attempts counter the remaining life of the code
func (m *OTPManager) bindAttemptsToCode(ctx context.Context, phone string) error {
	remaining, err := m.store.TTL(ctx, codeKey(phone))
	if err != nil {
		return fmt.Errorf("failed to read OTP ttl: %w", err)
	}

	var ttl time.Duration
	switch {
	case remaining == auth.TTLNoExpiry:
		ttl = m.ttl
	case remaining > 0:
		ttl = time.Duration(remaining) * time.Second
	default:
		// under a second left, or the code expired since it was read
		ttl = time.Second
	}

	if _, err := m.store.Expire(ctx, attemptsKey(phone), ttl); err != nil {
		return fmt.Errorf("failed to expire OTP attempts: %w", err)
	}
	return nil
}

// Exists reports whether phone has an active code
func (m *OTPManager) Exists(ctx context.Context, phone string) (bool, error) {
	return m.store.Exists(ctx, codeKey(phone))
}

// RemainingTTL returns the seconds left on the active code, or a negative
// value when there is none
func (m *OTPManager) RemainingTTL(ctx context.Context, phone string) (int64, error) {
	return m.store.TTL(ctx, codeKey(phone))
}

// Delete removes the code and its attempt counter
func (m *OTPManager) Delete(ctx context.Context, phone string) error {
	_, err := m.store.Del(ctx, codeKey(phone), attemptsKey(phone))
	return err
}

// Attempts returns the number of comparisons made against the active code
func (m *OTPManager) Attempts(ctx context.Context, phone string) (int64, error) {
	raw, found, err := m.store.Get(ctx, attemptsKey(phone))
	if err != nil || !found {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

func codeKey(phone string) string {
	return fmt.Sprintf(constants.KeyOTPCode, phone)
}

func attemptsKey(phone string) string {
	return fmt.Sprintf(constants.KeyOTPAttempts, phone)
}
