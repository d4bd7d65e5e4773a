package usecase

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/clinicnet/clinicnet/internal/pkg/database"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "+201555555555"

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Issuer: "clinicnet",
			Patient: models.TokenDomainConfig{
				AccessSecret:  "patient-access-secret",
				RefreshSecret: "patient-refresh-secret",
				AccessTTL:     time.Hour,
				RefreshTTL:    24 * time.Hour,
			},
			Staff: models.TokenDomainConfig{
				AccessSecret:  "staff-access-secret",
				RefreshSecret: "staff-refresh-secret",
				AccessTTL:     7 * 24 * time.Hour,
				RefreshTTL:    30 * 24 * time.Hour,
			},
		},
		OTP: models.OTPConfig{
			Length:      6,
			TTL:         300 * time.Second,
			MaxAttempts: 3,
		},
		RateLimit: models.RateLimitConfig{
			Cooldown:    60 * time.Second,
			Window:      time.Hour,
			MaxRequests: 3,
		},
		Phone: models.PhoneConfig{DefaultRegion: "EG"},
	}
}

func newTestStore(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, &database.RedisClient{Client: client}
}

func requireAppError(t *testing.T, err error, kind models.ErrorKind) *models.AppError {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
	return appErr
}

// otherCode returns a well-formed code different from code
func otherCode(code string) string {
	if code == "000000" {
		return "111111"
	}
	return "000000"
}
