package config

import (
	"testing"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *models.Config {
	cfg := loadConfigFromEnv()
	cfg.JWT.Patient.AccessSecret = "patient-access"
	cfg.JWT.Patient.RefreshSecret = "patient-refresh"
	cfg.JWT.Staff.AccessSecret = "staff-access"
	cfg.JWT.Staff.RefreshSecret = "staff-refresh"
	return cfg
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, 6, cfg.OTP.Length)
	assert.Equal(t, 300*time.Second, cfg.OTP.TTL)
	assert.Equal(t, 3, cfg.OTP.MaxAttempts)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.Cooldown)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
	assert.Equal(t, 3, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "mock", cfg.SMS.Provider)
	assert.Equal(t, 10*time.Second, cfg.SMS.SendTimeout)
	assert.Equal(t, "EG", cfg.Phone.DefaultRegion)
	assert.Equal(t, "clinicnet", cfg.JWT.Issuer)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Staff.AccessTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.Staff.RefreshTTL)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("OTP_COOLDOWN", "90")
	t.Setenv("JWT_PATIENT_EXPIRES_IN", "1d")
	t.Setenv("SMS_SEND_TIMEOUT", "2500ms")
	t.Setenv("SMS_PROVIDER", "twilio")
	t.Setenv("OTP_MAX_ATTEMPTS", "not-a-number")

	cfg := loadConfigFromEnv()

	assert.Equal(t, 90*time.Second, cfg.RateLimit.Cooldown)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Patient.AccessTTL)
	assert.Equal(t, 2500*time.Millisecond, cfg.SMS.SendTimeout)
	assert.Equal(t, "twilio", cfg.SMS.Provider)
	assert.Equal(t, 3, cfg.OTP.MaxAttempts)
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, Validate(validConfig()))
	})

	t.Run("missing secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWT.Staff.RefreshSecret = ""

		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_STAFF_REFRESH_SECRET")
	})

	t.Run("patient and staff share a secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWT.Staff.AccessSecret = cfg.JWT.Patient.AccessSecret

		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not share a secret")
	})

	t.Run("access and refresh share a secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWT.Patient.RefreshSecret = cfg.JWT.Patient.AccessSecret

		assert.Error(t, Validate(cfg))
	})
}

func TestParseDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"60":    60 * time.Second,
		"7d":    7 * 24 * time.Hour,
		"15m":   15 * time.Minute,
		"500ms": 500 * time.Millisecond,
	}
	for in, want := range cases {
		got, err := parseDuration(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseDuration("xd")
	assert.Error(t, err)
}
