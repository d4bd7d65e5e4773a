package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var v = newViper()

func newViper() *viper.Viper {
	vp := viper.New()
	vp.AutomaticEnv()
	return vp
}

// InitConfig loads configuration from the environment. In local mode the .env
// file at configPath is loaded first. CONFIG_FILE may point at an extra YAML/JSON
// file whose keys are overridden by environment variables.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("error reading config file %s: %v", file, err)
		}
	}

	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "clinicnet-auth")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "development")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 4000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "clinicnet")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config
	configs.NSQ.Enabled = GetEnvAsBool("NSQ_ENABLED", false)
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "localhost:4150")

	// JWT config
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "clinicnet")
	configs.JWT.Staff.AccessSecret = GetEnv("JWT_STAFF_SECRET", "")
	configs.JWT.Staff.RefreshSecret = GetEnv("JWT_STAFF_REFRESH_SECRET", "")
	configs.JWT.Staff.AccessTTL = GetEnvAsDuration("JWT_STAFF_EXPIRES_IN", 7*24*time.Hour)
	configs.JWT.Staff.RefreshTTL = GetEnvAsDuration("JWT_STAFF_REFRESH_EXPIRES_IN", 30*24*time.Hour)
	configs.JWT.Patient.AccessSecret = GetEnv("JWT_PATIENT_SECRET", "")
	configs.JWT.Patient.RefreshSecret = GetEnv("JWT_PATIENT_REFRESH_SECRET", "")
	configs.JWT.Patient.AccessTTL = GetEnvAsDuration("JWT_PATIENT_EXPIRES_IN", 7*24*time.Hour)
	configs.JWT.Patient.RefreshTTL = GetEnvAsDuration("JWT_PATIENT_REFRESH_EXPIRES_IN", 30*24*time.Hour)

	// OTP config
	configs.OTP.Length = GetEnvAsInt("OTP_LENGTH", 6)
	configs.OTP.TTL = GetEnvAsDuration("OTP_TTL", 300*time.Second)
	configs.OTP.MaxAttempts = GetEnvAsInt("OTP_MAX_ATTEMPTS", 3)

	// Rate limit config
	configs.RateLimit.Cooldown = GetEnvAsDuration("OTP_COOLDOWN", 60*time.Second)
	configs.RateLimit.Window = GetEnvAsDuration("OTP_RATE_WINDOW", time.Hour)
	configs.RateLimit.MaxRequests = GetEnvAsInt("OTP_RATE_MAX_REQUESTS", 3)
	configs.RateLimit.IPLimit = GetEnvAsInt("AUTH_IP_RATE_LIMIT", 30)
	configs.RateLimit.IPPeriod = GetEnvAsDuration("AUTH_IP_RATE_PERIOD", time.Minute)

	// SMS config
	configs.SMS.Provider = GetEnv("SMS_PROVIDER", "mock")
	configs.SMS.SendTimeout = GetEnvAsDuration("SMS_SEND_TIMEOUT", 10*time.Second)
	configs.SMS.MockDelay = GetEnvAsDuration("SMS_MOCK_DELAY", 500*time.Millisecond)
	configs.SMS.MockSuccessRate = GetEnvAsFloat("SMS_MOCK_SUCCESS_RATE", 0.95)
	configs.SMS.Twilio.AccountSID = GetEnv("TWILIO_ACCOUNT_SID", "")
	configs.SMS.Twilio.AuthToken = GetEnv("TWILIO_AUTH_TOKEN", "")
	configs.SMS.Twilio.FromNumber = GetEnv("TWILIO_PHONE_NUMBER", "")
	configs.SMS.Twilio.BaseURL = GetEnv("TWILIO_BASE_URL", "https://api.twilio.com")

	// Phone config
	configs.Phone.DefaultRegion = GetEnv("PHONE_DEFAULT_REGION", "EG")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Validate rejects configurations that would make token signing unsafe. The
// four signing secrets must be set and pairwise distinct so that no token from
// one trust domain or kind can verify in another.
func Validate(cfg *models.Config) error {
	secrets := map[string]string{
		"JWT_PATIENT_SECRET":         cfg.JWT.Patient.AccessSecret,
		"JWT_PATIENT_REFRESH_SECRET": cfg.JWT.Patient.RefreshSecret,
		"JWT_STAFF_SECRET":           cfg.JWT.Staff.AccessSecret,
		"JWT_STAFF_REFRESH_SECRET":   cfg.JWT.Staff.RefreshSecret,
	}

	seen := make(map[string]string, len(secrets))
	for name, secret := range secrets {
		if secret == "" {
			return fmt.Errorf("%s must be set", name)
		}
		if other, ok := seen[secret]; ok {
			return fmt.Errorf("%s and %s must not share a secret", name, other)
		}
		seen[secret] = name
	}

	if cfg.OTP.Length <= 0 || cfg.OTP.MaxAttempts <= 0 {
		return errors.New("OTP length and max attempts must be positive")
	}
	if cfg.RateLimit.MaxRequests <= 0 {
		return errors.New("OTP_RATE_MAX_REQUESTS must be positive")
	}

	return nil
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go durations ("90s", "168h") and the day suffix used
// by token lifetimes ("7d"). A bare integer is read as seconds.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := parseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func parseDuration(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	if n := len(s); n > 1 && s[n-1] == 'd' {
		days, err := strconv.Atoi(s[:n-1])
		if err != nil {
			return 0, err
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}
