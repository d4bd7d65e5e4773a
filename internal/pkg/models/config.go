package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	OTP       OTPConfig
	RateLimit RateLimitConfig
	SMS       SMSConfig
	Phone     PhoneConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Enabled bool
	Address string
}

// JWTConfig holds the two token trust domains. Patient and staff tokens never
// share secret material.
type JWTConfig struct {
	Issuer  string
	Patient TokenDomainConfig
	Staff   TokenDomainConfig
}

// TokenDomainConfig is the signing material and lifetimes of one trust domain
type TokenDomainConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// OTPConfig contains one-time code policy
type OTPConfig struct {
	Length      int
	TTL         time.Duration
	MaxAttempts int
}

// RateLimitConfig contains OTP request throttling policy
type RateLimitConfig struct {
	Cooldown    time.Duration
	Window      time.Duration
	MaxRequests int
	IPLimit     int
	IPPeriod    time.Duration
}

// SMSConfig selects and configures the SMS gateway
type SMSConfig struct {
	Provider        string
	SendTimeout     time.Duration
	MockDelay       time.Duration
	MockSuccessRate float64
	Twilio          TwilioConfig
}

// TwilioConfig contains Twilio REST API credentials
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	BaseURL    string
}

// PhoneConfig contains phone normalization settings
type PhoneConfig struct {
	DefaultRegion string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
