package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OTP flow
	OTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_otp_requests_total",
		Help: "OTP requests by outcome.",
	}, []string{"result"}) // sent, invalid_phone, cooldown, rate_limited, delivery_failed, error

	OTPVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_otp_verifications_total",
		Help: "OTP verifications by outcome.",
	}, []string{"result"}) // success, rejected, invalid_input, error

	PatientsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_patients_created_total",
		Help: "Patients created on first successful OTP verification.",
	})

	// SMS delivery
	SMSSendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_sms_send_total",
		Help: "SMS send attempts by provider and outcome.",
	}, []string{"provider", "result"})

	SMSSendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "auth_sms_send_duration_seconds",
		Help:    "Latency of SMS gateway calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	// Tokens
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_login_attempts_total",
		Help: "Login attempts by trust domain and status.",
	}, []string{"domain", "status"})

	TokensIssuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_tokens_issued_total",
		Help: "Tokens issued by trust domain and kind.",
	}, []string{"domain", "kind"}) // kind: pair, access

	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "auth_circuit_breaker_state",
		Help: "Circuit breaker state (0 closed, 1 open, 2 half-open).",
	}, []string{"name"})
)
