package constants

// Redis key formats. Every phone segment is an E.164 number.
const (
	KeyOTPCode     = "otp:%s"          // Format: otp:{phone}
	KeyOTPAttempts = "otp:attempts:%s" // Format: otp:attempts:{phone}
	KeyOTPCooldown = "cooldown:otp:%s" // Format: cooldown:otp:{phone}
	KeyOTPRate     = "rate:otp:%s"     // Format: rate:otp:{phone}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
