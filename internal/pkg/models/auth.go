package models

import (
	"time"
)

// OTPRequest represents a request to send a one-time code
type OTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// OTPVerifyRequest represents a request to verify a one-time code
type OTPVerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code" validate:"required,len=6"`
}

// OTPRequestResponse is returned after a code was dispatched
type OTPRequestResponse struct {
	Message         string `json:"message"`
	ExpiresIn       int    `json:"expires_in"`
	CooldownSeconds int    `json:"cooldown_seconds,omitempty"`
}

// PatientAuthResponse is returned after a successful OTP verification
type PatientAuthResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	Patient      PatientSummary `json:"patient"`
	IsNewPatient bool           `json:"is_new_patient"`
}

// StaffLoginRequest represents a staff password login
type StaffLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// StaffAuthResponse is returned after a successful staff login
type StaffAuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         StaffSummary `json:"user"`
}

// RefreshRequest exchanges a refresh token for a new access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse carries the newly minted access token
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// CooldownStatus is the result of the per-phone cooldown gate
type CooldownStatus struct {
	Allowed          bool
	RemainingSeconds int
}

// RateLimitStatus is the result of the per-phone hourly window gate
type RateLimitStatus struct {
	Allowed   bool
	Remaining int
	ResetAt   *time.Time
}

// OTPStatus is the diagnostic view of a phone's active code
type OTPStatus struct {
	Phone        string `json:"phone"`
	Exists       bool   `json:"exists"`
	RemainingTTL int    `json:"remaining_ttl"`
}

// PhoneRequest carries a phone number for administrative actions
type PhoneRequest struct {
	Phone string `json:"phone" query:"phone" validate:"required"`
}
