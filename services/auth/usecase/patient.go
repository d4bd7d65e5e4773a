package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/metrics"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	nr "github.com/clinicnet/clinicnet/internal/pkg/newrelic"
)

const (
	msgInvalidPhone   = "invalid phone number"
	msgInvalidCode    = "invalid or expired code"
	msgInvalidToken   = "invalid or expired token"
	msgClinicRequired = "clinic id is required"

	placeholderFirstName = "Patient"
	domainPatient        = "patient"
)

// RequestOTP sends a new code to phone if neither the cooldown nor the hourly
// window blocks it. Only a successful dispatch advances the gates.
func (u *PatientAuthUC) RequestOTP(ctx context.Context, phone, clinicID string) (*models.OTPRequestResponse, error) {
	normalized, err := u.phones.Normalize(phone)
	if err != nil {
		metrics.OTPRequestsTotal.WithLabelValues("invalid_phone").Inc()
		return nil, models.NewValidationError(msgInvalidPhone)
	}
	if clinicID == "" {
		return nil, models.NewValidationError(msgClinicRequired)
	}

	cooldown, err := u.limiter.CheckCooldown(ctx, normalized)
	if err != nil {
		return nil, u.internal(ctx, "OTP cooldown check failed", normalized, err)
	}
	if !cooldown.Allowed {
		metrics.OTPRequestsTotal.WithLabelValues("cooldown").Inc()
		return nil, models.NewThrottledError(
			fmt.Sprintf("please wait %d seconds before requesting a new code", cooldown.RemainingSeconds),
			time.Duration(cooldown.RemainingSeconds)*time.Second,
		)
	}

	window, err := u.limiter.CheckRateLimit(ctx, normalized)
	if err != nil {
		return nil, u.internal(ctx, "OTP rate limit check failed", normalized, err)
	}
	if !window.Allowed {
		metrics.OTPRequestsTotal.WithLabelValues("rate_limited").Inc()
		return nil, u.rateLimited(window)
	}

	code, err := u.otp.Generate()
	if err != nil {
		return nil, u.internal(ctx, "OTP generation failed", normalized, err)
	}
	if err := u.otp.Store(ctx, normalized, code); err != nil {
		return nil, u.internal(ctx, "OTP store failed", normalized, err)
	}

	var result models.SMSSendResult
	_ = nr.WithSegment(ctx, "sms.SendOTP", func() error {
		result = u.sms.SendOTP(ctx, normalized, code)
		return nil
	})
	if !result.Success {
		metrics.OTPRequestsTotal.WithLabelValues("delivery_failed").Inc()
		logger.WarnCtx(ctx, "OTP dispatch failed",
			logger.Phone("phone", normalized),
			logger.String("provider", u.sms.ProviderName()),
			logger.String("error", result.Error))
		return nil, models.NewDeliveryError("could not send OTP, please try again", errors.New(result.Error))
	}

	if err := u.limiter.Increment(ctx, normalized); err != nil {
		return nil, u.internal(ctx, "OTP rate limit increment failed", normalized, err)
	}
	if err := u.limiter.SetCooldown(ctx, normalized); err != nil {
		return nil, u.internal(ctx, "OTP cooldown set failed", normalized, err)
	}

	metrics.OTPRequestsTotal.WithLabelValues("sent").Inc()
	logger.InfoCtx(ctx, "OTP sent",
		logger.Phone("phone", normalized),
		logger.String("clinic_id", clinicID),
		logger.String("message_id", result.MessageID))

	return &models.OTPRequestResponse{
		Message:         "OTP sent successfully",
		ExpiresIn:       int(u.cfg.OTP.TTL / time.Second),
		CooldownSeconds: int(u.cfg.RateLimit.Cooldown / time.Second),
	}, nil
}

func (u *PatientAuthUC) rateLimited(window models.RateLimitStatus) *models.AppError {
	if window.ResetAt == nil {
		return models.NewThrottledError("too many OTP requests, please try again later", u.cfg.RateLimit.Window)
	}
	retryAfter := window.ResetAt.Sub(u.now())
	if retryAfter < time.Second {
		retryAfter = time.Second
	}
	return models.NewThrottledError(
		fmt.Sprintf("too many OTP requests, try again after %s", window.ResetAt.UTC().Format(time.RFC3339)),
		retryAfter,
	)
}

// VerifyOTP exchanges a valid code for a patient token pair. The patient is
// created on first login. Wrong, expired and locked out codes fail the same way.
func (u *PatientAuthUC) VerifyOTP(ctx context.Context, phone, code, clinicID string) (*models.PatientAuthResponse, error) {
	normalized, err := u.phones.Normalize(phone)
	if err != nil {
		metrics.OTPVerificationsTotal.WithLabelValues("invalid_input").Inc()
		return nil, models.NewValidationError(msgInvalidPhone)
	}
	if !u.validCodeFormat(code) {
		metrics.OTPVerificationsTotal.WithLabelValues("invalid_input").Inc()
		return nil, models.NewValidationError(fmt.Sprintf("code must be %d digits", u.cfg.OTP.Length))
	}
	if clinicID == "" {
		return nil, models.NewValidationError(msgClinicRequired)
	}

	ok, err := u.otp.Verify(ctx, normalized, code)
	if err != nil {
		metrics.OTPVerificationsTotal.WithLabelValues("error").Inc()
		return nil, u.internal(ctx, "OTP verification failed", normalized, err)
	}
	if !ok {
		metrics.OTPVerificationsTotal.WithLabelValues("rejected").Inc()
		metrics.LoginAttemptsTotal.WithLabelValues(domainPatient, "failed").Inc()
		return nil, models.NewUnauthorizedError(msgInvalidCode)
	}

	patient, isNew, err := u.findOrCreatePatient(ctx, clinicID, normalized)
	if err != nil {
		return nil, u.internal(ctx, "patient lookup failed", normalized, err)
	}

	pair, err := u.tokens.IssuePair(patient)
	if err != nil {
		return nil, u.internal(ctx, "patient token signing failed", normalized, err)
	}
	metrics.TokensIssuedTotal.WithLabelValues(domainPatient, "pair").Inc()
	metrics.OTPVerificationsTotal.WithLabelValues("success").Inc()
	metrics.LoginAttemptsTotal.WithLabelValues(domainPatient, "success").Inc()

	if isNew {
		metrics.PatientsCreatedTotal.Inc()
		event := &models.PatientRegisteredEvent{
			PatientID:    patient.ID,
			ClinicID:     patient.ClinicID,
			Phone:        patient.Phone,
			RegisteredAt: patient.CreatedAt,
		}
		if err := u.events.PublishPatientRegistered(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish patient registered event",
				logger.String("patient_id", patient.ID),
				logger.Err(err))
		}
	}

	logger.InfoCtx(ctx, "Patient authenticated",
		logger.String("patient_id", patient.ID),
		logger.String("clinic_id", clinicID),
		logger.Bool("new_patient", isNew))

	return &models.PatientAuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Patient:      patient.Summary(),
		IsNewPatient: isNew,
	}, nil
}

func (u *PatientAuthUC) validCodeFormat(code string) bool {
	if len(code) != u.cfg.OTP.Length {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// findOrCreatePatient resolves the patient of (clinicID, phone). A concurrent
// first login that wins the insert is treated as an existing patient.
func (u *PatientAuthUC) findOrCreatePatient(ctx context.Context, clinicID, phone string) (*models.Patient, bool, error) {
	patient, err := u.patientRepo.FindPatient(ctx, clinicID, phone)
	if err == nil {
		return patient, false, nil
	}
	if !errors.Is(err, models.ErrPatientNotFound) {
		return nil, false, err
	}

	patient, err = u.patientRepo.CreatePatient(ctx, clinicID, phone, placeholderNames(phone))
	if errors.Is(err, models.ErrPatientExists) {
		patient, err = u.patientRepo.FindPatient(ctx, clinicID, phone)
		return patient, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return patient, true, nil
}

// placeholderNames are replaced when the patient completes their profile
func placeholderNames(phone string) models.PatientDefaults {
	last := phone
	if len(last) > 4 {
		last = last[len(last)-4:]
	}
	return models.PatientDefaults{FirstName: placeholderFirstName, LastName: last}
}

// RefreshToken exchanges a patient refresh token for a new access token
func (u *PatientAuthUC) RefreshToken(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	patientID, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, models.NewUnauthorizedError(msgInvalidToken)
	}

	patient, err := u.patientRepo.GetPatientByID(ctx, patientID)
	if errors.Is(err, models.ErrPatientNotFound) {
		return nil, models.NewUnauthorizedError(msgInvalidToken)
	}
	if err != nil {
		return nil, u.internal(ctx, "patient lookup failed", "", err)
	}

	access, err := u.tokens.IssueAccess(patient)
	if err != nil {
		return nil, u.internal(ctx, "patient token signing failed", "", err)
	}
	metrics.TokensIssuedTotal.WithLabelValues(domainPatient, "access").Inc()

	return &models.RefreshResponse{AccessToken: access}, nil
}

// Authenticate verifies a patient access token and confirms the patient still exists
func (u *PatientAuthUC) Authenticate(ctx context.Context, accessToken string) (*models.AuthenticatedPatient, error) {
	claims, err := u.tokens.ParseAccess(accessToken)
	if err != nil {
		return nil, models.NewUnauthorizedError(msgInvalidToken)
	}

	patient, err := u.patientRepo.GetPatientByID(ctx, claims.Subject)
	if errors.Is(err, models.ErrPatientNotFound) {
		return nil, models.NewUnauthorizedError(msgInvalidToken)
	}
	if err != nil {
		return nil, u.internal(ctx, "patient lookup failed", "", err)
	}
	if patient.ClinicID != claims.ClinicID {
		return nil, models.NewUnauthorizedError(msgInvalidToken)
	}

	return &models.AuthenticatedPatient{
		PatientID: patient.ID,
		ClinicID:  patient.ClinicID,
		Phone:     patient.Phone,
		Role:      claims.Role,
	}, nil
}

// OTPStatus reports whether phone has an active code and how long it lives
func (u *PatientAuthUC) OTPStatus(ctx context.Context, phone string) (*models.OTPStatus, error) {
	normalized, err := u.phones.Normalize(phone)
	if err != nil {
		return nil, models.NewValidationError(msgInvalidPhone)
	}

	exists, err := u.otp.Exists(ctx, normalized)
	if err != nil {
		return nil, u.internal(ctx, "OTP status lookup failed", normalized, err)
	}
	status := &models.OTPStatus{Phone: normalized, Exists: exists}
	if !exists {
		return status, nil
	}

	ttl, err := u.otp.RemainingTTL(ctx, normalized)
	if err != nil {
		return nil, u.internal(ctx, "OTP status lookup failed", normalized, err)
	}
	if ttl > 0 {
		status.RemainingTTL = int(ttl)
	}
	return status, nil
}

// ResetOTPLimits clears the cooldown and hourly window of phone
func (u *PatientAuthUC) ResetOTPLimits(ctx context.Context, phone string) error {
	normalized, err := u.phones.Normalize(phone)
	if err != nil {
		return models.NewValidationError(msgInvalidPhone)
	}

	if err := u.limiter.Reset(ctx, normalized); err != nil {
		return u.internal(ctx, "OTP limit reset failed", normalized, err)
	}
	logger.InfoCtx(ctx, "OTP limits reset", logger.Phone("phone", normalized))
	return nil
}

// internal logs err and hides it behind the generic internal condition
func (u *PatientAuthUC) internal(ctx context.Context, msg, phone string, err error) error {
	fields := []logger.Field{logger.Err(err)}
	if phone != "" {
		fields = append(fields, logger.Phone("phone", phone))
	}
	logger.ErrorCtx(ctx, msg, fields...)
	return models.NewInternalError(err)
}
