package auth

import (
	"context"

	"github.com/clinicnet/clinicnet/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/clinicnet/clinicnet/services/auth PatientAuthUC,StaffAuthUC

// PatientAuthUC is the patient OTP login flow
type PatientAuthUC interface {
	// handle OTP
	RequestOTP(ctx context.Context, phone, clinicID string) (*models.OTPRequestResponse, error)
	VerifyOTP(ctx context.Context, phone, code, clinicID string) (*models.PatientAuthResponse, error)

	// handle tokens
	RefreshToken(ctx context.Context, refreshToken string) (*models.RefreshResponse, error)
	Authenticate(ctx context.Context, accessToken string) (*models.AuthenticatedPatient, error)

	// administration
	OTPStatus(ctx context.Context, phone string) (*models.OTPStatus, error)
	ResetOTPLimits(ctx context.Context, phone string) error
}

// StaffAuthUC is the staff email and password login flow
type StaffAuthUC interface {
	Login(ctx context.Context, email, password string) (*models.StaffAuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.RefreshResponse, error)
	Authenticate(ctx context.Context, accessToken string) (*models.AuthenticatedStaff, error)
}
