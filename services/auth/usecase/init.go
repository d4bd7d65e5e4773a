package usecase

import (
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/jwt"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/clinicnet/clinicnet/internal/utils"
	"github.com/clinicnet/clinicnet/services/auth"
)

// PatientAuthUC drives the patient OTP login flow
type PatientAuthUC struct {
	patientRepo auth.PatientRepo
	otp         *OTPManager
	limiter     *RateLimiter
	sms         auth.SMSDispatcher
	events      auth.EventPublisher
	tokens      *jwt.PatientTokenService
	phones      *utils.PhoneNormalizer
	cfg         *models.Config
	now         func() time.Time
}

// NewPatientAuthUC creates a new patient auth usecase instance
func NewPatientAuthUC(
	patientRepo auth.PatientRepo,
	cache auth.CacheStore,
	sms auth.SMSDispatcher,
	events auth.EventPublisher,
	cfg *models.Config,
) *PatientAuthUC {
	return &PatientAuthUC{
		patientRepo: patientRepo,
		otp:         NewOTPManager(cache, cfg.OTP),
		limiter:     NewRateLimiter(cache, cfg.RateLimit),
		sms:         sms,
		events:      events,
		tokens:      jwt.NewPatientTokenService(cfg.JWT.Issuer, cfg.JWT.Patient),
		phones:      utils.NewPhoneNormalizer(cfg.Phone.DefaultRegion),
		cfg:         cfg,
		now:         time.Now,
	}
}

// StaffAuthUC drives the staff password login flow
type StaffAuthUC struct {
	staffRepo auth.StaffRepo
	events    auth.EventPublisher
	tokens    *jwt.StaffTokenService
	cfg       *models.Config
	now       func() time.Time
}

// NewStaffAuthUC creates a new staff auth usecase instance
func NewStaffAuthUC(
	staffRepo auth.StaffRepo,
	events auth.EventPublisher,
	cfg *models.Config,
) *StaffAuthUC {
	return &StaffAuthUC{
		staffRepo: staffRepo,
		events:    events,
		tokens:    jwt.NewStaffTokenService(cfg.JWT.Issuer, cfg.JWT.Staff),
		cfg:       cfg,
		now:       time.Now,
	}
}
