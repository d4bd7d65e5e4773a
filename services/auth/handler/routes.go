package handler

import (
	"context"

	"github.com/clinicnet/clinicnet/internal/pkg/constants"
	"github.com/clinicnet/clinicnet/internal/pkg/middleware"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	nr "github.com/clinicnet/clinicnet/internal/pkg/newrelic"
	"github.com/clinicnet/clinicnet/services/auth"
	"github.com/clinicnet/clinicnet/services/auth/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates all protocol handlers for the auth service
type Handler struct {
	patientHandler *http.PatientHandler
	staffHandler   *http.StaffHandler
	adminHandler   *http.AdminHandler
	patientUC      auth.PatientAuthUC
	staffUC        auth.StaffAuthUC
	limiterStore   middleware.CounterStore
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	patientUC auth.PatientAuthUC,
	staffUC auth.StaffAuthUC,
	limiterStore middleware.CounterStore,
	cfg *models.Config,
) *Handler {
	return &Handler{
		patientHandler: http.NewPatientHandler(patientUC),
		staffHandler:   http.NewStaffHandler(staffUC),
		adminHandler:   http.NewAdminHandler(patientUC),
		patientUC:      patientUC,
		staffUC:        staffUC,
		limiterStore:   limiterStore,
		cfg:            cfg,
	}
}

// PatientAuth verifies patient bearer tokens
func (h *Handler) PatientAuth() echo.MiddlewareFunc {
	return middleware.BearerAuth(constants.ContextKeyPatient, func(ctx context.Context, token string) (middleware.Identity, error) {
		return h.patientUC.Authenticate(ctx, token)
	})
}

// StaffAuth verifies staff bearer tokens
func (h *Handler) StaffAuth() echo.MiddlewareFunc {
	return middleware.BearerAuth(constants.ContextKeyStaff, func(ctx context.Context, token string) (middleware.Identity, error) {
		return h.staffUC.Authenticate(ctx, token)
	})
}

// RegisterRoutes registers all auth routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	var public []echo.MiddlewareFunc
	if h.limiterStore != nil && h.cfg.RateLimit.IPLimit > 0 {
		public = append(public, middleware.IPRateLimiter(h.cfg.RateLimit.IPLimit, h.cfg.RateLimit.IPPeriod, h.limiterStore))
	}

	// Patient OTP login, scoped to a clinic
	patients := e.Group("/auth/patients", public...)
	otp := patients.Group("/otp", middleware.RequireClinicID())
	otp.POST("/request", nr.TraceHandler("patient.RequestOTP", h.patientHandler.RequestOTP))
	otp.POST("/verify", nr.TraceHandler("patient.VerifyOTP", h.patientHandler.VerifyOTP))
	patients.POST("/otp/refresh", nr.TraceHandler("patient.RefreshToken", h.patientHandler.RefreshToken))
	patients.GET("/me", nr.TraceHandler("patient.Me", h.patientHandler.Me), h.PatientAuth())

	// Staff password login
	staff := e.Group("/auth/staff", public...)
	staff.POST("/login", nr.TraceHandler("staff.Login", h.staffHandler.Login))
	staff.POST("/refresh", nr.TraceHandler("staff.RefreshToken", h.staffHandler.RefreshToken))

	protected := e.Group("/auth/staff", h.StaffAuth())
	protected.GET("/me", nr.TraceHandler("staff.Me", h.staffHandler.Me))

	admin := protected.Group("/otp", middleware.RequireRoles(models.RoleAdmin))
	admin.GET("/status", nr.TraceHandler("admin.OTPStatus", h.adminHandler.OTPStatus))
	admin.POST("/reset", nr.TraceHandler("admin.ResetOTPLimits", h.adminHandler.ResetOTPLimits))
}
