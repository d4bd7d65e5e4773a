package http

import (
	"net/http"
	"strings"

	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/middleware"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	nr "github.com/clinicnet/clinicnet/internal/pkg/newrelic"
	"github.com/clinicnet/clinicnet/internal/utils"
	"github.com/clinicnet/clinicnet/services/auth"
	"github.com/labstack/echo/v4"
)

// PatientHandler handles HTTP requests for patient OTP login
type PatientHandler struct {
	patientUC auth.PatientAuthUC
}

// NewPatientHandler creates a new patient auth handler
func NewPatientHandler(patientUC auth.PatientAuthUC) *PatientHandler {
	return &PatientHandler{
		patientUC: patientUC,
	}
}

// RequestOTP sends a login code to the phone in the body
func (h *PatientHandler) RequestOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP request",
			logger.Err(err),
			logger.String("endpoint", "RequestOTP"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return utils.BadRequestResponse(c, "phone is required")
	}

	resp, err := h.patientUC.RequestOTP(c.Request().Context(), req.Phone, middleware.ClinicID(c))
	if err != nil {
		nr.NoticeError(c, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// VerifyOTP exchanges a code for a token pair
func (h *PatientHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP verification",
			logger.Err(err),
			logger.String("endpoint", "VerifyOTP"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Code) == "" {
		return utils.BadRequestResponse(c, "phone and code are required")
	}

	resp, err := h.patientUC.VerifyOTP(c.Request().Context(), req.Phone, req.Code, middleware.ClinicID(c))
	if err != nil {
		nr.NoticeError(c, err)
		return utils.AppErrorResponse(c, err)
	}

	status := http.StatusOK
	if resp.IsNewPatient {
		status = http.StatusCreated
	}
	return utils.SuccessResponse(c, status, "Login successful", resp)
}

// RefreshToken issues a new patient access token
func (h *PatientHandler) RefreshToken(c echo.Context) error {
	return refresh(c, h.patientUC.RefreshToken)
}

// Me returns the authenticated patient
func (h *PatientHandler) Me(c echo.Context) error {
	patient, ok := middleware.PatientFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", patient)
}
