package http

import (
	"net/http"
	"strings"

	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/middleware"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/clinicnet/clinicnet/internal/utils"
	"github.com/clinicnet/clinicnet/services/auth"
	"github.com/labstack/echo/v4"
)

// AdminHandler exposes OTP support operations to administrators
type AdminHandler struct {
	patientUC auth.PatientAuthUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(patientUC auth.PatientAuthUC) *AdminHandler {
	return &AdminHandler{
		patientUC: patientUC,
	}
}

// OTPStatus reports whether a code is outstanding for ?phone=
func (h *AdminHandler) OTPStatus(c echo.Context) error {
	var req models.PhoneRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Phone) == "" {
		return utils.BadRequestResponse(c, "phone is required")
	}

	status, err := h.patientUC.OTPStatus(c.Request().Context(), req.Phone)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", status)
}

// ResetOTPLimits clears the cooldown and request window of a phone
func (h *AdminHandler) ResetOTPLimits(c echo.Context) error {
	var req models.PhoneRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Phone) == "" {
		return utils.BadRequestResponse(c, "phone is required")
	}

	if err := h.patientUC.ResetOTPLimits(c.Request().Context(), req.Phone); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if staff, ok := middleware.StaffFromContext(c); ok {
		logger.InfoCtx(c.Request().Context(), "OTP limits reset by admin",
			logger.String("admin_id", staff.UserID),
			logger.Phone("phone", req.Phone))
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP limits reset", nil)
}
