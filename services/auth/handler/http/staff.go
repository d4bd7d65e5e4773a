package http

import (
	"context"
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

// StaffHandler handles HTTP requests for staff password login
type StaffHandler struct {
	staffUC auth.StaffAuthUC
}

// NewStaffHandler creates a new staff auth handler
func NewStaffHandler(staffUC auth.StaffAuthUC) *StaffHandler {
	return &StaffHandler{
		staffUC: staffUC,
	}
}

// Login authenticates a staff member with email and password
func (h *StaffHandler) Login(c echo.Context) error {
	var req models.StaffLoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for staff login",
			logger.Err(err),
			logger.String("endpoint", "Login"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.staffUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		nr.NoticeError(c, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// RefreshToken issues a new staff access token
func (h *StaffHandler) RefreshToken(c echo.Context) error {
	return refresh(c, h.staffUC.RefreshToken)
}

// Me returns the authenticated staff member
func (h *StaffHandler) Me(c echo.Context) error {
	staff, ok := middleware.StaffFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", staff)
}

func refresh(c echo.Context, exchange func(ctx context.Context, refreshToken string) (*models.RefreshResponse, error)) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		return utils.BadRequestResponse(c, "refresh_token is required")
	}

	resp, err := exchange(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed", resp)
}
