package middleware

import (
	"strings"

	"github.com/clinicnet/clinicnet/internal/pkg/constants"
	nr "github.com/clinicnet/clinicnet/internal/pkg/newrelic"
	"github.com/clinicnet/clinicnet/internal/pkg/requestcontext"
	"github.com/clinicnet/clinicnet/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware propagates X-Request-ID or assigns a new one
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(constants.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(constants.HeaderRequestID, requestID)
			c.Set(constants.ContextKeyRequestID, requestID)
			c.SetRequest(c.Request().WithContext(requestcontext.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}

// RequireClinicID rejects requests without a tenant header and stores the
// tenant id under constants.ContextKeyClinicID
func RequireClinicID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clinicID := strings.TrimSpace(c.Request().Header.Get(constants.HeaderClinicID))
			if clinicID == "" {
				return utils.BadRequestResponse(c, "X-Clinic-ID header is required")
			}

			c.Set(constants.ContextKeyClinicID, clinicID)
			c.SetRequest(c.Request().WithContext(requestcontext.WithClinicID(c.Request().Context(), clinicID)))
			nr.AddAttribute(c, "clinic.id", clinicID)

			return next(c)
		}
	}
}

// ClinicID returns the tenant id stored by RequireClinicID
func ClinicID(c echo.Context) string {
	id, _ := c.Get(constants.ContextKeyClinicID).(string)
	return id
}
