package middleware

import (
	"context"
	"errors"

	"github.com/clinicnet/clinicnet/internal/pkg/constants"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/clinicnet/clinicnet/internal/utils"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// Identity is what an authenticator attaches to the request
type Identity interface {
	SubjectID() string
}

// Authenticator verifies a raw bearer token and resolves the caller
type Authenticator func(ctx context.Context, token string) (Identity, error)

// BearerAuth extracts the bearer token with echo-jwt and hands it to
// authenticate. On success the identity is stored under contextKey. Errors
// returned by authenticate are rendered by kind; a missing or malformed
// header is a plain 401.
func BearerAuth(contextKey string, authenticate Authenticator) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  contextKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			identity, err := authenticate(c.Request().Context(), auth)
			if err != nil {
				return nil, err
			}
			c.Set(constants.ContextKeyUserID, identity.SubjectID())
			return identity, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var appErr *models.AppError
			if errors.As(err, &appErr) {
				return utils.AppErrorResponse(c, appErr)
			}
			return utils.UnauthorizedResponse(c, "")
		},
	})
}

// PatientFromContext returns the patient identity stored by BearerAuth
func PatientFromContext(c echo.Context) (*models.AuthenticatedPatient, bool) {
	p, ok := c.Get(constants.ContextKeyPatient).(*models.AuthenticatedPatient)
	return p, ok
}

// StaffFromContext returns the staff identity stored by BearerAuth
func StaffFromContext(c echo.Context) (*models.AuthenticatedStaff, bool) {
	s, ok := c.Get(constants.ContextKeyStaff).(*models.AuthenticatedStaff)
	return s, ok
}

// RequireRoles allows only authenticated staff holding one of roles
func RequireRoles(roles ...models.StaffRole) echo.MiddlewareFunc {
	allowed := make(map[models.StaffRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			staff, ok := StaffFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			if _, ok := allowed[staff.Role]; !ok {
				return utils.ForbiddenResponse(c, "insufficient role")
			}
			return next(c)
		}
	}
}
