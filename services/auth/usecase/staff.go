package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/metrics"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgInvalidCredentials = "invalid credentials"
	msgAccountDeactivated = "account deactivated"
	domainStaff           = "staff"
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// burnCompare spends the same bcrypt work as a real comparison so an unknown
// email cannot be told apart by latency
func burnCompare(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("clinicnet-dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Login authenticates a staff user by email and password. Unknown email and
// wrong password fail identically. The active flag is only disclosed after
// the password was proven.
func (u *StaffAuthUC) Login(ctx context.Context, email, password string) (*models.StaffAuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, models.NewValidationError("email and password are required")
	}

	user, err := u.staffRepo.FindStaffByEmail(ctx, email)
	if errors.Is(err, models.ErrStaffNotFound) {
		burnCompare(password)
		metrics.LoginAttemptsTotal.WithLabelValues(domainStaff, "failed").Inc()
		return nil, models.NewUnauthorizedError(msgInvalidCredentials)
	}
	if err != nil {
		return nil, u.internal(ctx, "staff lookup failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(domainStaff, "failed").Inc()
		logger.InfoCtx(ctx, "Staff login rejected", logger.String("user_id", user.ID))
		return nil, models.NewUnauthorizedError(msgInvalidCredentials)
	}
	if !user.IsActive {
		metrics.LoginAttemptsTotal.WithLabelValues(domainStaff, "inactive").Inc()
		return nil, models.NewUnauthorizedError(msgAccountDeactivated)
	}

	now := u.now()
	if err := u.staffRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, u.internal(ctx, "staff last login update failed", err)
	}
	user.LastLoginAt = &now

	pair, err := u.tokens.IssuePair(user)
	if err != nil {
		return nil, u.internal(ctx, "staff token signing failed", err)
	}
	metrics.TokensIssuedTotal.WithLabelValues(domainStaff, "pair").Inc()
	metrics.LoginAttemptsTotal.WithLabelValues(domainStaff, "success").Inc()

	event := &models.StaffLoggedInEvent{
		UserID:     user.ID,
		ClinicID:   user.ClinicID,
		Role:       user.Role,
		LoggedInAt: now,
	}
	if err := u.events.PublishStaffLoggedIn(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish staff login event",
			logger.String("user_id", user.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Staff authenticated",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)))

	return &models.StaffAuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Summary(),
	}, nil
}

// RefreshToken exchanges a staff refresh token for a new access token. The
// user must still be active.
func (u *StaffAuthUC) RefreshToken(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	userID, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, models.NewUnauthorizedError(msgInvalidToken)
	}

	user, err := u.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	access, err := u.tokens.IssueAccess(user)
	if err != nil {
		return nil, u.internal(ctx, "staff token signing failed", err)
	}
	metrics.TokensIssuedTotal.WithLabelValues(domainStaff, "access").Inc()

	return &models.RefreshResponse{AccessToken: access}, nil
}

// Authenticate verifies a staff access token, re-checks the user is active and
// still belongs to the clinic named in the token
func (u *StaffAuthUC) Authenticate(ctx context.Context, accessToken string) (*models.AuthenticatedStaff, error) {
	claims, err := u.tokens.ParseAccess(accessToken)
	if err != nil {
		return nil, models.NewUnauthorizedError(msgInvalidToken)
	}

	user, err := u.activeUser(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user.ClinicID != claims.ClinicID {
		return nil, models.NewUnauthorizedError(msgInvalidToken)
	}

	return &models.AuthenticatedStaff{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		ClinicID: user.ClinicID,
		BranchID: user.BranchID,
	}, nil
}

func (u *StaffAuthUC) activeUser(ctx context.Context, id string) (*models.StaffUser, error) {
	user, err := u.staffRepo.GetStaffByID(ctx, id)
	if errors.Is(err, models.ErrStaffNotFound) {
		return nil, models.NewUnauthorizedError(msgInvalidToken)
	}
	if err != nil {
		return nil, u.internal(ctx, "staff lookup failed", err)
	}
	if !user.IsActive {
		return nil, models.NewUnauthorizedError(msgAccountDeactivated)
	}
	return user, nil
}

func (u *StaffAuthUC) internal(ctx context.Context, msg string, err error) error {
	logger.ErrorCtx(ctx, msg, logger.Err(err))
	return models.NewInternalError(err)
}
