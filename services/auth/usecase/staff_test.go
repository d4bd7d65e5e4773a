package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/jwt"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/clinicnet/clinicnet/services/auth/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct horse battery staple"

type staffFixture struct {
	uc     *StaffAuthUC
	repo   *mocks.MockStaffRepo
	events *mocks.MockEventPublisher
	now    time.Time
}

func newStaffFixture(t *testing.T) *staffFixture {
	ctrl := gomock.NewController(t)
	f := &staffFixture{
		repo:   mocks.NewMockStaffRepo(ctrl),
		events: mocks.NewMockEventPublisher(ctrl),
		now:    time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
	}
	f.uc = NewStaffAuthUC(f.repo, f.events, testConfig())
	f.uc.now = func() time.Time { return f.now }
	return f
}

func testStaffUser(t *testing.T, active bool) *models.StaffUser {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	branch := "branch-heliopolis"
	return &models.StaffUser{
		ID:           "5b0e8a52-8f57-4f0e-bb0a-2f3a3f6a9d01",
		ClinicID:     testClinic,
		BranchID:     &branch,
		Email:        "dr.salma@clinic.example",
		PasswordHash: string(hash),
		FirstName:    "Salma",
		LastName:     "Hassan",
		Role:         models.RoleDoctor,
		IsActive:     active,
	}
}

func TestStaffLogin_Success(t *testing.T) {
	f := newStaffFixture(t)
	user := testStaffUser(t, true)

	f.repo.EXPECT().FindStaffByEmail(gomock.Any(), "dr.salma@clinic.example").Return(user, nil)
	f.repo.EXPECT().UpdateLastLogin(gomock.Any(), user.ID, f.now).Return(nil)
	f.events.EXPECT().
		PublishStaffLoggedIn(gomock.Any(), &models.StaffLoggedInEvent{
			UserID:     user.ID,
			ClinicID:   testClinic,
			Role:       models.RoleDoctor,
			LoggedInAt: f.now,
		}).
		Return(nil)

	resp, err := f.uc.Login(context.Background(), "  Dr.Salma@Clinic.example ", testPassword)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, models.RoleDoctor, resp.User.Role)
	assert.Equal(t, "branch-heliopolis", *resp.User.BranchID)

	claims, err := f.uc.tokens.ParseAccess(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, testClinic, claims.ClinicID)
}

func TestStaffLogin_Failures(t *testing.T) {
	tests := []struct {
		name     string
		password string
		setup    func(f *staffFixture, user *models.StaffUser)
		kind     models.ErrorKind
		message  string
	}{
		{
			name:     "unknown email",
			password: testPassword,
			setup: func(f *staffFixture, _ *models.StaffUser) {
				f.repo.EXPECT().FindStaffByEmail(gomock.Any(), gomock.Any()).Return(nil, models.ErrStaffNotFound)
			},
			kind:    models.KindUnauthorized,
			message: "invalid credentials",
		},
		{
			name:     "wrong password",
			password: "wrong",
			setup: func(f *staffFixture, user *models.StaffUser) {
				f.repo.EXPECT().FindStaffByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			kind:    models.KindUnauthorized,
			message: "invalid credentials",
		},
		{
			name:     "inactive with correct password",
			password: testPassword,
			setup: func(f *staffFixture, user *models.StaffUser) {
				user.IsActive = false
				f.repo.EXPECT().FindStaffByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			kind:    models.KindUnauthorized,
			message: "account deactivated",
		},
		{
			name:     "inactive with wrong password",
			password: "wrong",
			setup: func(f *staffFixture, user *models.StaffUser) {
				user.IsActive = false
				f.repo.EXPECT().FindStaffByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			kind:    models.KindUnauthorized,
			message: "invalid credentials",
		},
		{
			name:     "store unavailable",
			password: testPassword,
			setup: func(f *staffFixture, _ *models.StaffUser) {
				f.repo.EXPECT().FindStaffByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))
			},
			kind:    models.KindInternal,
			message: "internal server error",
		},
		{
			name:     "last login update fails",
			password: testPassword,
			setup: func(f *staffFixture, user *models.StaffUser) {
				f.repo.EXPECT().FindStaffByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
				f.repo.EXPECT().UpdateLastLogin(gomock.Any(), user.ID, gomock.Any()).Return(errors.New("deadlock detected"))
			},
			kind:    models.KindInternal,
			message: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStaffFixture(t)
			tt.setup(f, testStaffUser(t, true))

			_, err := f.uc.Login(context.Background(), "dr.salma@clinic.example", tt.password)

			appErr := requireAppError(t, err, tt.kind)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestStaffLogin_MissingCredentials(t *testing.T) {
	f := newStaffFixture(t)

	_, err := f.uc.Login(context.Background(), " ", testPassword)
	requireAppError(t, err, models.KindValidation)

	_, err = f.uc.Login(context.Background(), "dr.salma@clinic.example", "")
	requireAppError(t, err, models.KindValidation)
}

func TestStaffLogin_EventFailureIgnored(t *testing.T) {
	f := newStaffFixture(t)
	user := testStaffUser(t, true)

	f.repo.EXPECT().FindStaffByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
	f.repo.EXPECT().UpdateLastLogin(gomock.Any(), user.ID, f.now).Return(nil)
	f.events.EXPECT().PublishStaffLoggedIn(gomock.Any(), gomock.Any()).Return(errors.New("nsqd down"))

	_, err := f.uc.Login(context.Background(), user.Email, testPassword)
	require.NoError(t, err)
}

func TestStaffAuthenticate(t *testing.T) {
	f := newStaffFixture(t)
	user := testStaffUser(t, true)
	ctx := context.Background()

	pair, err := f.uc.tokens.IssuePair(user)
	require.NoError(t, err)

	f.repo.EXPECT().GetStaffByID(gomock.Any(), user.ID).Return(user, nil)
	identity, err := f.uc.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, models.RoleDoctor, identity.Role)

	deactivated := *user
	deactivated.IsActive = false
	f.repo.EXPECT().GetStaffByID(gomock.Any(), user.ID).Return(&deactivated, nil)
	_, err = f.uc.Authenticate(ctx, pair.AccessToken)
	appErr := requireAppError(t, err, models.KindUnauthorized)
	assert.Equal(t, "account deactivated", appErr.Message)

	f.repo.EXPECT().GetStaffByID(gomock.Any(), user.ID).Return(nil, models.ErrStaffNotFound)
	_, err = f.uc.Authenticate(ctx, pair.AccessToken)
	requireAppError(t, err, models.KindUnauthorized)
}

func TestStaffAuthenticate_ClinicMustMatch(t *testing.T) {
	f := newStaffFixture(t)
	user := testStaffUser(t, true)

	pair, err := f.uc.tokens.IssuePair(user)
	require.NoError(t, err)

	moved := *user
	moved.ClinicID = "clinic-elsewhere"
	f.repo.EXPECT().GetStaffByID(gomock.Any(), user.ID).Return(&moved, nil)

	_, err = f.uc.Authenticate(context.Background(), pair.AccessToken)
	appErr := requireAppError(t, err, models.KindUnauthorized)
	assert.Equal(t, "invalid or expired token", appErr.Message)
}

func TestStaffAuthenticate_RejectsPatientToken(t *testing.T) {
	f := newStaffFixture(t)
	cfg := testConfig()
	patientTokens := jwt.NewPatientTokenService(cfg.JWT.Issuer, cfg.JWT.Patient)

	pair, err := patientTokens.IssuePair(testPatientRecord())
	require.NoError(t, err)

	_, err = f.uc.Authenticate(context.Background(), pair.AccessToken)
	requireAppError(t, err, models.KindUnauthorized)
	_, err = f.uc.RefreshToken(context.Background(), pair.RefreshToken)
	requireAppError(t, err, models.KindUnauthorized)
}

func TestStaffRefreshToken(t *testing.T) {
	f := newStaffFixture(t)
	user := testStaffUser(t, true)
	ctx := context.Background()

	pair, err := f.uc.tokens.IssuePair(user)
	require.NoError(t, err)

	f.repo.EXPECT().GetStaffByID(gomock.Any(), user.ID).Return(user, nil)
	resp, err := f.uc.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)

	claims, err := f.uc.tokens.ParseAccess(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)

	_, err = f.uc.RefreshToken(ctx, pair.AccessToken)
	requireAppError(t, err, models.KindUnauthorized)

	user.IsActive = false
	f.repo.EXPECT().GetStaffByID(gomock.Any(), user.ID).Return(user, nil)
	_, err = f.uc.RefreshToken(ctx, pair.RefreshToken)
	requireAppError(t, err, models.KindUnauthorized)
}
