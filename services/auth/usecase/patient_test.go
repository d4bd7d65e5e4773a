package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/clinicnet/clinicnet/internal/pkg/jwt"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/clinicnet/clinicnet/services/auth/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClinic = "clinic-cairo"

type patientFixture struct {
	uc     *PatientAuthUC
	mr     *miniredis.Miniredis
	repo   *mocks.MockPatientRepo
	sms    *mocks.MockSMSDispatcher
	events *mocks.MockEventPublisher
	codes  []string
}

func newPatientFixture(t *testing.T) *patientFixture {
	ctrl := gomock.NewController(t)
	mr, store := newTestStore(t)

	f := &patientFixture{
		mr:     mr,
		repo:   mocks.NewMockPatientRepo(ctrl),
		sms:    mocks.NewMockSMSDispatcher(ctrl),
		events: mocks.NewMockEventPublisher(ctrl),
	}
	f.uc = NewPatientAuthUC(f.repo, store, f.sms, f.events, testConfig())
	f.sms.EXPECT().ProviderName().Return("mock").AnyTimes()
	return f
}

// expectDispatch makes the next SendOTP calls succeed, recording the codes
func (f *patientFixture) expectDispatch(times int) {
	f.sms.EXPECT().
		SendOTP(gomock.Any(), testPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, code string) models.SMSSendResult {
			f.codes = append(f.codes, code)
			return models.SMSSendResult{Success: true, MessageID: "mock-1"}
		}).
		Times(times)
}

func (f *patientFixture) lastCode() string {
	return f.codes[len(f.codes)-1]
}

func testPatientRecord() *models.Patient {
	first, last := "Patient", "5555"
	return &models.Patient{
		ID:        "0d6f1c9e-4b9a-4d43-9a77-0a3b7a2f5c11",
		ClinicID:  testClinic,
		Phone:     testPhone,
		FirstName: &first,
		LastName:  &last,
		CreatedAt: time.Now(),
	}
}

func TestRequestOTP_Success(t *testing.T) {
	f := newPatientFixture(t)
	f.expectDispatch(1)

	resp, err := f.uc.RequestOTP(context.Background(), "+20 155-555-5555", testClinic)

	require.NoError(t, err)
	assert.Equal(t, "OTP sent successfully", resp.Message)
	assert.Equal(t, 300, resp.ExpiresIn)
	assert.Equal(t, 60, resp.CooldownSeconds)

	stored, err := f.mr.Get("otp:" + testPhone)
	require.NoError(t, err)
	assert.Equal(t, f.lastCode(), stored)

	count, err := f.mr.Get("rate:otp:" + testPhone)
	require.NoError(t, err)
	assert.Equal(t, "1", count)
	assert.True(t, f.mr.Exists("cooldown:otp:"+testPhone))
}

func TestRequestOTP_InvalidInput(t *testing.T) {
	f := newPatientFixture(t)

	_, err := f.uc.RequestOTP(context.Background(), "12ab", testClinic)
	requireAppError(t, err, models.KindValidation)

	_, err = f.uc.RequestOTP(context.Background(), testPhone, "")
	requireAppError(t, err, models.KindValidation)

	assert.Empty(t, f.mr.Keys())
}

func TestRequestOTP_Cooldown(t *testing.T) {
	f := newPatientFixture(t)
	f.expectDispatch(1)
	ctx := context.Background()

	_, err := f.uc.RequestOTP(ctx, testPhone, testClinic)
	require.NoError(t, err)

	f.mr.FastForward(20 * time.Second)
	_, err = f.uc.RequestOTP(ctx, testPhone, testClinic)
	appErr := requireAppError(t, err, models.KindThrottled)
	assert.Equal(t, 40*time.Second, appErr.RetryAfter)
	assert.Contains(t, appErr.Message, "40 seconds")
}

func TestRequestOTP_WindowExhausted(t *testing.T) {
	f := newPatientFixture(t)
	f.expectDispatch(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.uc.RequestOTP(ctx, testPhone, testClinic)
		require.NoError(t, err)
		f.mr.FastForward(61 * time.Second)
	}

	_, err := f.uc.RequestOTP(ctx, testPhone, testClinic)
	appErr := requireAppError(t, err, models.KindThrottled)
	assert.Contains(t, appErr.Message, "too many OTP requests")
	assert.Greater(t, appErr.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, appErr.RetryAfter, time.Hour)

	count, err := f.mr.Get("rate:otp:" + testPhone)
	require.NoError(t, err)
	assert.Equal(t, "3", count)
}

func TestRequestOTP_DeliveryFailureKeepsSlot(t *testing.T) {
	f := newPatientFixture(t)
	ctx := context.Background()

	f.sms.EXPECT().
		SendOTP(gomock.Any(), testPhone, gomock.Any()).
		Return(models.SMSSendResult{Success: false, Error: "gateway unreachable"}).
		Times(2)
	for i := 0; i < 2; i++ {
		_, err := f.uc.RequestOTP(ctx, testPhone, testClinic)
		appErr := requireAppError(t, err, models.KindDelivery)
		assert.Equal(t, "could not send OTP, please try again", appErr.Message)
		assert.Equal(t, models.DeliveryRetryAfter, appErr.RetryAfter)
	}
	assert.False(t, f.mr.Exists("rate:otp:"+testPhone))
	assert.False(t, f.mr.Exists("cooldown:otp:"+testPhone))

	f.expectDispatch(1)
	_, err := f.uc.RequestOTP(ctx, testPhone, testClinic)
	require.NoError(t, err)

	count, err := f.mr.Get("rate:otp:" + testPhone)
	require.NoError(t, err)
	assert.Equal(t, "1", count)
}

func TestRequestOTP_StoreUnavailable(t *testing.T) {
	f := newPatientFixture(t)
	f.mr.Close()

	_, err := f.uc.RequestOTP(context.Background(), testPhone, testClinic)
	appErr := requireAppError(t, err, models.KindInternal)
	assert.Equal(t, "internal server error", appErr.Message)
}

func TestVerifyOTP_EndToEnd(t *testing.T) {
	f := newPatientFixture(t)
	f.expectDispatch(1)
	ctx := context.Background()

	_, err := f.uc.RequestOTP(ctx, testPhone, testClinic)
	require.NoError(t, err)
	code := f.lastCode()

	for i := 0; i < 2; i++ {
		_, err := f.uc.VerifyOTP(ctx, testPhone, otherCode(code), testClinic)
		appErr := requireAppError(t, err, models.KindUnauthorized)
		assert.Equal(t, "invalid or expired code", appErr.Message)
	}
	attempts, err := f.mr.Get("otp:attempts:" + testPhone)
	require.NoError(t, err)
	assert.Equal(t, "2", attempts)

	patient := testPatientRecord()
	f.repo.EXPECT().FindPatient(gomock.Any(), testClinic, testPhone).Return(nil, models.ErrPatientNotFound)
	f.repo.EXPECT().
		CreatePatient(gomock.Any(), testClinic, testPhone, models.PatientDefaults{FirstName: "Patient", LastName: "5555"}).
		Return(patient, nil)
	f.events.EXPECT().
		PublishPatientRegistered(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.PatientRegisteredEvent) error {
			assert.Equal(t, patient.ID, e.PatientID)
			assert.Equal(t, testClinic, e.ClinicID)
			return nil
		})

	resp, err := f.uc.VerifyOTP(ctx, "201555555555", code, testClinic)
	require.NoError(t, err)
	assert.True(t, resp.IsNewPatient)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, patient.ID, resp.Patient.ID)
	assert.False(t, f.mr.Exists("otp:"+testPhone))
	assert.False(t, f.mr.Exists("otp:attempts:"+testPhone))

	claims, err := f.uc.tokens.ParseAccess(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, patient.ID, claims.Subject)
	assert.Equal(t, models.RolePatient, claims.Role)
	assert.Equal(t, testClinic, claims.ClinicID)

	_, err = f.uc.VerifyOTP(ctx, testPhone, code, testClinic)
	requireAppError(t, err, models.KindUnauthorized)
}

func TestVerifyOTP_LockedOutEvenWithCorrectCode(t *testing.T) {
	f := newPatientFixture(t)
	f.expectDispatch(1)
	ctx := context.Background()

	_, err := f.uc.RequestOTP(ctx, testPhone, testClinic)
	require.NoError(t, err)
	code := f.lastCode()

	for i := 0; i < 3; i++ {
		_, err := f.uc.VerifyOTP(ctx, testPhone, otherCode(code), testClinic)
		requireAppError(t, err, models.KindUnauthorized)
	}

	_, err = f.uc.VerifyOTP(ctx, testPhone, code, testClinic)
	appErr := requireAppError(t, err, models.KindUnauthorized)
	assert.Equal(t, "invalid or expired code", appErr.Message)
}

func TestVerifyOTP_ExistingPatient(t *testing.T) {
	f := newPatientFixture(t)
	ctx := context.Background()
	patient := testPatientRecord()

	f.repo.EXPECT().FindPatient(gomock.Any(), testClinic, testPhone).Return(patient, nil).Times(2)

	var ids []string
	for i := 0; i < 2; i++ {
		require.NoError(t, f.uc.otp.Store(ctx, testPhone, "246810"))
		resp, err := f.uc.VerifyOTP(ctx, testPhone, "246810", testClinic)
		require.NoError(t, err)
		assert.False(t, resp.IsNewPatient)
		ids = append(ids, resp.Patient.ID)
	}
	assert.Equal(t, ids[0], ids[1])
}

func TestVerifyOTP_ConcurrentCreateResolvesToExisting(t *testing.T) {
	f := newPatientFixture(t)
	ctx := context.Background()
	patient := testPatientRecord()

	gomock.InOrder(
		f.repo.EXPECT().FindPatient(gomock.Any(), testClinic, testPhone).Return(nil, models.ErrPatientNotFound),
		f.repo.EXPECT().CreatePatient(gomock.Any(), testClinic, testPhone, gomock.Any()).Return(nil, models.ErrPatientExists),
		f.repo.EXPECT().FindPatient(gomock.Any(), testClinic, testPhone).Return(patient, nil),
	)

	require.NoError(t, f.uc.otp.Store(ctx, testPhone, "135790"))
	resp, err := f.uc.VerifyOTP(ctx, testPhone, "135790", testClinic)
	require.NoError(t, err)
	assert.False(t, resp.IsNewPatient)
	assert.Equal(t, patient.ID, resp.Patient.ID)
}

func TestVerifyOTP_EventFailureDoesNotFailLogin(t *testing.T) {
	f := newPatientFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().FindPatient(gomock.Any(), testClinic, testPhone).Return(nil, models.ErrPatientNotFound)
	f.repo.EXPECT().CreatePatient(gomock.Any(), testClinic, testPhone, gomock.Any()).Return(testPatientRecord(), nil)
	f.events.EXPECT().PublishPatientRegistered(gomock.Any(), gomock.Any()).Return(errors.New("nsqd down"))

	require.NoError(t, f.uc.otp.Store(ctx, testPhone, "112233"))
	resp, err := f.uc.VerifyOTP(ctx, testPhone, "112233", testClinic)
	require.NoError(t, err)
	assert.True(t, resp.IsNewPatient)
}

func TestVerifyOTP_RepositoryFailureIsInternal(t *testing.T) {
	f := newPatientFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().FindPatient(gomock.Any(), testClinic, testPhone).Return(nil, errors.New("pq: connection refused"))

	require.NoError(t, f.uc.otp.Store(ctx, testPhone, "112233"))
	_, err := f.uc.VerifyOTP(ctx, testPhone, "112233", testClinic)
	appErr := requireAppError(t, err, models.KindInternal)
	assert.NotContains(t, appErr.Message, "pq")
}

func TestVerifyOTP_MalformedInputTouchesNoState(t *testing.T) {
	f := newPatientFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		phone string
		code  string
	}{
		{"short code", testPhone, "12345"},
		{"letters in code", testPhone, "12a456"},
		{"long code", testPhone, "1234567"},
		{"bad phone", "not-a-phone", "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.VerifyOTP(ctx, tt.phone, tt.code, testClinic)
			requireAppError(t, err, models.KindValidation)
		})
	}
	assert.Empty(t, f.mr.Keys())
}

func TestPatientRefreshAndAuthenticate(t *testing.T) {
	f := newPatientFixture(t)
	ctx := context.Background()
	patient := testPatientRecord()

	pair, err := f.uc.tokens.IssuePair(patient)
	require.NoError(t, err)

	f.repo.EXPECT().GetPatientByID(gomock.Any(), patient.ID).Return(patient, nil).Times(2)

	refreshed, err := f.uc.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	identity, err := f.uc.Authenticate(ctx, refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, patient.ID, identity.PatientID)
	assert.Equal(t, testClinic, identity.ClinicID)
	assert.Equal(t, models.RolePatient, identity.Role)

	// tokens are not interchangeable
	_, err = f.uc.RefreshToken(ctx, pair.AccessToken)
	requireAppError(t, err, models.KindUnauthorized)
	_, err = f.uc.Authenticate(ctx, pair.RefreshToken)
	requireAppError(t, err, models.KindUnauthorized)
}

func TestPatientAuthenticate_RemovedPatient(t *testing.T) {
	f := newPatientFixture(t)
	patient := testPatientRecord()

	pair, err := f.uc.tokens.IssuePair(patient)
	require.NoError(t, err)

	f.repo.EXPECT().GetPatientByID(gomock.Any(), patient.ID).Return(nil, models.ErrPatientNotFound).Times(2)

	_, err = f.uc.Authenticate(context.Background(), pair.AccessToken)
	requireAppError(t, err, models.KindUnauthorized)
	_, err = f.uc.RefreshToken(context.Background(), pair.RefreshToken)
	requireAppError(t, err, models.KindUnauthorized)
}

func TestPatientAuthenticate_RejectsStaffToken(t *testing.T) {
	f := newPatientFixture(t)
	cfg := testConfig()
	staffTokens := jwt.NewStaffTokenService(cfg.JWT.Issuer, cfg.JWT.Staff)

	pair, err := staffTokens.IssuePair(&models.StaffUser{
		ID:       "a1c3e5f7-0000-4000-8000-000000000001",
		ClinicID: testClinic,
		Email:    "admin@clinic.example",
		Role:     models.RoleAdmin,
		IsActive: true,
	})
	require.NoError(t, err)

	_, err = f.uc.Authenticate(context.Background(), pair.AccessToken)
	requireAppError(t, err, models.KindUnauthorized)
	_, err = f.uc.RefreshToken(context.Background(), pair.RefreshToken)
	requireAppError(t, err, models.KindUnauthorized)
}

func TestOTPStatusAndReset(t *testing.T) {
	f := newPatientFixture(t)
	f.expectDispatch(1)
	ctx := context.Background()

	status, err := f.uc.OTPStatus(ctx, testPhone)
	require.NoError(t, err)
	assert.False(t, status.Exists)
	assert.Zero(t, status.RemainingTTL)

	_, err = f.uc.RequestOTP(ctx, testPhone, testClinic)
	require.NoError(t, err)
	f.mr.FastForward(10 * time.Second)

	status, err = f.uc.OTPStatus(ctx, "0155 555 5555")
	require.NoError(t, err)
	assert.Equal(t, testPhone, status.Phone)
	assert.True(t, status.Exists)
	assert.Equal(t, 290, status.RemainingTTL)

	require.NoError(t, f.uc.ResetOTPLimits(ctx, testPhone))
	assert.False(t, f.mr.Exists("cooldown:otp:"+testPhone))
	assert.False(t, f.mr.Exists("rate:otp:"+testPhone))
	assert.True(t, f.mr.Exists("otp:"+testPhone))

	err = f.uc.ResetOTPLimits(ctx, "garbage")
	requireAppError(t, err, models.KindValidation)
}
