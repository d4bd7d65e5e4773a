package auth

import (
	"context"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/clinicnet/clinicnet/services/auth PatientRepo,StaffRepo,CacheStore

// PatientRepo defines patient persistence. Lookups are always tenant scoped.
type PatientRepo interface {
	// FindPatient returns models.ErrPatientNotFound when no patient has phone in clinicID
	FindPatient(ctx context.Context, clinicID, phone string) (*models.Patient, error)
	// CreatePatient returns models.ErrPatientExists when (clinicID, phone) is taken
	CreatePatient(ctx context.Context, clinicID, phone string, defaults models.PatientDefaults) (*models.Patient, error)
	GetPatientByID(ctx context.Context, id string) (*models.Patient, error)
}

// StaffRepo defines staff persistence. Staff accounts are provisioned elsewhere.
type StaffRepo interface {
	FindStaffByEmail(ctx context.Context, email string) (*models.StaffUser, error)
	GetStaffByID(ctx context.Context, id string) (*models.StaffUser, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// TTL sentinels reported by CacheStore.TTL
const (
	TTLNoExpiry   int64 = -1
	TTLKeyMissing int64 = -2
)

// CacheStore is the key/value store holding codes, counters and cooldowns.
// TTL reports whole seconds, -1 for a key without expiry and -2 for a missing key.
type CacheStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (int64, error)
	Exists(ctx context.Context, key string) (bool, error)
	Del(ctx context.Context, keys ...string) (int64, error)
}
