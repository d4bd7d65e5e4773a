package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/google/uuid"
)

const patientColumns = `id, clinic_id, phone, first_name, last_name, created_at, updated_at`

// FindPatient retrieves a patient by phone within a clinic
func (r *PatientRepo) FindPatient(ctx context.Context, clinicID, phone string) (*models.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE clinic_id = $1 AND phone = $2`

	var patient models.Patient
	if err := r.db.GetContext(ctx, &patient, query, clinicID, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

// GetPatientByID retrieves a patient by id
func (r *PatientRepo) GetPatientByID(ctx context.Context, id string) (*models.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	var patient models.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

// CreatePatient inserts a patient with placeholder names. It returns
// models.ErrPatientExists when (clinic_id, phone) is already taken.
func (r *PatientRepo) CreatePatient(ctx context.Context, clinicID, phone string, defaults models.PatientDefaults) (*models.Patient, error) {
	now := time.Now().UTC()
	first, last := defaults.FirstName, defaults.LastName
	patient := &models.Patient{
		ID:        uuid.New().String(),
		ClinicID:  clinicID,
		Phone:     phone,
		FirstName: &first,
		LastName:  &last,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO patients (id, clinic_id, phone, first_name, last_name, created_at, updated_at)
		VALUES (:id, :clinic_id, :phone, :first_name, :last_name, :created_at, :updated_at)
		ON CONFLICT (clinic_id, phone) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, patient)
	if err != nil {
		return nil, fmt.Errorf("failed to insert patient: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to insert patient: %w", err)
	}
	if inserted == 0 {
		return nil, models.ErrPatientExists
	}
	return patient, nil
}
