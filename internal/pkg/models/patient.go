package models

import (
	"time"
)

// Patient is a tenant-scoped patient identity. (ClinicID, Phone) is unique.
type Patient struct {
	ID        string    `json:"id" db:"id"`
	ClinicID  string    `json:"clinic_id" db:"clinic_id"`
	Phone     string    `json:"phone" db:"phone"`
	FirstName *string   `json:"first_name" db:"first_name"`
	LastName  *string   `json:"last_name" db:"last_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PatientDefaults holds the placeholder profile used when a patient is created on first login
type PatientDefaults struct {
	FirstName string
	LastName  string
}

// PatientSummary is the patient view returned after OTP verification
type PatientSummary struct {
	ID        string  `json:"id"`
	Phone     string  `json:"phone"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// Summary returns the public view of the patient
func (p *Patient) Summary() PatientSummary {
	return PatientSummary{
		ID:        p.ID,
		Phone:     p.Phone,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
}

// AuthenticatedPatient is the identity attached to a request carrying a valid patient token
type AuthenticatedPatient struct {
	PatientID string `json:"patient_id"`
	ClinicID  string `json:"clinic_id"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// SubjectID returns the patient id
func (a *AuthenticatedPatient) SubjectID() string {
	return a.PatientID
}
