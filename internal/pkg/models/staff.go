package models

import (
	"time"
)

// StaffRole is the closed set of roles a clinic staff user can hold
type StaffRole string

const (
	RoleAdmin     StaffRole = "ADMIN"
	RoleDoctor    StaffRole = "DOCTOR"
	RoleReception StaffRole = "RECEPTION"
)

// RolePatient is the only role accepted in the patient trust domain
const RolePatient = "PATIENT"

// Valid reports whether r is one of the staff roles
func (r StaffRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleReception:
		return true
	}
	return false
}

// StaffUser is a clinic staff account. It is created outside this service.
type StaffUser struct {
	ID           string     `json:"id" db:"id"`
	ClinicID     string     `json:"clinic_id" db:"clinic_id"`
	BranchID     *string    `json:"branch_id,omitempty" db:"branch_id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	Role         StaffRole  `json:"role" db:"role"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// StaffSummary is the staff view returned after login
type StaffSummary struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      StaffRole `json:"role"`
	ClinicID  string    `json:"clinic_id"`
	BranchID  *string   `json:"branch_id,omitempty"`
}

// Summary returns the public view of the staff user
func (s *StaffUser) Summary() StaffSummary {
	return StaffSummary{
		ID:        s.ID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Role:      s.Role,
		ClinicID:  s.ClinicID,
		BranchID:  s.BranchID,
	}
}

// AuthenticatedStaff is the identity attached to a request carrying a valid staff token
type AuthenticatedStaff struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Role     StaffRole `json:"role"`
	ClinicID string    `json:"clinic_id"`
	BranchID *string   `json:"branch_id,omitempty"`
}

// SubjectID returns the staff user id
func (a *AuthenticatedStaff) SubjectID() string {
	return a.UserID
}
