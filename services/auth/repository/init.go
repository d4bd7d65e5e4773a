package repository

import (
	"github.com/jmoiron/sqlx"
)

// PatientRepo implements auth.PatientRepo on PostgreSQL
type PatientRepo struct {
	db *sqlx.DB
}

// NewPatientRepo creates a new patient repository
func NewPatientRepo(db *sqlx.DB) *PatientRepo {
	return &PatientRepo{db: db}
}

// StaffRepo implements auth.StaffRepo on PostgreSQL
type StaffRepo struct {
	db *sqlx.DB
}

// NewStaffRepo creates a new staff repository
func NewStaffRepo(db *sqlx.DB) *StaffRepo {
	return &StaffRepo{db: db}
}
