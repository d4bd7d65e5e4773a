package models

import "time"

// PatientRegisteredEvent is published when a patient record is created on first OTP login
type PatientRegisteredEvent struct {
	PatientID    string    `json:"patient_id"`
	ClinicID     string    `json:"clinic_id"`
	Phone        string    `json:"phone"`
	RegisteredAt time.Time `json:"registered_at"`
}

// StaffLoggedInEvent is published after a successful staff login
type StaffLoggedInEvent struct {
	UserID     string    `json:"user_id"`
	ClinicID   string    `json:"clinic_id"`
	Role       StaffRole `json:"role"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
