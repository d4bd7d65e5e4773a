package constants

// HTTP headers and echo context keys
const (
	HeaderClinicID  = "X-Clinic-ID"
	HeaderRequestID = "X-Request-ID"

	ContextKeyRequestID = "request_id"
	ContextKeyClinicID  = "clinic_id"
	ContextKeyPatient   = "patient"
	ContextKeyStaff     = "staff"
	ContextKeyUserID    = "user_id"
)
