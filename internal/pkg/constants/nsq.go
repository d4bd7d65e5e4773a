package constants

// NSQ topics for auth events
const (
	TopicPatientRegistered = "auth.patient.registered"
	TopicStaffLoggedIn     = "auth.staff.logged_in"
)
