package auth

import (
	"context"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/clinicnet/clinicnet/services/auth SMSGateway,SMSDispatcher,EventPublisher

// SMSGateway is a single SMS carrier. Delivery problems are reported in the
// result, never as a panic or an error.
type SMSGateway interface {
	Send(ctx context.Context, phone, message string) models.SMSSendResult
	ProviderName() string
}

// SMSDispatcher renders message templates and hands them to the configured gateway
type SMSDispatcher interface {
	SendOTP(ctx context.Context, phone, code string) models.SMSSendResult
	SendAppointmentReminder(ctx context.Context, phone, doctorName string, at time.Time) models.SMSSendResult
	SendAppointmentConfirmation(ctx context.Context, phone, details string) models.SMSSendResult
	ProviderName() string
}

// EventPublisher emits audit events. Failures never fail the login that produced them.
type EventPublisher interface {
	PublishPatientRegistered(ctx context.Context, event *models.PatientRegisteredEvent) error
	PublishStaffLoggedIn(ctx context.Context, event *models.StaffLoggedInEvent) error
}
