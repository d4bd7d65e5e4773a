package gateway

import (
	"context"
	"fmt"

	"github.com/clinicnet/clinicnet/internal/pkg/constants"
	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	nr "github.com/clinicnet/clinicnet/internal/pkg/newrelic"
)

// Publisher is the subset of the NSQ producer used for events
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// EventGateway publishes auth audit events to NSQ
type EventGateway struct {
	producer Publisher
}

// NewEventGateway creates an event gateway over producer
func NewEventGateway(producer Publisher) *EventGateway {
	return &EventGateway{producer: producer}
}

// PublishPatientRegistered announces a patient created on first login
func (g *EventGateway) PublishPatientRegistered(ctx context.Context, event *models.PatientRegisteredEvent) error {
	return g.publish(ctx, constants.TopicPatientRegistered, event)
}

// PublishStaffLoggedIn announces a successful staff login
func (g *EventGateway) PublishStaffLoggedIn(ctx context.Context, event *models.StaffLoggedInEvent) error {
	return g.publish(ctx, constants.TopicStaffLoggedIn, event)
}

func (g *EventGateway) publish(ctx context.Context, topic string, event interface{}) error {
	return nr.WithSegment(ctx, "nsq.Publish/"+topic, func() error {
		if err := g.producer.Publish(topic, event); err != nil {
			return fmt.Errorf("failed to publish %s: %w", topic, err)
		}
		return nil
	})
}

// DiscardEvents drops events when NSQ is disabled
type DiscardEvents struct{}

// PublishPatientRegistered drops the event
func (DiscardEvents) PublishPatientRegistered(ctx context.Context, event *models.PatientRegisteredEvent) error {
	logger.Debug("NSQ disabled, dropping event", logger.String("topic", constants.TopicPatientRegistered))
	return nil
}

// PublishStaffLoggedIn drops the event
func (DiscardEvents) PublishStaffLoggedIn(ctx context.Context, event *models.StaffLoggedInEvent) error {
	logger.Debug("NSQ disabled, dropping event", logger.String("topic", constants.TopicStaffLoggedIn))
	return nil
}
