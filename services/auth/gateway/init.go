package gateway

import (
	"strings"

	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/clinicnet/clinicnet/services/auth"
)

// NewSMSGateway selects the SMS provider once at startup
func NewSMSGateway(cfg *models.Config, zapLogger *logger.ZapLogger) auth.SMSGateway {
	var gw auth.SMSGateway
	switch strings.ToLower(cfg.SMS.Provider) {
	case "twilio":
		gw = NewTwilioGateway(cfg.SMS, zapLogger)
	default:
		gw = NewSimulatedGateway(cfg.SMS, zapLogger)
	}

	zapLogger.Info("Using SMS provider", logger.String("provider", gw.ProviderName()))
	return gw
}

// NewEventPublisher returns the NSQ event gateway, or a discarding one when
// producer is nil
func NewEventPublisher(producer Publisher) auth.EventPublisher {
	if producer == nil {
		return DiscardEvents{}
	}
	return NewEventGateway(producer)
}
