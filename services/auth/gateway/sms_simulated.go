package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
)

// SimulatedGateway pretends to deliver SMS. It waits, then succeeds with the
// configured probability. Messages are logged so codes can be read in development.
type SimulatedGateway struct {
	delay       time.Duration
	successRate float64
	random      func() float64
	now         func() time.Time
	logger      *logger.ZapLogger
}

// NewSimulatedGateway creates the development SMS gateway
func NewSimulatedGateway(cfg models.SMSConfig, zapLogger *logger.ZapLogger) *SimulatedGateway {
	return &SimulatedGateway{
		delay:       cfg.MockDelay,
		successRate: cfg.MockSuccessRate,
		random:      rand.Float64,
		now:         time.Now,
		logger:      zapLogger,
	}
}

// Send simulates a delivery
func (g *SimulatedGateway) Send(ctx context.Context, phone, message string) models.SMSSendResult {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.SMSSendResult{Error: ErrGatewayUnreachable}
		case <-timer.C:
		}
	}

	g.logger.Info("Simulated SMS",
		logger.Phone("phone", phone),
		logger.String("message", message))

	if g.random() >= g.successRate {
		return models.SMSSendResult{Error: "Simulated delivery failure"}
	}
	return models.SMSSendResult{
		Success:   true,
		MessageID: fmt.Sprintf("mock-%d", g.now().UnixMilli()),
	}
}

// ProviderName returns the provider label
func (g *SimulatedGateway) ProviderName() string {
	return "mock"
}
