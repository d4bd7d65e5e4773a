package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/metrics"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/clinicnet/clinicnet/services/auth"
)

// ErrGatewayUnreachable is reported when a send outlives its timeout
const ErrGatewayUnreachable = "gateway unreachable"

// Dispatcher renders SMS templates and sends them through one gateway,
// bounding every send with a timeout
type Dispatcher struct {
	gateway auth.SMSGateway
	timeout time.Duration
	otpTTL  time.Duration
}

// NewDispatcher creates a dispatcher over gateway
func NewDispatcher(gateway auth.SMSGateway, cfg *models.Config) *Dispatcher {
	timeout := cfg.SMS.SendTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		gateway: gateway,
		timeout: timeout,
		otpTTL:  cfg.OTP.TTL,
	}
}

// SendOTP sends a verification code
func (d *Dispatcher) SendOTP(ctx context.Context, phone, code string) models.SMSSendResult {
	minutes := int(d.otpTTL / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	message := fmt.Sprintf("Your ClinicNet verification code is: %s. Valid for %d minutes.", code, minutes)
	return d.send(ctx, phone, message)
}

// SendAppointmentReminder reminds a patient of an upcoming appointment
func (d *Dispatcher) SendAppointmentReminder(ctx context.Context, phone, doctorName string, at time.Time) models.SMSSendResult {
	message := fmt.Sprintf("Reminder: Your appointment with Dr. %s is at %s", doctorName, at.Format("Mon 02 Jan 2006 15:04"))
	return d.send(ctx, phone, message)
}

// SendAppointmentConfirmation confirms a booked appointment
func (d *Dispatcher) SendAppointmentConfirmation(ctx context.Context, phone, details string) models.SMSSendResult {
	return d.send(ctx, phone, "Your appointment has been confirmed. "+details)
}

// ProviderName returns the name of the underlying gateway
func (d *Dispatcher) ProviderName() string {
	return d.gateway.ProviderName()
}

func (d *Dispatcher) send(ctx context.Context, phone, message string) models.SMSSendResult {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	provider := d.gateway.ProviderName()
	start := time.Now()

	done := make(chan models.SMSSendResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- models.SMSSendResult{Error: fmt.Sprintf("gateway panic: %v", r)}
			}
		}()
		done <- d.gateway.Send(ctx, phone, message)
	}()

	var result models.SMSSendResult
	select {
	case result = <-done:
	case <-ctx.Done():
		result = models.SMSSendResult{Error: ErrGatewayUnreachable}
	}

	metrics.SMSSendDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if result.Success {
		metrics.SMSSendTotal.WithLabelValues(provider, "success").Inc()
	} else {
		metrics.SMSSendTotal.WithLabelValues(provider, "failure").Inc()
		logger.WarnCtx(ctx, "SMS send failed",
			logger.String("provider", provider),
			logger.Phone("phone", phone),
			logger.String("error", result.Error))
	}
	return result
}
