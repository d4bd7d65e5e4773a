package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/clinicnet/clinicnet/internal/pkg/circuitbreaker"
	httpclient "github.com/clinicnet/clinicnet/internal/pkg/http"
	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/metrics"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
)

const defaultTwilioBaseURL = "https://api.twilio.com"

type twilioMessage struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TwilioGateway sends SMS through the Twilio Messages REST API
type TwilioGateway struct {
	client     *httpclient.Client
	accountSID string
	authToken  string
	from       string
}

// NewTwilioGateway creates the live SMS gateway. Calls go through a circuit
// breaker so a failing carrier is not hammered.
func NewTwilioGateway(cfg models.SMSConfig, zapLogger *logger.ZapLogger) *TwilioGateway {
	baseURL := cfg.Twilio.BaseURL
	if baseURL == "" {
		baseURL = defaultTwilioBaseURL
	}

	breakerCfg := circuitbreaker.DefaultConfig("twilio")
	breakerCfg.OnStateChange = func(name string, from, to circuitbreaker.State) {
		metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
	}

	return &TwilioGateway{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL: baseURL,
			Timeout: cfg.SendTimeout,
			Breaker: circuitbreaker.New(breakerCfg, zapLogger),
		}),
		accountSID: cfg.Twilio.AccountSID,
		authToken:  cfg.Twilio.AuthToken,
		from:       cfg.Twilio.FromNumber,
	}
}

// Send delivers message to phone. Every failure is reported in the result.
func (g *TwilioGateway) Send(ctx context.Context, phone, message string) models.SMSSendResult {
	if g.accountSID == "" || g.authToken == "" {
		return models.SMSSendResult{Error: "Twilio not configured"}
	}

	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", g.from)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", url.PathEscape(g.accountSID))
	resp, err := g.client.PostForm(ctx, endpoint, form, httpclient.WithBasicAuth(g.accountSID, g.authToken))
	if err != nil {
		return models.SMSSendResult{Error: twilioError(ctx, err)}
	}

	var msg twilioMessage
	if err := resp.DecodeJSON(&msg); err != nil && resp.IsSuccess() {
		return models.SMSSendResult{Error: err.Error()}
	}
	if !resp.IsSuccess() {
		if msg.Message == "" {
			msg.Message = fmt.Sprintf("twilio returned status %d", resp.StatusCode)
		}
		return models.SMSSendResult{Error: msg.Message}
	}

	return models.SMSSendResult{Success: true, MessageID: msg.SID}
}

// ProviderName returns the provider label
func (g *TwilioGateway) ProviderName() string {
	return "twilio"
}

func twilioError(ctx context.Context, err error) string {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrGatewayUnreachable
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return ErrGatewayUnreachable
	}
	if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return ErrGatewayUnreachable
	}
	return err.Error()
}
