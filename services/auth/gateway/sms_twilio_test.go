package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/clinicnet/clinicnet/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopLogger() *logger.ZapLogger {
	return logger.NewNopLogger()
}

func twilioConfig(baseURL string) models.SMSConfig {
	return models.SMSConfig{
		SendTimeout: time.Second,
		Twilio: models.TwilioConfig{
			AccountSID: "AC123",
			AuthToken:  "secret",
			FromNumber: "+15005550006",
			BaseURL:    baseURL,
		},
	}
}

func TestTwilioGateway_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+201555555555", r.PostForm.Get("To"))
		assert.Equal(t, "+15005550006", r.PostForm.Get("From"))
		assert.Equal(t, "hello", r.PostForm.Get("Body"))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"sid":"SM42","status":"queued"}`)
	}))
	defer server.Close()

	gw := NewTwilioGateway(twilioConfig(server.URL), nopLogger())
	result := gw.Send(context.Background(), "+201555555555", "hello")

	assert.True(t, result.Success)
	assert.Equal(t, "SM42", result.MessageID)
	assert.Equal(t, "twilio", gw.ProviderName())
}

func TestTwilioGateway_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "api rejection",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"code":21211,"message":"The 'To' number is not a valid phone number.","status":400}`)
			},
			wantErr: "The 'To' number is not a valid phone number.",
		},
		{
			name: "rejection without body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr: "twilio returned status 401",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = io.WriteString(w, "upstream down")
			},
			wantErr: "503: upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			result := NewTwilioGateway(twilioConfig(server.URL), nopLogger()).
				Send(context.Background(), "+201555555555", "hello")

			assert.False(t, result.Success)
			assert.Contains(t, result.Error, tt.wantErr)
		})
	}
}

func TestTwilioGateway_TimeoutIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	cfg := twilioConfig(server.URL)
	cfg.SendTimeout = 20 * time.Millisecond

	result := NewTwilioGateway(cfg, nopLogger()).Send(context.Background(), "+201555555555", "hello")

	assert.False(t, result.Success)
	assert.Equal(t, ErrGatewayUnreachable, result.Error)
}

func TestTwilioGateway_NotConfigured(t *testing.T) {
	gw := NewTwilioGateway(models.SMSConfig{}, nopLogger())

	result := gw.Send(context.Background(), "+201555555555", "hello")

	assert.False(t, result.Success)
	assert.Equal(t, "Twilio not configured", result.Error)
}

func TestNewSMSGateway_SelectsProvider(t *testing.T) {
	cfg := &models.Config{SMS: models.SMSConfig{Provider: "Twilio"}}
	assert.IsType(t, &TwilioGateway{}, NewSMSGateway(cfg, nopLogger()))

	cfg.SMS.Provider = "mock"
	assert.IsType(t, &SimulatedGateway{}, NewSMSGateway(cfg, nopLogger()))

	cfg.SMS.Provider = ""
	assert.IsType(t, &SimulatedGateway{}, NewSMSGateway(cfg, nopLogger()))
}
