package http

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/circuitbreaker"
	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantBaseURL string
		wantTimeout time.Duration
	}{
		{
			name:        "Valid configuration",
			config:      Config{BaseURL: "https://api.example.com", Timeout: 30 * time.Second},
			wantBaseURL: "https://api.example.com",
			wantTimeout: 30 * time.Second,
		},
		{
			name:        "With trailing slash",
			config:      Config{BaseURL: "https://api.example.com/", Timeout: 10 * time.Second},
			wantBaseURL: "https://api.example.com",
			wantTimeout: 10 * time.Second,
		},
		{
			name:        "Default timeout",
			config:      Config{BaseURL: "http://localhost:8080"},
			wantBaseURL: "http://localhost:8080",
			wantTimeout: DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			assert.Equal(t, tt.wantBaseURL, client.baseURL)
			assert.Equal(t, tt.wantTimeout, client.httpClient.Timeout)
		})
	}
}

func TestClient_PostForm(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "sid", user)
		assert.Equal(t, "token", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+201555555555", r.PostForm.Get("To"))

		w.WriteHeader(nethttp.StatusCreated)
		_, _ = io.WriteString(w, `{"sid":"SM123"}`)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	resp, err := client.PostForm(context.Background(), "/messages",
		url.Values{"To": {"+201555555555"}}, WithBasicAuth("sid", "token"))

	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())

	var body struct {
		SID string `json:"sid"`
	}
	require.NoError(t, resp.DecodeJSON(&body))
	assert.Equal(t, "SM123", body.SID)
}

func TestClient_ClientErrorIsNotAnError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"invalid To number"}`)
	}))
	defer server.Close()

	resp, err := NewClient(Config{BaseURL: server.URL}).Get(context.Background(), "/")

	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestClient_ServerErrorsOpenBreaker(t *testing.T) {
	calls := 0
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		calls++
		w.WriteHeader(nethttp.StatusBadGateway)
	}))
	defer server.Close()

	cfg := circuitbreaker.DefaultConfig("test")
	cfg.FailureThreshold = 2
	client := NewClient(Config{
		BaseURL: server.URL,
		Breaker: circuitbreaker.New(cfg, logger.NewNopLogger()),
	})

	for i := 0; i < 2; i++ {
		_, err := client.Get(context.Background(), "/")
		var httpErr *HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, nethttp.StatusBadGateway, httpErr.StatusCode)
	}

	_, err := client.Get(context.Background(), "/")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Equal(t, 2, calls)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := NewClient(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond}).Get(context.Background(), "/")
	assert.Error(t, err)
}
