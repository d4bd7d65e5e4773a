package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/circuitbreaker"
	nrpkg "github.com/clinicnet/clinicnet/internal/pkg/newrelic"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 10 * time.Second

const maxBodySize = 1 << 20

// Config configures a Client
type Config struct {
	BaseURL string
	Timeout time.Duration
	Breaker *circuitbreaker.CircuitBreaker // optional
}

// Client calls an external HTTP API. Calls run inside a New Relic external
// segment and, when configured, a circuit breaker. Requests are never retried.
type Client struct {
	baseURL    string
	httpClient *nethttp.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &nethttp.Client{
			Timeout: config.Timeout,
		},
		breaker: config.Breaker,
	}
}

// RequestOption mutates an outgoing request
type RequestOption func(req *nethttp.Request)

// WithBasicAuth sets HTTP basic credentials
func WithBasicAuth(username, password string) RequestOption {
	return func(req *nethttp.Request) {
		req.SetBasicAuth(username, password)
	}
}

// WithHeader sets a request header
func WithHeader(key, value string) RequestOption {
	return func(req *nethttp.Request) {
		req.Header.Set(key, value)
	}
}

// Response is a fully read response
type Response struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports a 2xx status
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeJSON unmarshals the body into v
func (r *Response) DecodeJSON(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// HTTPError is returned for 5xx responses, which count against the breaker
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// PostForm sends form as application/x-www-form-urlencoded. 4xx responses are
// returned without error so callers can read the API's error body.
func (c *Client) PostForm(ctx context.Context, endpoint string, form url.Values, opts ...RequestOption) (*Response, error) {
	opts = append([]RequestOption{WithHeader("Content-Type", "application/x-www-form-urlencoded")}, opts...)
	return c.do(ctx, nethttp.MethodPost, endpoint, form.Encode(), opts...)
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, nethttp.MethodGet, endpoint, "", opts...)
}

func (c *Client) do(ctx context.Context, method, endpoint, body string, opts ...RequestOption) (*Response, error) {
	var resp *Response
	call := func(ctx context.Context) error {
		var err error
		resp, err = c.roundTrip(ctx, method, endpoint, body, opts)
		return err
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(ctx, call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint, body string, opts []RequestOption) (*Response, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for _, opt := range opts {
		opt(req)
	}

	httpResp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if httpResp.StatusCode >= 500 {
		return nil, &HTTPError{StatusCode: httpResp.StatusCode, Message: strings.TrimSpace(string(data))}
	}
	return &Response{StatusCode: httpResp.StatusCode, Body: data}, nil
}
