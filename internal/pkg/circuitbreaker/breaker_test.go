package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCarrier = errors.New("carrier unavailable")

func failing(context.Context) error    { return errCarrier }
func succeeding(context.Context) error { return nil }

func newTestBreaker(clock *time.Time, transitions *[]State) *CircuitBreaker {
	cfg := DefaultConfig("sms")
	cfg.FailureThreshold = 2
	cfg.Timeout = 10 * time.Second
	cfg.OnStateChange = func(name string, from, to State) {
		*transitions = append(*transitions, to)
	}
	cb := New(cfg, logger.NewNopLogger())
	cb.now = func() time.Time { return *clock }
	return cb
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	clock := time.Now()
	var transitions []State
	cb := newTestBreaker(&clock, &transitions)
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, failing), errCarrier)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, failing), errCarrier)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
	assert.Equal(t, []State{StateOpen}, transitions)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	clock := time.Now()
	var transitions []State
	cb := newTestBreaker(&clock, &transitions)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, failing)
	require.Equal(t, StateOpen, cb.State())

	clock = clock.Add(11 * time.Second)
	require.NoError(t, cb.Execute(ctx, succeeding))

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateClosed}, transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := time.Now()
	var transitions []State
	cb := newTestBreaker(&clock, &transitions)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, failing)

	clock = clock.Add(11 * time.Second)
	assert.ErrorIs(t, cb.Execute(ctx, failing), errCarrier)
	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, succeeding), ErrCircuitBreakerOpen)
}

func TestCircuitBreaker_SuccessResetsConsecutiveFailures(t *testing.T) {
	clock := time.Now()
	var transitions []State
	cb := newTestBreaker(&clock, &transitions)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, succeeding)
	_ = cb.Execute(ctx, failing)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
	assert.Empty(t, transitions)
}
