package logger

import (
	"context"
	"testing"

	"github.com/clinicnet/clinicnet/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCtxLoggingAddsRequestFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	previous := GetGlobalLogger()
	SetGlobalLogger(&ZapLogger{Logger: zap.New(core)})
	t.Cleanup(func() { SetGlobalLogger(previous) })

	ctx := requestcontext.WithRequestID(context.Background(), "req-1")
	ctx = requestcontext.WithClinicID(ctx, "clinic-1")

	WarnCtx(ctx, "OTP send failed", String("provider", "mock"))
	InfoCtx(context.Background(), "bare")

	entries := logs.All()
	assert.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "clinic-1", fields["clinic_id"])
	assert.Equal(t, "mock", fields["provider"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}
