package requestcontext

import (
	"context"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// ClinicIDKey is the context key for the tenant
	ClinicIDKey ContextKey = "clinic_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// WithClinicID adds the tenant to the context
func WithClinicID(ctx context.Context, clinicID string) context.Context {
	return context.WithValue(ctx, ClinicIDKey, clinicID)
}

// GetClinicID extracts the tenant from context
func GetClinicID(ctx context.Context) string {
	if clinicID, ok := ctx.Value(ClinicIDKey).(string); ok {
		return clinicID
	}
	return ""
}
