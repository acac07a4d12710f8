// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets these values; services read them without importing net/http.
//
//	ownerID := requestcontext.OwnerID(ctx)
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject values directly:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithClientMetadata(ctx, "10.0.0.1", "okhttp/4.12.0")
package requestcontext

import (
	"context"
	"time"

	id "afternote/pkg/domain"
)

type (
	ownerIDKey     struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	deviceLabelKey struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyOwnerID     = ownerIDKey{}
	ContextKeyClientIP    = clientIPKey{}
	ContextKeyUserAgent   = userAgentKey{}
	ContextKeyDeviceLabel = deviceLabelKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// OwnerID retrieves the authenticated owner (testator) from the context.
// Returns the zero value if not set.
func OwnerID(ctx context.Context) id.OwnerID {
	if ownerID, ok := ctx.Value(ContextKeyOwnerID).(id.OwnerID); ok {
		return ownerID
	}
	return id.OwnerID{}
}

func WithOwnerID(ctx context.Context, ownerID id.OwnerID) context.Context {
	return context.WithValue(ctx, ContextKeyOwnerID, ownerID)
}

// ClientIP retrieves the client IP address from the context.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

// UserAgent retrieves the raw User-Agent from the context.
func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// DeviceLabel retrieves the parsed "browser/os" label from the context.
func DeviceLabel(ctx context.Context) string {
	if label, ok := ctx.Value(ContextKeyDeviceLabel).(string); ok {
		return label
	}
	return ""
}

// WithClientMetadata injects client IP and User-Agent into a context.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyClientIP, clientIP)
	ctx = context.WithValue(ctx, ContextKeyUserAgent, userAgent)
	return ctx
}

func WithDeviceLabel(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, ContextKeyDeviceLabel, label)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
