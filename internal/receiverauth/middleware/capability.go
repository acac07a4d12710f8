// Package middleware turns the X-Auth-Code header into an AccessCapability
// on the request context.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"afternote/internal/receiverauth/models"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/httputil"
	"afternote/pkg/requestcontext"
)

// HeaderAuthCode carries the receiver's master key on every receiver call.
const HeaderAuthCode = "X-Auth-Code"

type capabilityKey struct{}

type Resolver interface {
	ResolveCapability(ctx context.Context, authCode string) (*models.AccessCapability, error)
}

type Authorizer interface {
	Authorize(ctx context.Context, capability models.AccessCapability) error
}

// WithCapability stores a resolved capability. Production code reaches it
// only through RequireCapability.
func WithCapability(ctx context.Context, capability models.AccessCapability) context.Context {
	return context.WithValue(ctx, capabilityKey{}, capability)
}

// CapabilityFrom returns the capability placed by RequireCapability.
func CapabilityFrom(ctx context.Context) (models.AccessCapability, bool) {
	c, ok := ctx.Value(capabilityKey{}).(models.AccessCapability)
	return c, ok && !c.IsZero()
}

// RequireCapability rejects requests whose X-Auth-Code does not resolve.
func RequireCapability(resolver Resolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authCode := r.Header.Get(HeaderAuthCode)
			if authCode == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "auth code required"))
				return
			}
			capability, err := resolver.ResolveCapability(ctx, authCode)
			if err != nil {
				logger.WarnContext(ctx, "auth code rejected",
					"request_id", requestcontext.RequestID(ctx),
					"error", err,
				)
				httputil.WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCapability(ctx, *capability)))
		})
	}
}

// RequireAccess must run after RequireCapability. It lets the request
// through only when the owner's delivery rules grant access.
func RequireAccess(authorizer Authorizer, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			capability, ok := CapabilityFrom(ctx)
			if !ok {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "auth code required"))
				return
			}
			if err := authorizer.Authorize(ctx, capability); err != nil {
				logger.InfoContext(ctx, "legacy access denied",
					"request_id", requestcontext.RequestID(ctx),
					"receiver_id", capability.ReceiverID.String(),
				)
				httputil.WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
