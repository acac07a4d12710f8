package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	id "afternote/pkg/domain"
	request "afternote/pkg/platform/middleware/request"
	"afternote/pkg/requestcontext"
)

// JWTValidator validates owner access tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims are the claims the middleware needs from a validated token.
type JWTClaims struct {
	OwnerID string
	JTI     string
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// RequireAuth validates the bearer token and stores the owner ID in the
// context. Only the testator's own endpoints use it.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := request.GetRequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			ownerID, err := id.ParseOwnerID(claims.OwnerID)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - malformed subject",
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			ctx = requestcontext.WithOwnerID(ctx, ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
