package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	id "afternote/pkg/domain"
	"afternote/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*JWTClaims, error) { return s.claims, s.err }

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	owner := uuid.New()

	var seen id.OwnerID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.OwnerID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token sets owner", func(t *testing.T) {
		mw := RequireAuth(stubValidator{claims: &JWTClaims{OwnerID: owner.String()}}, logger)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		mw(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id.OwnerID(owner), seen)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		mw := RequireAuth(stubValidator{}, logger)
		w := httptest.NewRecorder()
		mw(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"error":"unauthorized"`)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		mw := RequireAuth(stubValidator{err: errors.New("expired")}, logger)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		mw(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-uuid subject is unauthorized", func(t *testing.T) {
		mw := RequireAuth(stubValidator{claims: &JWTClaims{OwnerID: "42"}}, logger)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer odd")
		w := httptest.NewRecorder()
		mw(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
