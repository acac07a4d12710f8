package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "afternote/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid input"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "bad_request" {
			t.Fatalf("expected error code bad_request, got %q", body["error"])
		}
		if body["error_description"] != "invalid input" {
			t.Fatalf("expected error_description to be returned for bad request")
		}
	})
}

type sampleRequest struct {
	Name string `json:"name"`
}

func (r *sampleRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *sampleRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("normalizes and returns request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"  mom  "}`))
		w := httptest.NewRecorder()
		req, ok := DecodeAndPrepare[sampleRequest](w, r, logger, r.Context(), "req-1")
		if !ok {
			t.Fatalf("expected decode to succeed, got status %d", w.Code)
		}
		if req.Name != "mom" {
			t.Fatalf("expected trimmed name, got %q", req.Name)
		}
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[sampleRequest](w, r, logger, r.Context(), "req-2")
		if ok || w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error keeps its description", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"  "}`))
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[sampleRequest](w, r, logger, r.Context(), "req-3")
		if ok {
			t.Fatal("expected validation failure")
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "validation_error" || body["error_description"] != "name is required" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestStatusFor(t *testing.T) {
	cases := map[dErrors.Code]int{
		dErrors.CodeUnauthorized:    http.StatusUnauthorized,
		dErrors.CodeNotFound:        http.StatusNotFound,
		dErrors.CodeConflict:        http.StatusConflict,
		dErrors.CodeTooManyRequests: http.StatusTooManyRequests,
		dErrors.CodeValidation:      http.StatusBadRequest,
		dErrors.CodeInternal:        http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := StatusFor(code); got != want {
			t.Errorf("StatusFor(%s) = %d, want %d", code, got, want)
		}
	}
}
