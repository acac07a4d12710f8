package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"afternote/pkg/requestcontext"
)

func TestClientIPFromRequest(t *testing.T) {
	t.Run("prefers first X-Forwarded-For hop", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		assert.Equal(t, "203.0.113.7", ClientIPFromRequest(r))
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Real-IP", " 198.51.100.2 ")
		assert.Equal(t, "198.51.100.2", ClientIPFromRequest(r))
	})

	t.Run("strips port from RemoteAddr", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.1:5555"
		assert.Equal(t, "192.0.2.1", ClientIPFromRequest(r))
	})
}

func TestClientMetadata_PopulatesContext(t *testing.T) {
	var ip, ua, label string
	h := ClientMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip = requestcontext.ClientIP(r.Context())
		ua = requestcontext.UserAgent(r.Context())
		label = requestcontext.DeviceLabel(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:1234"
	r.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "192.0.2.10", ip)
	assert.Contains(t, ua, "Chrome")
	assert.Contains(t, label, "Chrome")
}

func TestDeviceLabel_Empty(t *testing.T) {
	assert.Equal(t, "unknown", DeviceLabel(""))
}
