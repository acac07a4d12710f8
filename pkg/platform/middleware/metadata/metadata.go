package metadata

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"afternote/pkg/requestcontext"
)

// ClientMetadata extracts client IP, User-Agent and a coarse device label from
// the request and adds them to the context for services and audit events.
// Apply it early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")
		ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r), ua)
		ctx = requestcontext.WithDeviceLabel(ctx, DeviceLabel(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DeviceLabel renders "browser/os" from a User-Agent string, or "unknown".
func DeviceLabel(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return "unknown"
	}
	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	os := ua.OS()
	if browser == "" {
		browser = "unknown"
	}
	if os == "" {
		return browser
	}
	if ua.Mobile() {
		return browser + "/" + os + " (mobile)"
	}
	return browser + "/" + os
}

// ClientIPFromRequest extracts the real client IP, honoring proxy headers.
func ClientIPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// first hop is the original client
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	// RemoteAddr is "ip:port" or "[::1]:port"
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}
	return "unknown"
}
