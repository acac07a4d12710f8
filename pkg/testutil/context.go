package testutil

import (
	"net/http"

	id "afternote/pkg/domain"
	"afternote/pkg/requestcontext"
)

// WithOwnerID adds an owner ID to the request context, as the auth
// middleware would for an authenticated testator. Invalid IDs are ignored.
func WithOwnerID(req *http.Request, ownerID string) *http.Request {
	if parsed, err := id.ParseOwnerID(ownerID); err == nil {
		return req.WithContext(requestcontext.WithOwnerID(req.Context(), parsed))
	}
	return req
}

// WithAuthCode sets the receiver capability header.
func WithAuthCode(req *http.Request, authCode string) *http.Request {
	req.Header.Set("X-Auth-Code", authCode)
	return req
}
