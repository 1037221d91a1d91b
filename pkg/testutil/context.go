package testutil

import (
	"net/http"

	id "merit/pkg/domain"
	"merit/pkg/requestcontext"
)

// WithAccount adds an authenticated account to the request context. This
// simulates what the auth middleware does for authenticated requests.
func WithAccount(req *http.Request, account id.Account) *http.Request {
	return req.WithContext(requestcontext.WithAccount(req.Context(), account))
}

// WithAdmin marks the request context as carrying administrator authority,
// simulating the admin-token middleware.
func WithAdmin(req *http.Request) *http.Request {
	return req.WithContext(requestcontext.WithAdmin(req.Context(), true))
}
