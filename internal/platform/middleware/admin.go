package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"merit/pkg/requestcontext"
)

// RequireAdminToken gates administrator routes on the X-Admin-Token header.
// Only a bcrypt hash of the token is configured; bcrypt comparison is
// constant-time over the hash, so the plaintext never lives in config or
// process environment listings. Successful requests carry administrator
// authority in context, which the service re-checks on every privileged
// operation.
func RequireAdminToken(tokenHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Admin-Token")
			if token == "" || bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)) != nil {
				logger.WarnContext(r.Context(), "admin token mismatch",
					"request_id", GetRequestID(r.Context()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"not_authorized","error_description":"admin token required"}`))
				return
			}

			ctx := requestcontext.WithAdmin(r.Context(), true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
