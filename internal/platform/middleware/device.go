package middleware

import (
	"net"
	"net/http"

	"github.com/mssola/useragent"

	"merit/pkg/requestcontext"
)

// Device captures client metadata (IP, raw User-Agent, parsed platform) into
// context. Issuance log lines and events carry the platform so operators can
// spot scripted mint abuse without storing raw user agents.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		rawUA := r.Header.Get("User-Agent")

		platform := ""
		if rawUA != "" {
			ua := useragent.New(rawUA)
			name, version := ua.Browser()
			platform = name + " " + version + " / " + ua.OS()
			if ua.Bot() {
				platform = "bot: " + name
			}
		}

		ctx := requestcontext.WithClientMetadata(r.Context(), ip, rawUA, platform)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
