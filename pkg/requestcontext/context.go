// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets these values; services read them. Keeping the package free
// of net/http lets the badge service consume caller identity and request
// metadata without pulling transport code into its import graph.
//
// Usage in services (read values):
//
//	account := requestcontext.Account(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithAccount(ctx, account)
//	ctx = requestcontext.WithRequestID(ctx, requestID)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	id "merit/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	accountKey     struct{}
	adminKey       struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	devicePlatKey  struct{}
)

// Exported context keys for tests that need raw context.WithValue.
var (
	ContextKeyAccount        = accountKey{}
	ContextKeyAdmin          = adminKey{}
	ContextKeyRequestID      = requestIDKey{}
	ContextKeyRequestTime    = requestTimeKey{}
	ContextKeyClientIP       = clientIPKey{}
	ContextKeyUserAgent      = userAgentKey{}
	ContextKeyDevicePlatform = devicePlatKey{}
)

// Account retrieves the authenticated caller account from the context.
// Returns the zero value if no caller is authenticated.
func Account(ctx context.Context) id.Account {
	if account, ok := ctx.Value(ContextKeyAccount).(id.Account); ok {
		return account
	}
	return ""
}

// WithAccount injects the authenticated caller account into the context.
func WithAccount(ctx context.Context, account id.Account) context.Context {
	return context.WithValue(ctx, ContextKeyAccount, account)
}

// IsAdmin reports whether the admin-token middleware authenticated this
// request as the administrator.
func IsAdmin(ctx context.Context) bool {
	admin, ok := ctx.Value(ContextKeyAdmin).(bool)
	return ok && admin
}

// WithAdmin marks the context as carrying administrator authority.
func WithAdmin(ctx context.Context, admin bool) context.Context {
	return context.WithValue(ctx, ContextKeyAdmin, admin)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// ClientIP retrieves the client IP address from the context.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

// UserAgent retrieves the raw User-Agent from the context.
func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// DevicePlatform retrieves the parsed device platform ("browser/os") captured
// by the device middleware. Empty when the middleware did not run.
func DevicePlatform(ctx context.Context) string {
	if p, ok := ctx.Value(ContextKeyDevicePlatform).(string); ok {
		return p
	}
	return ""
}

// WithClientMetadata injects client IP, User-Agent and parsed platform into a
// context. Useful for service unit tests that skip the HTTP middleware chain.
func WithClientMetadata(ctx context.Context, clientIP, userAgent, platform string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyClientIP, clientIP)
	ctx = context.WithValue(ctx, ContextKeyUserAgent, userAgent)
	ctx = context.WithValue(ctx, ContextKeyDevicePlatform, platform)
	return ctx
}

// Now retrieves the request-scoped time from context. Falls back to
// time.Now() for non-HTTP contexts (workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for service unit
// tests that need deterministic timestamps.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
