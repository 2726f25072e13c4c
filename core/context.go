package core

import "context"

// contextKey is a private type for context values to avoid collisions.
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	bypassCacheKey    contextKey = "bypassCache"
)

// WithSuppressHeader returns a context that suppresses the scope header in
// command output. Used by the MCP server, which must emit structured data
// only.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader checks if header output should be suppressed.
func shouldSuppressHeader(ctx context.Context) bool {
	suppress, ok := ctx.Value(suppressHeaderKey).(bool)
	return ok && suppress
}

// withBypassCache returns a context that forces record fetches to skip the
// cache and hit the remote source. Refresh uses this to invalidate
// memoized results while preserving scope and window.
func withBypassCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, bypassCacheKey, true)
}

// shouldBypassCache checks if cached record sets should be ignored.
func shouldBypassCache(ctx context.Context) bool {
	bypass, ok := ctx.Value(bypassCacheKey).(bool)
	return ok && bypass
}
