package auth

import (
	"context"
	"strings"
)

type tokenContextKey struct{}

// WithToken stores the caller's bearer token so outbound REST calls can forward it.
func WithToken(ctx context.Context, token string) context.Context {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenContextKey{}, trimmed)
}

// TokenFromContext returns the bearer token previously stored with WithToken.
func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}
