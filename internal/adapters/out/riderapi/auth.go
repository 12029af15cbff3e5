package riderapi

import (
	"context"
	"strings"
)

type tokenKey struct{}

// WithToken attaches the rider's bearer token to ctx. Backend calls made with
// the returned context act as that rider.
func WithToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the token attached by WithToken.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

func (c *Client) tokenFor(ctx context.Context) string {
	if token, ok := TokenFrom(ctx); ok {
		return token
	}
	return c.token
}
