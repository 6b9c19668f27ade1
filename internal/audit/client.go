package audit

import "context"

// Client describes the HTTP caller behind a decision.
type Client struct {
	RequestID string
	IP        string
	UserAgent string
}

type clientKey struct{}

// WithClient stores c in ctx for loggers further down the call chain.
func WithClient(ctx context.Context, c Client) context.Context {
	return context.WithValue(ctx, clientKey{}, c)
}

// ClientFromContext returns the caller stored by WithClient, or the zero
// Client for work not started by a request.
func ClientFromContext(ctx context.Context) Client {
	c, _ := ctx.Value(clientKey{}).(Client)
	return c
}
