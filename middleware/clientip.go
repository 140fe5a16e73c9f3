package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/response"
	"github.com/dmitrymomot/honeypot/pkg/clientip"
)

type clientIPContextKey struct{}

// ClientIPConfig configures the client IP middleware.
type ClientIPConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Resolver extracts the IP from the request (default: clientip.GetIP)
	Resolver func(r *http.Request) string

	// ResponseHeader echoes the resolved IP in the named response header when set
	ResponseHeader string

	// ValidateFunc rejects requests with 403 when it returns an error
	ValidateFunc func(ctx handler.Context, ip string) error
}

// ClientIP stores the resolved client IP in the request context.
func ClientIP[C handler.Context]() handler.Middleware[C] {
	return ClientIPWithConfig[C](ClientIPConfig{})
}

// ClientIPWithConfig creates a client IP middleware with custom configuration.
func ClientIPWithConfig[C handler.Context](cfg ClientIPConfig) handler.Middleware[C] {
	if cfg.Resolver == nil {
		cfg.Resolver = clientip.GetIP
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			ip := cfg.Resolver(ctx.Request())
			ctx.SetValue(clientIPContextKey{}, ip)

			if cfg.ValidateFunc != nil {
				if err := cfg.ValidateFunc(ctx, ip); err != nil {
					return response.Error(response.ErrForbidden.WithError(err))
				}
			}

			resp := next(ctx)
			if cfg.ResponseHeader == "" || resp == nil {
				return resp
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(cfg.ResponseHeader, ip)
				return resp(w, r)
			}
		}
	}
}

// GetClientIP returns the IP stored by the ClientIP middleware.
func GetClientIP(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey{}).(string)
	return ip, ok
}
