package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/honeypot/core/handler"
	"github.com/dmitrymomot/honeypot/core/logger"
	"github.com/dmitrymomot/honeypot/core/response"
)

// DefaultCheckTimeout bounds every readiness check.
const DefaultCheckTimeout = 2 * time.Second

// Check is a named dependency check such as pg.Healthcheck or redis.Healthcheck.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Liveness reports that the process is serving requests. No dependency checks.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

// Readiness runs checks in order and answers 503 on the first failure.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx C) handler.Response {
		for _, c := range checks {
			checkCtx, cancel := context.WithTimeout(ctx, DefaultCheckTimeout)
			err := c.Fn(checkCtx)
			cancel()

			if err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					slog.String("check", c.Name),
					logger.Error(err),
				)
				return response.Error(response.ErrServiceUnavailable)
			}
		}

		return response.String("READY")
	}
}
