// Package health provides liveness and readiness handlers.
//
//	r.Method(http.MethodGet, "/health/live", adapt(health.Liveness[*handler.RequestContext]))
//	r.Method(http.MethodGet, "/health/ready", adapt(health.Readiness[*handler.RequestContext](log,
//		health.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//	)))
//
// Each readiness check gets DefaultCheckTimeout. Failures are logged with the
// check name and answered with 503 Service Unavailable.
package health
