// Package logger provides structured logging helpers built on log/slog.
//
// New builds a *slog.Logger from functional options; NewFromConfig does the same
// from environment-driven Config. The attribute helpers give common fields stable
// keys and return an empty slog.Attr for nil or empty input, which slog drops:
//
//	log := logger.New(logger.WithProduction("contact-site"))
//
//	log.Warn("possible bot submission",
//		logger.Component("honeypot"),
//		logger.Form("contact"),
//		logger.ClientIP("203.0.113.7"),
//		logger.Reason("honeypot_filled"),
//	)
//
// # Context Attributes
//
// Extractors pull request-scoped values into every *Context call:
//
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "form rendered")
//
// Libraries in this module accept a *slog.Logger and default to Discard.
package logger
