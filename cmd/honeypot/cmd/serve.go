package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/honeypot/core/cookie"
	"github.com/dmitrymomot/honeypot/core/logger"
	"github.com/dmitrymomot/honeypot/core/server"
	"github.com/dmitrymomot/honeypot/core/session"
	"github.com/dmitrymomot/honeypot/core/sessiontransport"
)

var (
	serveAddr    string
	serveBackend string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the honeypot-protected contact form",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		if serveBackend != "" {
			cfg.Backend = serveBackend
		}

		log := logger.NewFromConfig(cfg.Log)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		be, err := openBackend(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer be.close()

		sessions, err := session.NewFromConfig(cfg.Session, be.store)
		if err != nil {
			return err
		}
		cookies, err := cookie.NewFromConfig(cfg.Cookie)
		if err != nil {
			return fmt.Errorf("cookie manager (set COOKIE_SECRETS): %w", err)
		}

		a := &app{
			log:       log,
			transport: sessiontransport.NewCookieFromConfig(cfg.SessionCookie, sessions, cookies),
			honeypot:  cfg.Honeypot,
			maxBody:   cfg.MaxBodySize,
			checks:    be.checks,
			tokens:    be.tokens,
		}

		srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
		if err != nil {
			return err
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error { return srv.Run(ctx, a.routes()) })
		g.Go(func() error { return sweepSessions(ctx, sessions, cfg.CleanupInterval, log) })
		return g.Wait()
	},
}

// sweepSessions removes expired sessions every interval until ctx is done.
// Failures are logged and retried on the next tick.
func sweepSessions(ctx context.Context, sessions *session.Manager, interval time.Duration, log *slog.Logger) error {
	if interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := sessions.CleanupExpired(ctx)
			if err != nil {
				log.ErrorContext(ctx, "session cleanup failed", logger.Component("session"), logger.Error(err))
				continue
			}
			if n > 0 {
				log.InfoContext(ctx, "expired sessions removed", logger.Component("session"), slog.Int64("count", n))
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides SERVER_ADDR)")
	serveCmd.Flags().StringVarP(&serveBackend, "backend", "b", "", "Session backend: memory, redis, postgres or bolt (overrides SESSION_BACKEND)")
}
