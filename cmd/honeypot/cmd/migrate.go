package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/honeypot/core/logger"
	"github.com/dmitrymomot/honeypot/integration/database/pg"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the PostgreSQL session schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := logger.NewFromConfig(cfg.Log)

		pool, err := pg.Connect(cmd.Context(), cfg.Postgres)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pg.Migrate(cmd.Context(), pool, cfg.Postgres, log); err != nil {
			return err
		}
		log.InfoContext(cmd.Context(), "migrations up to date", logger.Component("pg"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
