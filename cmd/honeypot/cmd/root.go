package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "honeypot",
	Short: "Honeypot form protection demo and tooling",
	Long: `Serves a contact form protected by an invisible honeypot field and an
optional minimum fill time, and manages the session storage behind it.

Configuration comes from the environment (and .env); --config overlays a YAML file.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML configuration file")
}
