package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/honeypot/core/honeypot"
)

var (
	tokenCount int
	tokenStyle bool
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print freshly generated honeypot tokens",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var gen honeypot.RandomGenerator
		out := cmd.OutOrStdout()

		for range max(tokenCount, 1) {
			tok, err := gen.Generate()
			if err != nil {
				return err
			}
			if tokenStyle {
				fmt.Fprintln(out, honeypot.StyleRule(tok))
				continue
			}
			fmt.Fprintln(out, tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().IntVarP(&tokenCount, "count", "n", 1, "Number of tokens")
	tokenCmd.Flags().BoolVar(&tokenStyle, "style", false, "Print each token as a CSS rule hiding that class")
}
