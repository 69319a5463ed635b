// Package cmd implements the CLI commands for ClarityCompass using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "claritycompass",
	Short: "ClarityCompass — audit web pages for clarity and conversion",
	Long: `ClarityCompass analyzes a public web page and produces a structured
clarity and conversion audit: per-section readability metrics, five
Compass scores, insights, and a ranked list of quick wins.

Usage:
  claritycompass audit <url> [flags]
  claritycompass serve [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
