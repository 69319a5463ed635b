// Audit command. Orchestrates the pipeline for one URL: fetch, parse,
// analyze, render, write. Handles flag validation and renderer selection.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/claritycompass/core"
	"github.com/gaurav-prasanna/claritycompass/core/audit"
	"github.com/gaurav-prasanna/claritycompass/core/fetch"
	"github.com/gaurav-prasanna/claritycompass/core/output"
	"github.com/gaurav-prasanna/claritycompass/core/render"
)

// Flag variables.
var (
	flagJSON      bool
	flagMarkdown  bool
	flagPDF       bool
	flagOutputDir string
)

var auditCmd = &cobra.Command{
	Use:   "audit <url>",
	Short: "Audit a URL and write the report in the selected format",
	Long: `Audit fetches a web page, runs the clarity and conversion analysis,
and writes the report in the selected output format (JSON, Markdown, or PDF).

Examples:
  claritycompass audit https://example.com --json
  claritycompass audit example.com --markdown --output_dir ./out
  claritycompass audit https://example.com/pricing --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	// Output format flags (mutually exclusive).
	auditCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the canonical JSON report")
	auditCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown report")
	auditCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF report")

	// Output directory.
	auditCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runAudit(cmd *cobra.Command, args []string) error {
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	pageURL, err := fetch.NormalizeURL(args[0])
	if err != nil {
		return fmt.Errorf("invalid URL: %s (use a host or a full address like https://example.com)", args[0])
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	fetcher := fetch.New()
	analyzer := audit.New(audit.Config{})

	ctx := context.Background()

	result, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	rep, err := analyzer.AnalyzeHTML(pageURL, result.HTML)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	data, err := renderer.Render(rep)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path, err := writer.Write(pageURL, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// selectRenderer checks that exactly one output format is chosen and
// returns the matching Renderer.
func selectRenderer() (core.Renderer, error) {
	formatCount := 0
	if flagJSON {
		formatCount++
	}
	if flagMarkdown {
		formatCount++
	}
	if flagPDF {
		formatCount++
	}

	if formatCount == 0 {
		return nil, fmt.Errorf("exactly one output format is required: --json, --markdown, or --pdf")
	}
	if formatCount > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewJSONRenderer(), nil
	}
}
