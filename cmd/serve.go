// Serve command. Runs the HTTP API with graceful shutdown on
// SIGINT/SIGTERM.
package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/claritycompass/config"
	"github.com/gaurav-prasanna/claritycompass/core/audit"
	"github.com/gaurav-prasanna/claritycompass/core/fetch"
	"github.com/gaurav-prasanna/claritycompass/report"
	"github.com/gaurav-prasanna/claritycompass/server"
)

var flagPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve starts the HTTP API exposing POST /api/analyze and
POST /api/full-report. Configuration is read from the environment
(CLARITY_SERVER_PORT, CLARITY_HTTP_TIMEOUT_SECONDS, OPENAI_API_KEY, ...).`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagPort, "port", "", "Listen port (overrides CLARITY_SERVER_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	port := cfg.ServerPort
	if flagPort != "" {
		port = flagPort
	}

	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	fetcher := fetch.NewWithTimeout(timeout)
	analyzer := audit.New(audit.Config{})

	// The full-report surface is best effort: without a key the endpoint
	// answers with a configuration error instead of failing startup.
	var fullReport *report.Service
	if client, err := report.NewClient(cfg.OpenAI, timeout, logger); err != nil {
		logger.Warn("full reports disabled", "reason", err)
	} else {
		fullReport = report.NewService(fetcher, client, logger)
	}

	srv := server.New(":"+port, logger, analyzer, fetcher, fullReport)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
