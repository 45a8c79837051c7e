package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var (
	servePort           int
	serveRateLimit      bool
	serveValidateSchema bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the analyzer:

  POST /analyze          one résumé against one job description
  POST /analyze/stream   the same, streaming step events over SSE
  POST /analyze/batch    many résumés against one job description
  GET  /taxonomy         skill categories and learning resources
  GET  /health           liveness
  GET  /metrics          Prometheus metrics`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveRateLimit, "rate-limit", true, "Enable per-client rate limiting")
	serveCmd.Flags().BoolVar(&serveValidateSchema, "validate-schema", false, "Check every report against the JSON Schema")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("rate-limit") {
			cfg.RateLimit.Enabled = serveRateLimit
		}
		if cmd.Flags().Changed("validate-schema") {
			cfg.ValidateSchema = serveValidateSchema
		}
	})
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
