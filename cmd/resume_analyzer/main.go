// Package main provides the entry point for the résumé analyzer CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Offline résumé and job description analyzer",
	Long: `Resume Analyzer compares a plain-text résumé with a job description and reports
skill matches and gaps, an ATS-style compatibility score with feedback, a TF-IDF
similarity score and a prioritized learning roadmap.

Configuration can be loaded from a JSON file using --config. Command-line flags
override config file values.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
