package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "List the skill taxonomy and learning resources",
	RunE:  runTaxonomy,
}

var (
	taxonomyFormat string
	taxonomyPretty bool
)

func init() {
	taxonomyCmd.Flags().StringVarP(&taxonomyFormat, "format", "f", config.FormatJSON, "Output format: json or text")
	taxonomyCmd.Flags().BoolVar(&taxonomyPretty, "pretty", false, "Indent JSON output")
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("format") {
			cfg.Format = taxonomyFormat
		}
		if cmd.Flags().Changed("pretty") {
			cfg.Pretty = taxonomyPretty
		}
	})
	if err != nil {
		return err
	}

	switch cfg.Format {
	case config.FormatText:
		observability.NewPrinter(cmd.OutOrStdout()).PrintTaxonomy(taxonomy.Categories())
		return nil
	case config.FormatJSON:
		return encodeJSON(cmd.OutOrStdout(), taxonomy.Snapshot(), cfg.Pretty)
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
}
