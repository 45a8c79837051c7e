package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one résumé against one job description",
	Long: `Runs the full analysis: résumé parsing -> job analysis -> skill gap -> ATS score -> similarity -> roadmap.

Both inputs are plain-text files. The report is printed as JSON (default) or as
human-readable text with --format text.`,
	RunE: runAnalyze,
}

var (
	analyzeResume         string
	analyzeJob            string
	analyzeOut            string
	analyzeFormat         string
	analyzePretty         bool
	analyzeVerbose        bool
	analyzeValidateSchema bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to résumé text file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the report to this file instead of stdout")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", config.FormatJSON, "Output format: json or text")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "Indent JSON output")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print each pipeline step to stderr")
	analyzeCmd.Flags().BoolVar(&analyzeValidateSchema, "validate-schema", false, "Check the report against the JSON Schema before printing")

	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("format") {
			cfg.Format = analyzeFormat
		}
		if cmd.Flags().Changed("pretty") {
			cfg.Pretty = analyzePretty
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = analyzeVerbose
		}
		if cmd.Flags().Changed("validate-schema") {
			cfg.ValidateSchema = analyzeValidateSchema
		}
	})
	if err != nil {
		return err
	}

	resumeText, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read résumé file: %w", err)
	}
	jobText, err := os.ReadFile(analyzeJob)
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}

	var opts pipeline.Options
	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", event.Step, event.Message)
			printer.PrintStepContent(event.Content)
		}
	}

	report, err := pipeline.Run(string(resumeText), string(jobText), opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.ValidateSchema {
		if err := schemas.ValidateReport(report); err != nil {
			return fmt.Errorf("report does not validate against schema: %w", err)
		}
	}

	return writeOutput(cmd, analyzeOut, func(w io.Writer) error {
		if cfg.Format == config.FormatText {
			observability.NewPrinter(w).PrintReport(report)
			return nil
		}
		return encodeJSON(w, report, cfg.Pretty)
	})
}

// writeOutput sends output to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(w io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Output: %s\n", path)
	return nil
}

func encodeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
