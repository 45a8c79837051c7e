package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [resume files...]",
	Short: "Analyze many résumés against one job description",
	Long: `Analyzes every résumé file given as an argument, plus every *.txt file in --dir,
against the same job description. Résumés are analyzed in parallel and results
keep input order. A résumé that fails is reported with its error and does not
stop the others. Each result's ID is the résumé file name.`,
	RunE: runBatch,
}

var (
	batchJob            string
	batchDir            string
	batchOut            string
	batchFormat         string
	batchPretty         bool
	batchConcurrency    int
	batchValidateSchema bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description text file")
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of *.txt résumés to include")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Write results to this file instead of stdout")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", config.FormatJSON, "Output format: json or text")
	batchCmd.Flags().BoolVar(&batchPretty, "pretty", false, "Indent JSON output")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", pipeline.DefaultBatchConcurrency, "Maximum résumés analyzed in parallel")
	batchCmd.Flags().BoolVar(&batchValidateSchema, "validate-schema", false, "Check every report against the JSON Schema")

	_ = batchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("format") {
			cfg.Format = batchFormat
		}
		if cmd.Flags().Changed("pretty") {
			cfg.Pretty = batchPretty
		}
		if cmd.Flags().Changed("concurrency") {
			cfg.BatchConcurrency = batchConcurrency
		}
		if cmd.Flags().Changed("validate-schema") {
			cfg.ValidateSchema = batchValidateSchema
		}
	})
	if err != nil {
		return err
	}

	paths, err := collectResumePaths(args, batchDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no résumé files given (pass files as arguments or use --dir)")
	}
	if len(paths) > types.MaxBatchSize {
		return fmt.Errorf("too many résumés: %d (max %d)", len(paths), types.MaxBatchSize)
	}

	jobText, err := os.ReadFile(batchJob)
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}

	resumes := make([]types.BatchResume, 0, len(paths))
	for _, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read résumé file: %w", err)
		}
		resumes = append(resumes, types.BatchResume{ID: filepath.Base(path), Text: string(text)})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	resp, err := pipeline.RunBatch(ctx, string(jobText), resumes, pipeline.BatchOptions{
		Concurrency: cfg.BatchConcurrency,
	})
	if err != nil {
		return fmt.Errorf("batch analysis failed: %w", err)
	}

	if cfg.ValidateSchema {
		for _, res := range resp.Results {
			if res.Report == nil {
				continue
			}
			if err := schemas.ValidateReport(res.Report); err != nil {
				return fmt.Errorf("report for %s does not validate against schema: %w", res.ID, err)
			}
		}
	}

	if resp.Failed > 0 {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d of %d résumés failed\n", resp.Failed, len(resp.Results))
	}

	return writeOutput(cmd, batchOut, func(w io.Writer) error {
		if cfg.Format == config.FormatText {
			observability.NewPrinter(w).PrintBatchSummary(resp)
			return nil
		}
		return encodeJSON(w, resp, cfg.Pretty)
	})
}

// collectResumePaths returns the explicit files followed by the sorted *.txt
// files of dir.
func collectResumePaths(files []string, dir string) ([]string, error) {
	paths := append([]string(nil), files...)
	if dir == "" {
		return paths, nil
	}

	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("failed to read résumé directory: %w", err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list résumé directory: %w", err)
	}
	sort.Strings(matches)
	return append(paths, matches...), nil
}
