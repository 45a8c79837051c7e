package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long: `Validates a JSON file against a JSON Schema file. Without --schema the file is
checked against the built-in analysis report schema, which is useful for reports
saved with "analyze --out".`,
	RunE: runValidate,
}

var (
	validateSchemaPath string
	validateJSONPath   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to JSON Schema file (defaults to the analysis report schema)")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to JSON file to validate")
	_ = validateCmd.MarkFlagRequired("json")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if validateSchemaPath != "" {
		schemaPath := validateSchemaPath
		if resolved := schemas.ResolveSchemaPath(schemaPath); resolved != "" {
			schemaPath = resolved
		}
		err = schemas.ValidateJSON(schemaPath, validateJSONPath)
	} else {
		data, readErr := os.ReadFile(validateJSONPath)
		if readErr != nil {
			return fmt.Errorf("failed to read JSON file: %w", readErr)
		}
		err = schemas.ValidateReportJSON(data)
	}

	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateJSONPath)
		return nil
	case errors.As(err, &validationErr):
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %s\n", validateJSONPath)
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%d schema violation(s)", len(validationErr.Errors))
	default:
		return err
	}
}
