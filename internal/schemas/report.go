package schemas

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-analyzer/internal/types"
	schemafiles "github.com/jonathan/resume-analyzer/schemas"
)

// loadReportSchema compiles the embedded report schema once per process
var loadReportSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemafiles.ReportSchema))
})

// ValidateReport checks a report against the embedded analysis report schema
func ValidateReport(report *types.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return ValidateReportJSON(data)
}

// ValidateReportJSON checks serialized report JSON against the embedded schema
func ValidateReportJSON(data []byte) error {
	schema, err := loadReportSchema()
	if err != nil {
		return &SchemaLoadError{
			Path:    schemafiles.ReportSchemaFile,
			Message: "failed to compile embedded schema",
			Cause:   err,
		}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to load report JSON: %w", err)
	}
	return newValidationError("report", result)
}
