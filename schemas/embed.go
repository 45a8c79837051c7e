// Package schemas holds the JSON Schemas describing the analyzer's output.
package schemas

import (
	_ "embed"
)

// ReportSchemaFile is the file name of the report schema within this directory
const ReportSchemaFile = "analysis_report.schema.json"

// ReportSchema is the JSON Schema for an analysis report
//
//go:embed analysis_report.schema.json
var ReportSchema string
