// Package schemas validates analysis output against JSON Schemas.
package schemas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists every schema violation found in one document.
type ValidationError struct {
	Source string
	Errors []FieldError
}

// FieldError is one violation. Field is a dotted path, "(root)" for the document itself.
type FieldError struct {
	Field   string
	Rule    string // gojsonschema error type, e.g. "required" or "invalid_type"
	Message string
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Sprintf("%s failed schema validation: %s", e.Source, strings.Join(parts, "; "))
}

// SchemaLoadError is returned when the schema or document cannot be loaded at all.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ResolveSchemaPath looks for relativePath in the working directory and its
// parents, stopping at the module root. Absolute paths are only checked for
// existence. Returns "" when nothing is found.
func ResolveSchemaPath(relativePath string) string {
	if filepath.IsAbs(relativePath) {
		if fileExists(relativePath) {
			return relativePath
		}
		return ""
	}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if candidate := filepath.Join(dir, relativePath); fileExists(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if fileExists(filepath.Join(dir, "go.mod")) || parent == dir {
			return ""
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ValidateJSON validates a JSON file against a JSON Schema file
func ValidateJSON(schemaPath, jsonPath string) error {
	files := []struct{ kind, path string }{{"schema", schemaPath}, {"JSON", jsonPath}}
	abs := make([]string, len(files))
	for i, f := range files {
		p, err := filepath.Abs(f.path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s path: %w", f.kind, err)
		}
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s file not found: %s", f.kind, p)
		}
		abs[i] = p
	}

	return validate(
		gojsonschema.NewReferenceLoader("file://"+abs[0]),
		gojsonschema.NewReferenceLoader("file://"+abs[1]),
		abs[0], filepath.Base(abs[1]),
	)
}

// ValidateJSONString validates JSON content against schema content
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent),
		"(string schema)", "document",
	)
}

func validate(schema, document gojsonschema.JSONLoader, schemaLabel, source string) error {
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return &SchemaLoadError{Path: schemaLabel, Message: "schema or document could not be loaded", Cause: err}
	}
	return newValidationError(source, result)
}

// newValidationError returns nil for a valid result.
func newValidationError(source string, result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Source: source}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{
			Field:   field,
			Rule:    desc.Type(),
			Message: desc.Description(),
		})
	}
	return verr
}
