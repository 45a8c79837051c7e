package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "age"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer"},
		"address": {
			"type": "object",
			"required": ["city"],
			"properties": {"city": {"type": "string"}}
		},
		"tags": {"type": "array", "items": {"type": "string"}, "minItems": 1}
	}
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSONString(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantRule  string
		wantField string
	}{
		{name: "valid", doc: `{"name": "Ada", "age": 36}`},
		{name: "missing field", doc: `{"name": "Ada"}`, wantRule: "required"},
		{name: "wrong type", doc: `{"name": "Ada", "age": "old"}`, wantRule: "invalid_type", wantField: "age"},
		{name: "nested", doc: `{"name": "Ada", "age": 1, "address": {}}`, wantRule: "required"},
		{name: "array", doc: `{"name": "Ada", "age": 1, "tags": []}`, wantRule: "array_min_items", wantField: "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(personSchema, tt.doc)
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Errors, 1)
			assert.Equal(t, "document", verr.Source)
			assert.Equal(t, tt.wantRule, verr.Errors[0].Rule)
			assert.NotEmpty(t, verr.Errors[0].Field)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, verr.Errors[0].Field)
			}
		})
	}
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "(string schema)", loadErr.Path)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestValidateJSON(t *testing.T) {
	schemaPath := writeTemp(t, "person.schema.json", personSchema)

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateJSON(schemaPath, writeTemp(t, "ok.json", `{"name": "Ada", "age": 36}`)))
	})

	t.Run("invalid names the file", func(t *testing.T) {
		err := ValidateJSON(schemaPath, writeTemp(t, "bad.json", `{"age": "x"}`))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "bad.json", verr.Source)
		assert.Len(t, verr.Errors, 2)
		assert.Contains(t, err.Error(), "bad.json failed schema validation: ")
	})

	t.Run("malformed document", func(t *testing.T) {
		err := ValidateJSON(schemaPath, writeTemp(t, "broken.json", "{ invalid json }"))
		var loadErr *SchemaLoadError
		assert.ErrorAs(t, err, &loadErr)
	})

	t.Run("missing files", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.json")
		assert.ErrorContains(t, ValidateJSON(missing, schemaPath), "schema file not found")
		assert.ErrorContains(t, ValidateJSON(schemaPath, missing), "JSON file not found")
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Source: "report",
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}
	assert.Equal(t, "report failed schema validation: name: is required; age: must be a number", err.Error())
}

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath("schemas/analysis_report.schema.json")
	require.NotEmpty(t, path, "report schema should be found from the package directory")
	assert.True(t, filepath.IsAbs(path))

	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))

	abs := writeTemp(t, "abs.schema.json", `{}`)
	assert.Equal(t, abs, ResolveSchemaPath(abs))
	assert.Empty(t, ResolveSchemaPath(abs+".missing"))
}
