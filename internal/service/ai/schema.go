package ai

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaKind selects which model output schema to validate against.
type SchemaKind string

const (
	SchemaReport      SchemaKind = "report"
	SchemaTranslation SchemaKind = "translation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemasOnce sync.Once
	schemas     map[SchemaKind]*gojsonschema.Schema
	schemasErr  error
)

// FieldError is a single schema violation.
type FieldError struct {
	Field   string
	Message string
}

// SchemaError lists every violation found in a model reply.
type SchemaError struct {
	Errors []FieldError
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "model output does not match schema: " + strings.Join(parts, "; ")
}

func loadSchemas() {
	schemas = make(map[SchemaKind]*gojsonschema.Schema, 2)
	for _, kind := range []SchemaKind{SchemaReport, SchemaTranslation} {
		raw, err := schemaFS.ReadFile("schemas/" + string(kind) + ".json")
		if err != nil {
			schemasErr = fmt.Errorf("read %s schema: %w", kind, err)
			return
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			schemasErr = fmt.Errorf("compile %s schema: %w", kind, err)
			return
		}
		schemas[kind] = s
	}
}

// ValidateJSON checks a JSON document against the embedded schema for kind.
// Violations are reported as *SchemaError.
func ValidateJSON(kind SchemaKind, doc string) error {
	schemasOnce.Do(loadSchemas)
	if schemasErr != nil {
		return schemasErr
	}
	s, ok := schemas[kind]
	if !ok {
		return fmt.Errorf("unknown schema %q", kind)
	}

	result, err := s.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return schemaErr
}
