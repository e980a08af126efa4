// Package schemas embeds the JSON Schemas for profile snapshot files and
// validates snapshot content against them.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var files embed.FS

// ValidationError carries the field-level failures from a schema check
type ValidationError struct {
	TypeKey string
	Errors  []FieldError
}

// FieldError is a single validation failure at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s validation failed:\n", ve.TypeKey)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Schema returns the embedded schema source for a snapshot type key
// such as "careers" or "basic-info".
func Schema(typeKey string) (string, error) {
	data, err := files.ReadFile(typeKey + ".schema.json")
	if err != nil {
		return "", fmt.Errorf("no schema for type %q: %w", typeKey, err)
	}
	return string(data), nil
}

// Validate checks JSON content against the schema for its type key
func Validate(typeKey, jsonContent string) error {
	schema, err := Schema(typeKey)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(jsonContent),
	)
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", typeKey, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{
		TypeKey: typeKey,
		Errors:  make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
