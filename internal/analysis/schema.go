package analysis

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("analysis validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Validate checks a JSON document against the analysis schema.
func Validate(doc []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to load analysis document: %w", err)
	}
	if result.Valid() {
		return nil
	}
	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}

// Parse validates and decodes an external analysis document.
func Parse(doc []byte) (Analysis, error) {
	if err := Validate(doc); err != nil {
		return Analysis{}, err
	}
	var a Analysis
	if err := json.Unmarshal(doc, &a); err != nil {
		return Analysis{}, fmt.Errorf("failed to decode analysis: %w", err)
	}
	a.Source = SourceExternal
	return a, nil
}

// Resolve returns the parsed external document, or fallback when the
// collaborator failed or produced an invalid document.
func Resolve(doc []byte, fetchErr error, fallback Analysis) Analysis {
	if fetchErr != nil {
		slog.Warn("analysis unavailable, using fallback", "error", fetchErr)
		return fallback
	}
	a, err := Parse(doc)
	if err != nil {
		slog.Warn("analysis rejected, using fallback", "error", err)
		return fallback
	}
	return a
}
