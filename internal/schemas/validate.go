// Package schemas provides JSON Schema validation for generation output and
// training files.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	schemafiles "github.com/omkar-nanda-ditstek/AI/schemas"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
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

// ValidateJSONString validates JSON content against schema content.
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate("(string schema)", schemaContent, jsonContent)
}

// ValidateEmbedded validates JSON content against one of the embedded schemas.
func ValidateEmbedded(name, jsonContent string) error {
	schema, err := schemafiles.Load(name)
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "schema not embedded", Cause: err}
	}
	return validate(name, schema, jsonContent)
}

// ValidateQuestionBatch checks a bulk question generation response.
func ValidateQuestionBatch(jsonContent string) error {
	return ValidateEmbedded(schemafiles.QuestionBatch, jsonContent)
}

// ValidateTrainingData checks a custom interview pattern file.
func ValidateTrainingData(jsonContent string) error {
	return ValidateEmbedded(schemafiles.TrainingData, jsonContent)
}

// ValidateCandidateProfile checks a serialized candidate profile.
func ValidateCandidateProfile(jsonContent string) error {
	return ValidateEmbedded(schemafiles.CandidateProfile, jsonContent)
}

func validate(path, schemaContent, jsonContent string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent),
	)
	if err != nil {
		// Malformed documents surface here as well as malformed schemas.
		return &SchemaLoadError{Path: path, Message: "schema validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
