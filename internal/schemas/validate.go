// Package schemas provides JSON Schema validation for model-produced
// structured data. Schemas are embedded at compile time.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed candidate_profile.json
var candidateProfileSchema []byte

//go:embed assessment.json
var assessmentSchema []byte

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateCandidateProfile checks raw JSON against the candidate profile schema.
func ValidateCandidateProfile(data []byte) error {
	return validate(candidateProfileSchema, data)
}

// ValidateAssessment checks raw JSON against the assessment schema. Scores
// may be absent (the caller defaults them to 0) but must be numeric when
// present.
func ValidateAssessment(data []byte) error {
	return validate(assessmentSchema, data)
}

func validate(schema, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, resErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resErr.Field(),
			Message: resErr.Description(),
		})
	}
	return ve
}
