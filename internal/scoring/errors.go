package scoring

import "fmt"

// AssessmentParseError indicates the model's assessment response was not
// parseable JSON. It is not recovered from: assessment is an on-demand
// action the caller can retry.
type AssessmentParseError struct {
	Message string
	Cause   error
}

func (e *AssessmentParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse assessment response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse assessment response: %s", e.Message)
}

func (e *AssessmentParseError) Unwrap() error {
	return e.Cause
}
