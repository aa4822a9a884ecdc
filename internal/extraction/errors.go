package extraction

import "fmt"

// DecodeError represents a failure to decode a document into text.
type DecodeError struct {
	Kind    DocumentKind
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode %s document: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to decode %s document: %s", e.Kind, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// EmptyContentError indicates a document decoded successfully but yielded
// no usable text.
type EmptyContentError struct {
	Kind DocumentKind
}

func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("%s document contains no extractable text", e.Kind)
}
