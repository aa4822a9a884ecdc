package llm

import "fmt"

// UpstreamError reports a transport or HTTP-level failure from the model
// endpoint. Message carries the upstream `error.message` when the error body
// contained one, otherwise the raw body or a generic status message.
type UpstreamError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("model request failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("model request failed: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError reports a success response that lacked the expected
// nested text payload.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unexpected response format from model: %s", e.Reason)
}
