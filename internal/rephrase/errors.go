package rephrase

import "fmt"

// InputError reports unusable input text.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s", e.Message)
}

// InvalidStyleError reports a style that has no rephrase prompt.
type InvalidStyleError struct {
	Style string
}

func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("invalid style: %q", e.Style)
}

// APICallError represents a failed or empty LLM call.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call error: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
