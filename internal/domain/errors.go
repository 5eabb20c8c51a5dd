package domain

import "fmt"

// ValidationError signals a malformed or out-of-range request field.
// It is always user-correctable and carries the offending field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ExternalServiceError signals a failed call to an upstream service
// (LLM or recipe API) on the pipeline's critical path. Not retried.
type ExternalServiceError struct {
	Message string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// NewExternalServiceError wraps an upstream failure
func NewExternalServiceError(message string, err error) *ExternalServiceError {
	return &ExternalServiceError{Message: message, Err: err}
}
