package error

import "errors"

// Assistant domain errors.
var (
	// ErrAssistantUnavailable is returned when the AI service is not configured.
	ErrAssistantUnavailable = errors.New("assistant service is not configured")

	// ErrEmptyCommand is returned when neither text nor audio input was provided.
	ErrEmptyCommand = errors.New("command input is empty")

	// ErrCommandNotUnderstood is returned when the assistant could not extract
	// a transaction or subscription from the input.
	ErrCommandNotUnderstood = errors.New("command not understood")
)

// AssistantErrorCode defines error codes for assistant errors.
// Format: AST-XXYYYY where XX is category and YYYY is specific error.
type AssistantErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyCommand         AssistantErrorCode = "AST-010001"
	ErrCodeCommandNotUnderstood AssistantErrorCode = "AST-010002"
	// Service errors (02XXXX)
	ErrCodeAssistantUnavailable AssistantErrorCode = "AST-020001"
	ErrCodeAssistantFailure     AssistantErrorCode = "AST-020002"
	ErrCodeRateLimited          AssistantErrorCode = "AST-020003"
)

// AssistantError represents an assistant error with code and message.
type AssistantError struct {
	Code    AssistantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AssistantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AssistantError) Unwrap() error {
	return e.Err
}

// NewAssistantError creates a new AssistantError with the given code and message.
func NewAssistantError(code AssistantErrorCode, message string, err error) *AssistantError {
	return &AssistantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
