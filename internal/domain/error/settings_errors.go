package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidBudget is returned when the monthly budget is negative.
	ErrInvalidBudget = errors.New("monthly budget cannot be negative")

	// ErrInvalidTheme is returned when the theme is neither light nor dark.
	ErrInvalidTheme = errors.New("invalid theme")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudget SettingsErrorCode = "SET-010001"
	ErrCodeInvalidTheme  SettingsErrorCode = "SET-010002"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
