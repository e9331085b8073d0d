// Package error defines domain-specific errors for the FinanzasGenius application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the store.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountKind is returned when the account kind is not one of the fixed set.
	ErrInvalidAccountKind = errors.New("invalid account kind")

	// ErrMissingAccountName is returned when the account name is empty.
	ErrMissingAccountName = errors.New("account name is required")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNotFound    AccountErrorCode = "ACC-010001"
	ErrCodeInvalidAccountKind AccountErrorCode = "ACC-010002"
	ErrCodeMissingAccountName AccountErrorCode = "ACC-010003"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
