package error

import "errors"

// Subscription domain errors.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found in the store.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInvalidFrequency is returned when the frequency is not weekly, monthly or yearly.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidSubscriptionAmount is returned when the amount is zero or negative.
	ErrInvalidSubscriptionAmount = errors.New("subscription amount must be greater than zero")

	// ErrMissingSubscriptionName is returned when the subscription name is empty.
	ErrMissingSubscriptionName = errors.New("subscription name is required")
)

// SubscriptionErrorCode defines error codes for subscription errors.
// Format: SUB-XXYYYY where XX is category and YYYY is specific error.
type SubscriptionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSubscriptionNotFound        SubscriptionErrorCode = "SUB-010001"
	ErrCodeInvalidFrequency            SubscriptionErrorCode = "SUB-010002"
	ErrCodeInvalidSubscriptionAmount   SubscriptionErrorCode = "SUB-010003"
	ErrCodeMissingSubscriptionName     SubscriptionErrorCode = "SUB-010004"
	ErrCodeInvalidSubscriptionCategory SubscriptionErrorCode = "SUB-010005"
)

// SubscriptionError represents a subscription error with code and message.
type SubscriptionError struct {
	Code    SubscriptionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SubscriptionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

// NewSubscriptionError creates a new SubscriptionError with the given code and message.
func NewSubscriptionError(code SubscriptionErrorCode, message string, err error) *SubscriptionError {
	return &SubscriptionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
