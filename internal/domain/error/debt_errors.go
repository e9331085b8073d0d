package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt is not found in the store.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrInvalidDebtTotal is returned when the total amount is zero or negative.
	ErrInvalidDebtTotal = errors.New("total amount must be greater than zero")

	// ErrInvalidPayment is returned when a payment amount is zero or negative.
	ErrInvalidPayment = errors.New("payment amount must be greater than zero")

	// ErrPaymentExceedsRemaining is returned when a payment is larger than the
	// remaining balance of the debt.
	ErrPaymentExceedsRemaining = errors.New("payment exceeds remaining debt")

	// ErrRemainingExceedsTotal is returned when the remaining amount would be
	// larger than the original total.
	ErrRemainingExceedsTotal = errors.New("remaining amount exceeds total amount")

	// ErrMissingDebtName is returned when the debt name is empty.
	ErrMissingDebtName = errors.New("debt name is required")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDebtNotFound            DebtErrorCode = "DBT-010001"
	ErrCodeInvalidDebtTotal        DebtErrorCode = "DBT-010002"
	ErrCodeInvalidPayment          DebtErrorCode = "DBT-010003"
	ErrCodePaymentExceedsRemaining DebtErrorCode = "DBT-010004"
	ErrCodeRemainingExceedsTotal   DebtErrorCode = "DBT-010005"
	ErrCodeMissingDebtName         DebtErrorCode = "DBT-010006"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
