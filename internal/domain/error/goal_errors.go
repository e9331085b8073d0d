package error

import "errors"

// Savings-goal domain errors.
var (
	// ErrGoalNotFound is returned when a savings goal is not found in the store.
	ErrGoalNotFound = errors.New("savings goal not found")

	// ErrInvalidGoalTarget is returned when the target amount is zero or negative.
	ErrInvalidGoalTarget = errors.New("target amount must be greater than zero")

	// ErrInvalidContribution is returned when a contribution amount is zero or negative.
	ErrInvalidContribution = errors.New("contribution amount must be greater than zero")

	// ErrMissingGoalName is returned when the goal name is empty.
	ErrMissingGoalName = errors.New("goal name is required")
)

// GoalErrorCode defines error codes for savings-goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalTarget   GoalErrorCode = "GOL-010002"
	ErrCodeInvalidContribution GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalName     GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010005"
)

// GoalError represents a savings-goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
