package schedule

import "fmt"

// Validation error codes.
const (
	CodeEmptySchedule  = "emptySchedule"
	CodeInvalidPrice   = "invalidPrice"
	CodeInvalidTime    = "invalidTime"
	CodeInvalidDate    = "invalidDate"
	CodeInvalidWeekday = "invalidWeekday"
	CodeInvalidMode    = "invalidMode"
)

// ValidationError blocks a submission from being saved. It is returned
// to the caller synchronously and is never a system fault.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(code, msg string) error {
	return &ValidationError{
		Code:    code,
		Message: msg,
	}
}
