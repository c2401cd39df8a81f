package scheduler

import "fmt"

// Code identifies the fatal failure kinds a Problem can raise before or
// during scheduling. Only validation and capacity failures use these;
// a schedule that simply could not place every session is not an error,
// it is reported by the Verifier as PartialSchedule.
type Code string

const (
	CodeInvalidInput       Code = "invalid_input"
	CodeUnqualifiedSubject Code = "unqualified_subject"
	CodeInfeasibleCapacity Code = "infeasible_capacity"
)

// Error is a typed domain error. It wraps an optional cause and is
// comparable with errors.As.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
