package handler

import "fmt"

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling an action.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Error contains any error that occurred.
	Error error

	// Message is an optional status message for display.
	Message string

	// Register is the register the action read or wrote, if any.
	Register rune

	// Count is the number of characters or lines the action affected.
	Count int
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsNoOp returns true if the action had no effect.
func (r Result) IsNoOp() bool {
	return r.Status == StatusNoOp
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// String returns a short description of the result.
func (r Result) String() string {
	switch {
	case r.Status == StatusError && r.Error != nil:
		return fmt.Sprintf("%s: %v", r.Status, r.Error)
	case r.Message != "":
		return fmt.Sprintf("%s: %s", r.Status, r.Message)
	default:
		return r.Status.String()
	}
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// SuccessWithMessage creates a successful result with a message.
func SuccessWithMessage(msg string) Result {
	return Result{Status: StatusOK, Message: msg}
}

// SuccessWithCount creates a successful result that affected n units.
func SuccessWithCount(n int) Result {
	return Result{Status: StatusOK, Count: n}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// NoOpWithMessage creates a no-operation result with a message.
func NoOpWithMessage(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{
		Status: StatusError,
		Error:  fmt.Errorf(format, args...),
	}
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithRegister returns a copy of the result with the register set.
func (r Result) WithRegister(reg rune) Result {
	r.Register = reg
	return r
}

// WithCount returns a copy of the result with the count set.
func (r Result) WithCount(n int) Result {
	r.Count = n
	return r
}
