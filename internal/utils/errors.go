package utils

import (
	"errors"
	"fmt"
)

// Error codes for failures shown to the visitor.
const (
	CodeInvalidEmail = 1
	CodeSaveFailed   = 2
)

// CustomError is an error with a code and a message safe to show a visitor.
type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Code: %d, Message: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

func (e *CustomError) Unwrap() error { return e.Err }

func New(code int, message string) error {
	return &CustomError{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches cause to a new CustomError.
func Wrap(code int, message string, cause error) error {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// UserMessage returns the visitor-facing message of err, or "" if err is not
// a CustomError.
func UserMessage(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return ""
}

// HasCode reports whether err is a CustomError with the given code.
func HasCode(err error, code int) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Code == code
}
