package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrorTypeUsage is a deliberate, user-facing configuration mistake.
	ErrorTypeUsage ErrorType = iota
	// ErrorTypeParse means the extension protocol on stdin was malformed.
	ErrorTypeParse
	// ErrorTypeCommand means the external destination program failed.
	ErrorTypeCommand
)

// Exit statuses for each error category.
const (
	ExitUsage   = 1
	ExitParse   = 2
	ExitCommand = 3
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeUsage:
		return "usage"
	case ErrorTypeParse:
		return "parse"
	case ErrorTypeCommand:
		return "command"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	// Hints are extra lines shown to the user below the message.
	Hints []string
	// ExitStatus is the child's exit status for command errors, -1 if it
	// never ran or was killed.
	ExitStatus int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}
