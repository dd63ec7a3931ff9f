package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NewUsageError creates an error for a missing or invalid user setting.
// Message and hints are shown verbatim, without an "Error:" prefix.
func NewUsageError(message string, hints ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: message,
		Code:    "USAGE",
		Hints:   hints,
	}
}

// NewParseError creates an error for malformed extension input
func NewParseError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Code:    "PARSE_FAILED",
		Cause:   cause,
	}
}

// NewCommandError creates an error for a failed external program run.
// exitStatus is the child's status, or -1 when it did not exit normally.
func NewCommandError(args []string, exitStatus int, cause error) *AppError {
	msg := fmt.Sprintf("command failed: %s", strings.Join(args, " "))
	if exitStatus >= 0 {
		msg = fmt.Sprintf("%s (exit status %d)", msg, exitStatus)
	}
	return &AppError{
		Type:       ErrorTypeCommand,
		Message:    msg,
		Code:       "COMMAND_FAILED",
		Cause:      cause,
		ExitStatus: exitStatus,
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// ExitCode maps an error to the process exit status.
// Errors that are not AppErrors exit with status 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	appErr, ok := AsAppError(err)
	if !ok {
		return 1
	}
	switch appErr.Type {
	case ErrorTypeUsage:
		return ExitUsage
	case ErrorTypeParse:
		return ExitParse
	case ErrorTypeCommand:
		return ExitCommand
	default:
		return 1
	}
}
