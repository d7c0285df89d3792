// Package errors holds the error catalogue shared by the generators and the CLI.
package errors

import (
	"fmt"

	"bookseed/internal/errors"
)

// Process exit codes reported by the CLI.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ExitCode() int     // Process exit code
	ErrorCode() string // Machine readable error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	exitCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(exitCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		exitCode:  exitCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + " (" + e.details + ")"
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ExitCode returns the process exit code
func (e *BaseError) ExitCode() int {
	return e.exitCode
}

// ErrorCode returns the machine readable error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details; the copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		exitCode:  e.exitCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrMissingDependencies = NewBaseError(
		ExitError,
		"MISSING_DEPENDENCIES",
		"You must have Authors and Publishers in the database first.",
		"",
	)

	ErrInvalidCount = NewBaseError(
		ExitUsage,
		"INVALID_COUNT",
		"count must be a non-negative integer",
		"",
	)

	ErrInvalidArguments = NewBaseError(
		ExitUsage,
		"INVALID_ARGUMENTS",
		"invalid command arguments",
		"",
	)

	ErrDuplicateRow = NewBaseError(
		ExitError,
		"DUPLICATE_ROW",
		"row violates a unique constraint",
		"",
	)

	ErrInvalidReference = NewBaseError(
		ExitError,
		"INVALID_REFERENCE",
		"row references a missing parent",
		"",
	)

	ErrCheckViolation = NewBaseError(
		ExitError,
		"CHECK_VIOLATION",
		"row violates a check constraint",
		"",
	)

	ErrMissingField = NewBaseError(
		ExitError,
		"MISSING_FIELD",
		"row is missing a required column",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		ExitError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)
)

// DatabaseExecuteError represents a failed store statement
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// ExitCode returns the process exit code
func (e *DatabaseExecuteError) ExitCode() int {
	return ExitError
}

// ErrorCode returns the machine readable error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// CommandError is what a generator command returns when its batch stops.
// It names the command and keeps the underlying cause reachable through Unwrap.
type CommandError struct {
	Command string
	Err     error
}

// NewCommandError wraps err for the named command. A nil err yields nil.
func NewCommandError(command string, err error) error {
	if err == nil {
		return nil
	}

	return &CommandError{Command: command, Err: err}
}

// Error implements the error interface
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

// Unwrap returns the cause.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code of the innermost AppError, or ExitError.
func (e *CommandError) ExitCode() int {
	var appErr AppError
	if errors.As(e.Err, &appErr) {
		return appErr.ExitCode()
	}

	return ExitError
}
