// Package errors provides structured error types and exit codes for buildmatrix.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for failures that do not come from the build tool itself.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitConfigError  = 1
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	// KindRuntime covers unexpected failures of buildmatrix itself.
	KindRuntime ErrorKind = iota
	// KindConfig means the build matrix could not be set up: no options were
	// discovered, a query failed or its output could not be decoded, or the
	// configuration file is invalid. Nothing is built.
	KindConfig
	// KindExecution means at least one combination failed to build. Code
	// carries the exit code of the last failing combination.
	KindExecution
)

// MatrixError is the base error type for buildmatrix.
type MatrixError struct {
	Kind    ErrorKind
	Message string
	Code    int   // build tool exit code for KindExecution
	Cause   error // underlying error
}

func (e *MatrixError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *MatrixError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this error.
func (e *MatrixError) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindExecution:
		if e.Code != 0 {
			return e.Code
		}

		return ExitRuntimeError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *MatrixError {
	return &MatrixError{Kind: KindRuntime, Message: message}
}

// Config creates a new configuration error.
func Config(message string) *MatrixError {
	return &MatrixError{Kind: KindConfig, Message: message}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *MatrixError {
	return Config(fmt.Sprintf(format, args...))
}

// ConfigWrap wraps err as a configuration error.
func ConfigWrap(err error, message string) *MatrixError {
	return &MatrixError{Kind: KindConfig, Message: message, Cause: err}
}

// Execution creates an execution failure carrying the aggregate exit code.
func Execution(code int, message string) *MatrixError {
	return &MatrixError{Kind: KindExecution, Message: message, Code: code}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *MatrixError {
	return &MatrixError{Kind: KindRuntime, Message: message, Cause: err}
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	var me *MatrixError

	return errors.As(err, &me) && me.Kind == KindConfig
}

// IsExecution reports whether err is an execution failure.
func IsExecution(err error) bool {
	var me *MatrixError

	return errors.As(err, &me) && me.Kind == KindExecution
}

// ExitCode resolves the process exit code for any error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var me *MatrixError
	if errors.As(err, &me) {
		return me.ExitCode()
	}

	return ExitRuntimeError
}
