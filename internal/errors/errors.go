package errors

import (
	"errors"
	"fmt"

	"statplug/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    CodeFor(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode returns the error code if it's an AppError, otherwise maps the
// domain sentinel hierarchy to a stable code for host presentation
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeFor(err)
}

// Error codes surfaced to the host
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInvalidParameter    = "INVALID_PARAMETER"
	CodeComputationError    = "COMPUTATION_ERROR"
	CodeFormatError         = "FORMAT_ERROR"
	CodeUnknownDistribution = "UNKNOWN_DISTRIBUTION"
	CodeConfigInvalid       = "CONFIG_INVALID"
	CodeInternalError       = "INTERNAL_ERROR"
)

// CodeFor maps a domain error to its host-facing code
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case core.IsInvalidInput(err):
		return CodeInvalidInput
	case core.IsInvalidParameter(err):
		return CodeInvalidParameter
	case core.IsComputationError(err):
		return CodeComputationError
	case core.IsFormatError(err):
		return CodeFormatError
	case core.IsUnknownDistribution(err):
		return CodeUnknownDistribution
	default:
		return CodeInternalError
	}
}

// NewConfigError creates a configuration error
func NewConfigError(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
