package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrInvalidInput   = errors.New("invalid input data")
	ErrEmptySample    = fmt.Errorf("%w: empty sample", ErrInvalidInput)
	ErrLengthMismatch = fmt.Errorf("%w: sample lengths differ", ErrInvalidInput)
	ErrNonNumericCell = fmt.Errorf("%w: non-numeric cell", ErrInvalidInput)

	// Distribution parameter errors
	ErrInvalidParameter = errors.New("invalid distribution parameter")

	// Numeric routine errors
	ErrComputation  = errors.New("computation failed")
	ErrZeroVariance = fmt.Errorf("%w: zero variance", ErrComputation)

	// Persistence errors
	ErrFormat              = errors.New("malformed distribution record")
	ErrUnknownDistribution = errors.New("unknown distribution")
)

// Error constructors with context
func NewInvalidInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

func NewSampleSizeError(test string, need, got int) error {
	return fmt.Errorf("%w: %s needs at least %d observations per sample, got %d", ErrInvalidInput, test, need, got)
}

func NewInvalidParameterError(param string, value float64, domain string) error {
	return fmt.Errorf("%w: %s=%v outside domain %s", ErrInvalidParameter, param, value, domain)
}

func NewComputationError(test string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrComputation, test, reason)
}

func NewFormatError(reason string) error {
	return fmt.Errorf("%w: %s", ErrFormat, reason)
}

func NewUnknownDistributionError(kind DistKind) error {
	return fmt.Errorf("%w: %q", ErrUnknownDistribution, kind.String())
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsComputationError(err error) bool {
	return errors.Is(err, ErrComputation)
}

func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
}

func IsUnknownDistribution(err error) bool {
	return errors.Is(err, ErrUnknownDistribution)
}
