package model

import (
	"errors"
	"fmt"
)

var (
	// ErrParseFailure a clock token does not match the time grammar
	ErrParseFailure = errors.New("parse failure")
	// ErrInvalidTimeFormat a session could not be built from its time tokens
	ErrInvalidTimeFormat = errors.New("invalid time format")
	// ErrInvariantViolation a record reached an aggregator in a state the parser never produces
	ErrInvariantViolation = errors.New("invariant violation")
)

// InvalidTimeFormatError keeps both raw tokens of a rejected session
type InvalidTimeFormatError struct {
	Start string
	End   string
	Err   error
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format: %s - %s: %v", e.Start, e.End, e.Err)
}

func (e *InvalidTimeFormatError) Unwrap() []error {
	return []error{ErrInvalidTimeFormat, e.Err}
}

// Invariant returns ErrInvariantViolation with a formatted reason
func Invariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
