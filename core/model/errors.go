package model

import (
	"errors"
	"fmt"
	"math"
)

// Reason codes for rejected construction parameters.
var (
	// ErrOutOfRange indicates a percentage-like value outside [0,1).
	ErrOutOfRange = errors.New("out of range")
	// ErrNotANumber indicates a value that cannot be compared (NaN).
	ErrNotANumber = errors.New("not a valid number")
)

// ValidationError is returned when a construction parameter is rejected.
// Reason is one of ErrOutOfRange or ErrNotANumber and can be tested with
// errors.Is.
type ValidationError struct {
	Field  string
	Value  float64
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: must be at least zero and less than 1 (got %v): %v", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// checkPct validates a percentage-like parameter: a real in [0,1).
func checkPct(pct float64, field string) error {
	if math.IsNaN(pct) {
		return &ValidationError{Field: field, Value: pct, Reason: ErrNotANumber}
	}
	if pct < 0 || pct >= 1 {
		return &ValidationError{Field: field, Value: pct, Reason: ErrOutOfRange}
	}
	return nil
}

// checkSchedule validates every element of a degradation schedule.
func checkSchedule(schedule []float64, field string) error {
	for i, p := range schedule {
		if err := checkPct(p, fmt.Sprintf("%s[%d]", field, i)); err != nil {
			return err
		}
	}
	return nil
}
