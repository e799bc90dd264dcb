package service

import (
	"errors"
	"fmt"
	"math"
)

// Calculator errors. Every error returned by a Calculate function wraps one
// of these.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDegenerate        = errors.New("numerically degenerate input")
	ErrNotConverged      = errors.New("calculation did not converge")
	ErrUnknownCalculator = errors.New("unknown calculator")
)

// ValidationError names the input field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func degenerate(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDegenerate, fmt.Sprintf(format, args...))
}

func notConverged(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotConverged, fmt.Sprintf(format, args...))
}

// Status classifies a calculator error for the front ends.
type Status string

const (
	StatusOK           Status = "ok"
	StatusInvalid      Status = "invalid"
	StatusDegenerate   Status = "degenerate"
	StatusNotConverged Status = "not_converged"
)

// StatusOf maps err onto the calculator taxonomy. Unclassified errors are
// reported as invalid input.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNotConverged):
		return StatusNotConverged
	case errors.Is(err, ErrDegenerate):
		return StatusDegenerate
	default:
		return StatusInvalid
	}
}

// Input checks shared by the calculators.

func requirePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return invalid(field, "must be greater than zero, got %v", v)
	}
	return nil
}

func requireNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return invalid(field, "must not be negative, got %v", v)
	}
	return nil
}

func requireRate(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return invalid(field, "must not be negative, got %v", v)
	}
	if v > MaxInterestRate {
		return invalid(field, "exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	return nil
}

func requireFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	return nil
}

func requireYears(field string, v float64) error {
	if err := requirePositive(field, v); err != nil {
		return err
	}
	if v > MaxYears {
		return invalid(field, "exceeds the maximum of %d years", MaxYears)
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// checkFinite guards result fields against NaN and Inf leaking out of a
// formula.
func checkFinite(values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return degenerate("result value %d is not finite", i)
		}
	}
	return nil
}
