package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when either operand is outside [MinValue, MaxValue].
	ErrInvalidInput = fmt.Errorf("Inputs must be between %d and %d", MinValue, MaxValue)

	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("Cannot divide by zero")

	// ErrUnknownOperation is returned for an operation name that is not one of
	// add, subtract, multiply or divide.
	ErrUnknownOperation = errors.New("unknown operation")
)

// IsInvalidInput reports whether err was caused by an out-of-range operand.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsDivisionByZero reports whether err was caused by a zero divisor.
func IsDivisionByZero(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}
