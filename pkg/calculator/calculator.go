// Package calculator provides basic arithmetic operations over bounded operands.
//
// Every operand must lie in the closed interval [MinValue, MaxValue]. Results
// are not range checked, so Multiply(MaxValue, MaxValue) returns 1e12.
package calculator

// Operand bounds, inclusive.
const (
	MinValue = -1_000_000
	MaxValue = 1_000_000
)

// Calculator performs the four arithmetic operations. It holds no state and
// the zero value is ready to use.
type Calculator struct{}

// New returns a Calculator.
func New() Calculator {
	return Calculator{}
}

// Add returns the sum of a and b.
func (Calculator) Add(a, b float64) (float64, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

// Subtract returns a minus b.
func (Calculator) Subtract(a, b float64) (float64, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	return a - b, nil
}

// Multiply returns the product of a and b.
func (Calculator) Multiply(a, b float64) (float64, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// Divide returns the quotient of a and b.
// The divisor is checked for zero only after both operands pass validation.
func (Calculator) Divide(a, b float64) (float64, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Apply dispatches to the method named by op.
func (c Calculator) Apply(op Operation, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return c.Add(a, b)
	case OpSubtract:
		return c.Subtract(a, b)
	case OpMultiply:
		return c.Multiply(a, b)
	case OpDivide:
		return c.Divide(a, b)
	default:
		return 0, ErrUnknownOperation
	}
}

// InRange reports whether x is a valid operand. NaN is never in range.
func InRange(x float64) bool {
	return x >= MinValue && x <= MaxValue
}

func validate(a, b float64) error {
	if !InRange(a) || !InRange(b) {
		return ErrInvalidInput
	}
	return nil
}
