package calculator

import (
	"fmt"
	"strings"
)

// Operation names one of the four arithmetic operations.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations returns every supported operation in canonical order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// ParseOperation accepts an operation name (case-insensitive) or its symbol.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return OpAdd, nil
	case "subtract", "-":
		return OpSubtract, nil
	case "multiply", "*", "x":
		return OpMultiply, nil
	case "divide", "/":
		return OpDivide, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Symbol returns the infix symbol used in summaries, or "?" for an unknown operation.
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return "?"
}

func (op Operation) String() string {
	return string(op)
}
