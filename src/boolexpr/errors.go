package boolexpr

import (
	"fmt"
)

// UnknownVariableError is returned by Solve when the expression references a
// variable that has no value in the assignment.
type UnknownVariableError struct {
	VariableName string
}

// NewUnknownVariableError creates a new UnknownVariableError with the given variable name.
func NewUnknownVariableError(variableName string) error {
	return &UnknownVariableError{VariableName: variableName}
}

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.VariableName)
}

// UnknownOperatorError is returned when a symbol doesn't spell any operator.
type UnknownOperatorError struct {
	Symbol string
}

func NewUnknownOperatorError(symbol string) error {
	return &UnknownOperatorError{Symbol: symbol}
}

func (e UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator '%s'", e.Symbol)
}

// ArityError is returned by Apply when an operator gets the wrong number of
// operands.
type ArityError struct {
	Operator Operator
	Expected int
	Got      int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("operator '%s' takes %d operand(s), got %d", e.Operator, e.Expected, e.Got)
}
