package boolexpr

import (
	"errors"
	"fmt"
)

// True and False are shared by every expression using a constant.
var (
	True  = &Node{kind: CONSTANT, value: true}
	False = &Node{kind: CONSTANT, value: false}
)

// Const returns the shared constant node for the given value.
func Const(value bool) *Node {
	if value {
		return True
	}
	return False
}

// Var creates a variable node. The name is not checked against any declared
// variables; a name with no value in the assignment evaluates to false.
func Var(name string) *Node {
	return &Node{
		kind: VARIABLE,
		name: name,
	}
}

// Not and the binary builders below panic when given a nil operand, use
// Apply to get an error instead.
func Not(arg *Node) *Node {
	mustOperands(NOT, arg)
	return &Node{
		kind:     UNARY,
		operator: NOT,
		left:     arg,
	}
}

func And(left, right *Node) *Node {
	return binary(AND, left, right)
}

func Or(left, right *Node) *Node {
	return binary(OR, left, right)
}

func Xor(left, right *Node) *Node {
	return binary(XOR, left, right)
}

func Implies(left, right *Node) *Node {
	return binary(IMPLIES, left, right)
}

func Equiv(left, right *Node) *Node {
	return binary(EQUIV, left, right)
}

func binary(op Operator, left, right *Node) *Node {
	mustOperands(op, left, right)
	return &Node{
		kind:     BINARY,
		operator: op,
		left:     left,
		right:    right,
	}
}

var errNilOperand = errors.New("operand is nil")

func mustOperands(op Operator, operands ...*Node) {
	if err := checkOperands(op, operands); err != nil {
		panic(err)
	}
}

func checkOperands(op Operator, operands []*Node) error {
	for i, operand := range operands {
		if operand == nil {
			return fmt.Errorf("operand %d of '%s': %w", i+1, op, errNilOperand)
		}
	}
	return nil
}

// Apply builds the node for op over the given operands. It is the dynamic
// counterpart of the builder functions, for callers that only know the
// operator at runtime.
func Apply(op Operator, operands ...*Node) (*Node, error) {
	arity := op.Arity()
	if arity == 0 {
		return nil, fmt.Errorf("operator %d cannot be applied", op)
	}
	if len(operands) != arity {
		return nil, &ArityError{Operator: op, Expected: arity, Got: len(operands)}
	}
	if err := checkOperands(op, operands); err != nil {
		return nil, err
	}

	if op == NOT {
		return Not(operands[0]), nil
	}
	return binary(op, operands[0], operands[1]), nil
}
