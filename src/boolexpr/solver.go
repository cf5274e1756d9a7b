package boolexpr

import (
	"fmt"
)

// Eval evaluates the expression against the given assignment. Variables
// missing from the assignment evaluate to false; use Solve to have them
// reported instead.
func (n *Node) Eval(assignment Assignment) bool {
	switch n.kind {
	case CONSTANT:
		return n.value
	case VARIABLE:
		return assignment[n.name]
	case UNARY:
		return !n.left.Eval(assignment)
	case BINARY:
		l, r := n.left.Eval(assignment), n.right.Eval(assignment)
		return n.operator.apply(l, r)
	default:
		return false
	}
}

// Solve evaluates the expression like Eval, but fails with an
// UnknownVariableError when a referenced variable has no value in the
// assignment.
func (n *Node) Solve(assignment Assignment) (bool, error) {
	switch n.kind {
	case CONSTANT:
		return n.value, nil

	case VARIABLE:
		v, ok := assignment[n.name]
		if !ok {
			return false, NewUnknownVariableError(n.name)
		}
		return v, nil

	case UNARY:
		result, err := n.left.Solve(assignment)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return !result, nil

	case BINARY:
		leftResult, err := n.left.Solve(assignment)
		if err != nil {
			return false, fmt.Errorf("failed solving left expression: %w", err)
		}
		rightResult, err := n.right.Solve(assignment)
		if err != nil {
			return false, fmt.Errorf("failed solving right expression: %w", err)
		}
		return n.operator.apply(leftResult, rightResult), nil
	}

	return false, fmt.Errorf("unknown node kind: %v", n.kind)
}
