package boolexpr

// Kind tells which variant of the expression tree a Node is.
type Kind int

const (
	CONSTANT Kind = iota
	VARIABLE
	UNARY
	BINARY
)

func (k Kind) String() string {
	switch k {
	case CONSTANT:
		return "constant"
	case VARIABLE:
		return "variable"
	case UNARY:
		return "unary"
	case BINARY:
		return "binary"
	default:
		return "unknown"
	}
}

// Assignment maps every variable name to the value it takes in one row of a
// truth table.
type Assignment map[string]bool

// Node is one element of an immutable boolean expression tree. Nodes are only
// created through the builder functions (And, Or, Not, Var, ...), and since
// they never change after construction the same node can be shared by any
// number of parent expressions.
//
// Example usage:
//
//	p, q := boolexpr.Var("p"), boolexpr.Var("q")
//	expr := boolexpr.Implies(boolexpr.And(p, q), p)
//	fmt.Println(expr)                                           // Output: ((p&q)>p)
//	fmt.Println(expr.Eval(boolexpr.Assignment{"p": true}))      // Output: true
type Node struct {
	kind     Kind
	operator Operator

	// unary nodes only use left
	left  *Node
	right *Node

	value bool
	name  string
}

func (n *Node) Kind() Kind {
	return n.kind
}

// Operator returns the operator of unary and binary nodes. It is NOP for
// constants and variables.
func (n *Node) Operator() Operator {
	return n.operator
}

// Left returns the operand of a unary node, or the left operand of a binary
// node.
func (n *Node) Left() *Node {
	return n.left
}

func (n *Node) Right() *Node {
	return n.right
}

// Name returns the variable name of a VARIABLE node.
func (n *Node) Name() string {
	return n.name
}

// Value returns the value of a CONSTANT node.
func (n *Node) Value() bool {
	return n.value
}

// Variables returns the distinct variable names referenced by the expression,
// in the order they are first met walking the tree left to right.
func Variables(n *Node) []string {
	var names []string
	seen := make(map[string]bool)

	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		switch n.kind {
		case VARIABLE:
			if !seen[n.name] {
				seen[n.name] = true
				names = append(names, n.name)
			}
		case UNARY:
			walk(n.left)
		case BINARY:
			walk(n.left)
			walk(n.right)
		}
	}
	walk(n)

	return names
}
