package boolexpr

import (
	"strings"
)

// String renders the expression fully parenthesized: every binary operation is
// wrapped in parentheses, unary operators are prefixed to their operand.
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	switch n.kind {
	case CONSTANT:
		if n.value {
			sb.WriteString("T")
		} else {
			sb.WriteString("F")
		}
	case VARIABLE:
		sb.WriteString(n.name)
	case UNARY:
		sb.WriteString(n.operator.String())
		n.left.render(sb)
	case BINARY:
		sb.WriteByte('(')
		n.left.render(sb)
		sb.WriteString(n.operator.String())
		n.right.render(sb)
		sb.WriteByte(')')
	}
}
