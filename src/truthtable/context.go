package truthtable

import (
	"slices"

	"github.com/eriklarko/truth-table/src/boolexpr"
)

// Context holds the ordered list of declared variables a truth table is
// generated over. The declaration order fixes both the column order and the
// enumeration order: the first declared variable is the most significant bit
// of the row number.
type Context struct {
	variables    []string
	maxVariables int
}

func NewContext() *Context {
	return &Context{
		maxVariables: MaxVariables,
	}
}

// Declare registers name as the next variable of the table and returns an
// expression handle for it. Declaring the same name twice is allowed: each
// declaration gets its own column, and expressions see the value of the last
// one.
func (c *Context) Declare(name string) *boolexpr.Node {
	c.variables = append(c.variables, name)
	return boolexpr.Var(name)
}

// DeclareAll declares every name in order, returning their handles in the
// same order.
func (c *Context) DeclareAll(names ...string) []*boolexpr.Node {
	handles := make([]*boolexpr.Node, len(names))
	for i, name := range names {
		handles[i] = c.Declare(name)
	}
	return handles
}

// Variables returns the declared variable names in declaration order.
func (c *Context) Variables() []string {
	return slices.Clone(c.variables)
}

func (c *Context) Len() int {
	return len(c.variables)
}

// SetMaxVariables lowers the number of variables Generate accepts before
// refusing to enumerate. Values outside 1..MaxVariables reset it to
// MaxVariables.
func (c *Context) SetMaxVariables(max int) {
	if max <= 0 || max > MaxVariables {
		max = MaxVariables
	}
	c.maxVariables = max
}

// Assignment returns the assignment for the given row of the table: the j-th
// declared variable takes the value of bit (n-1-j) of row.
func (c *Context) Assignment(row uint64) boolexpr.Assignment {
	n := len(c.variables)
	assignment := make(boolexpr.Assignment, n)
	for j, name := range c.variables {
		assignment[name] = (row>>(n-1-j))&1 == 1
	}
	return assignment
}
