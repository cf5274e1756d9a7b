package truthtable

import (
	"fmt"
	"log/slog"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/samber/lo"
)

// MaxVariables is the largest number of variables a table can be enumerated
// over, rows are numbered with a uint64.
const MaxVariables = 63

// Renderer receives the cells of a table one row at a time. The first row is
// the header.
type Renderer interface {
	AddCell(text string)
	EndRow()
}

// TooManyVariablesError is returned when the context declares more variables
// than the table may be enumerated over.
type TooManyVariablesError struct {
	Declared int
	Max      int
}

func NewTooManyVariablesError(declared, max int) error {
	return &TooManyVariablesError{Declared: declared, Max: max}
}

func (e TooManyVariablesError) Error() string {
	return fmt.Sprintf("too many variables: %d declared, at most %d allowed", e.Declared, e.Max)
}

// Generate enumerates every assignment of the declared variables and
// evaluates the expressions for each of them, returning the whole table.
//
// Example usage:
//
//	ctx := truthtable.NewContext()
//	p, q := ctx.Declare("p"), ctx.Declare("q")
//	table, err := ctx.Generate(boolexpr.And(p, q))
//	if err != nil {
//		log.Fatalf("failed to generate truth table: %v", err)
//	}
//	fmt.Println(table.Rows()[3]) // Output: [1 1 1]
func (c *Context) Generate(exprs ...*boolexpr.Node) (*Table, error) {
	table := newTable(len(c.variables), len(exprs))
	if err := c.Write(table, exprs...); err != nil {
		return nil, err
	}
	return table, nil
}

// Write enumerates the table like Generate, streaming the header and then the
// 2^n rows to the renderer.
func (c *Context) Write(r Renderer, exprs ...*boolexpr.Node) error {
	n := len(c.variables)
	if n > c.maxVariables {
		return NewTooManyVariablesError(n, c.maxVariables)
	}
	c.warnUndeclared(exprs)

	slog.Debug("generating truth table",
		"variables", n,
		"expressions", len(exprs),
		"rows", uint64(1)<<n,
	)

	for _, name := range c.variables {
		r.AddCell(name)
	}
	for _, expr := range exprs {
		r.AddCell(expr.String())
	}
	r.EndRow()

	rows := uint64(1) << n
	for i := uint64(0); i < rows; i++ {
		assignment := c.Assignment(i)
		// a name declared twice has one entry in the assignment but two columns
		for j := range c.variables {
			r.AddCell(cell((i>>(n-1-j))&1 == 1))
		}
		for _, expr := range exprs {
			r.AddCell(cell(expr.Eval(assignment)))
		}
		r.EndRow()
	}

	return nil
}

// warnUndeclared logs the expressions referencing variables that were never
// declared. Those still evaluate, as false.
func (c *Context) warnUndeclared(exprs []*boolexpr.Node) {
	for _, expr := range exprs {
		undeclared := lo.Without(boolexpr.Variables(expr), c.variables...)
		if len(undeclared) == 0 {
			continue
		}
		slog.Warn("Expression references undeclared variables, they will evaluate to false",
			"expression", expr.String(),
			"variables", undeclared,
		)
	}
}

func cell(value bool) string {
	if value {
		return "1"
	}
	return "0"
}
