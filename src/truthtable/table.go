package truthtable

// Table is a fully enumerated truth table. It is itself a Renderer, which is
// how Generate collects the rows.
type Table struct {
	variables   int
	expressions int

	rows    [][]string
	current []string
}

func newTable(variables, expressions int) *Table {
	return &Table{
		variables:   variables,
		expressions: expressions,
	}
}

func (t *Table) AddCell(text string) {
	t.current = append(t.current, text)
}

func (t *Table) EndRow() {
	t.rows = append(t.rows, t.current)
	t.current = nil
}

// Header returns the variable names followed by the rendered expressions.
func (t *Table) Header() []string {
	if len(t.rows) == 0 {
		return nil
	}
	return t.rows[0]
}

// Rows returns the data rows, without the header.
func (t *Table) Rows() [][]string {
	if len(t.rows) == 0 {
		return nil
	}
	return t.rows[1:]
}

func (t *Table) Variables() int {
	return t.variables
}

func (t *Table) Expressions() int {
	return t.expressions
}

// Column returns the cells of the i-th expression column, one per data row.
// i must be below Expressions(), Column panics otherwise.
func (t *Table) Column(i int) []string {
	column := make([]string, 0, len(t.Rows()))
	for _, row := range t.Rows() {
		column = append(column, row[t.variables+i])
	}
	return column
}

// RenderTo replays the header and every row to another renderer.
func (t *Table) RenderTo(r Renderer) {
	for _, row := range t.rows {
		for _, text := range row {
			r.AddCell(text)
		}
		r.EndRow()
	}
}
