package texttable

import (
	"bytes"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

// Table collects rows of cells and renders them as a bordered text table,
// every column as wide as its widest cell. The first row is drawn as a header.
//
// Usage:
//
//	t := texttable.New()
//	t.AddCell("p")
//	t.AddCell("!p")
//	t.EndRow()
//	t.AddCell("0")
//	t.AddCell("1")
//	t.EndRow()
//	t.WriteTo(os.Stdout)
type Table struct {
	rows    [][]string
	current []string
}

func New() *Table {
	return &Table{}
}

func (t *Table) AddCell(text string) {
	t.current = append(t.current, text)
}

// EndRow commits the cells added since the previous call as a row.
func (t *Table) EndRow() {
	t.rows = append(t.rows, t.current)
	t.current = nil
}

func (t *Table) widths() []int {
	columns := lo.Max(lo.Map(t.rows, func(row []string, _ int) int {
		return len(row)
	}))

	widths := make([]int, columns)
	for _, row := range t.rows {
		for i, text := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(text))
		}
	}
	return widths
}

// WriteTo renders the committed rows. Cells added without a closing EndRow are
// not rendered.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	if len(t.rows) == 0 {
		return 0, nil
	}

	var (
		buf     bytes.Buffer
		widths  = t.widths()
		divider = separator(widths)
	)

	buf.WriteString(divider)
	for i, row := range t.rows {
		writeRow(&buf, row, widths)
		if i == 0 {
			buf.WriteString(divider)
		}
	}
	if len(t.rows) > 1 {
		buf.WriteString(divider)
	}

	return buf.WriteTo(w)
}

func (t *Table) String() string {
	var sb strings.Builder
	t.WriteTo(&sb)
	return sb.String()
}

func separator(widths []int) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func writeRow(buf *bytes.Buffer, row []string, widths []int) {
	buf.WriteByte('|')
	for i, width := range widths {
		var text string
		if i < len(row) {
			text = row[i]
		}
		buf.WriteByte(' ')
		buf.WriteString(runewidth.FillRight(text, width))
		buf.WriteString(" |")
	}
	buf.WriteByte('\n')
}
