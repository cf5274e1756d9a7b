package texttable

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV writes every row as a CSV record as soon as it ends.
type CSV struct {
	writer  *csv.Writer
	current []string
	err     error
}

func NewCSV(w io.Writer) *CSV {
	return &CSV{
		writer: csv.NewWriter(w),
	}
}

func (c *CSV) AddCell(text string) {
	c.current = append(c.current, text)
}

func (c *CSV) EndRow() {
	record := c.current
	c.current = nil
	if c.err != nil {
		return
	}
	if err := c.writer.Write(record); err != nil {
		c.err = fmt.Errorf("failed to write record %v: %w", record, err)
	}
}

// Flush writes any buffered records and returns the first error met while
// writing.
func (c *CSV) Flush() error {
	c.writer.Flush()
	if c.err != nil {
		return c.err
	}
	return c.writer.Error()
}
