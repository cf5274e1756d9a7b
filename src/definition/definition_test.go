package definition

import (
	"strings"
	"testing"

	"github.com/eriklarko/truth-table/src/boolexpr"
	helpers_test "github.com/eriklarko/truth-table/src/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoDocument = `
variables: [p, q]
expressions:
  - op: ">"
    args:
      - op: "|"
        args: [{op: "!", args: [p]}, {op: "~", args: [q]}]
      - op: "=="
        args: [p, {op: "!", args: [q]}]
  - {op: "|", args: [p, q]}
  - T
`

func TestDecode(t *testing.T) {
	sheet, err := Decode(strings.NewReader(demoDocument))
	require.NoError(t, err)

	assert.Equal(t, []string{"p", "q"}, sheet.Context.Variables())

	rendered := make([]string, len(sheet.Expressions))
	for i, expr := range sheet.Expressions {
		rendered[i] = expr.String()
	}
	assert.Equal(t, []string{"((!p|!q)>(p==!q))", "(p|q)", "T"}, rendered)
	assert.Same(t, boolexpr.True, sheet.Expressions[2])

	table, err := sheet.Context.Generate(sheet.Expressions...)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"0", "0", "0", "0", "1"},
		{"0", "1", "1", "1", "1"},
		{"1", "0", "1", "1", "1"},
		{"1", "1", "1", "1", "1"},
	}, table.Rows())
}

func TestDeclaredHandlesAreReused(t *testing.T) {
	doc := `
variables: [p]
expressions:
  - {op: "&", args: [p, p]}
`
	sheet, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	expr := sheet.Expressions[0]
	assert.Same(t, expr.Left(), expr.Right())
}

func TestUndeclaredVariable(t *testing.T) {
	doc := `
variables: [p]
expressions:
  - {op: "|", args: [p, ghost]}
`
	sheet, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 1, sheet.Context.Len())
	assert.Equal(t, "(p|ghost)", sheet.Expressions[0].String())
}

func TestNoVariables(t *testing.T) {
	sheet, err := Decode(strings.NewReader(`expressions: [F, {op: "!", args: [F]}]`))
	require.NoError(t, err)

	table, err := sheet.Context.Generate(sheet.Expressions...)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "1"}}, table.Rows())
}

func TestInvalidDocuments(t *testing.T) {
	tests := map[string]struct {
		doc      string
		contains string
	}{
		"unknown operator": {
			doc:      `expressions: [{op: "&&", args: [T, F]}]`,
			contains: "unknown operator '&&'",
		},
		"missing operand": {
			doc:      `expressions: [{op: ">", args: [T]}]`,
			contains: "takes 2 operand(s), got 1",
		},
		"too many operands": {
			doc:      `expressions: [{op: "!", args: [T, F]}]`,
			contains: "takes 1 operand(s), got 2",
		},
		"empty term": {
			doc:      `expressions: [""]`,
			contains: "empty term",
		},
		"sequence as term": {
			doc:      `expressions: [[p, q]]`,
			contains: "expected a constant, a variable or an operation",
		},
		"nested error": {
			doc:      `expressions: [{op: "|", args: [T, {op: "?", args: [F]}]}]`,
			contains: "unknown operator '?'",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := helpers_test.CreateTempFileWithContents(t, demoDocument)

		sheet, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, sheet.Expressions, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("does-not-exist.yaml")
		assert.Error(t, err)
	})
}
