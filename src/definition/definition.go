// Package definition reads truth table definitions from yaml documents. A
// document lists the variables, in column order, and the expressions to
// tabulate. Expressions are written as trees: a scalar is a constant (T or F)
// or a variable name, a mapping applies an operator to its args.
//
// Example:
//
//	variables: [p, q]
//	expressions:
//	  - op: ">"
//	    args:
//	      - op: "|"
//	        args: [{op: "!", args: [p]}, {op: "~", args: [q]}]
//	      - op: "=="
//	        args: [p, {op: "!", args: [q]}]
//	  - {op: "|", args: [p, q]}
package definition

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/truthtable"
	"gopkg.in/yaml.v3"
)

var errEmptyTerm = errors.New("empty term")

type Document struct {
	Variables   []string `yaml:"variables"`
	Expressions []Term   `yaml:"expressions"`
}

// Term is one node of an expression as written in a document. Either Symbol
// is set, or Op and Args are.
type Term struct {
	Symbol string
	Op     string
	Args   []Term

	line int
}

func (t *Term) UnmarshalYAML(value *yaml.Node) error {
	t.line = value.Line

	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&t.Symbol)
	case yaml.MappingNode:
		var raw struct {
			Op   string `yaml:"op"`
			Args []Term `yaml:"args"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		t.Op = raw.Op
		t.Args = raw.Args
		return nil
	default:
		return fmt.Errorf("line %d: expected a constant, a variable or an operation", value.Line)
	}
}

// Sheet is a decoded document: a context with every variable declared, and
// the expressions built over it.
type Sheet struct {
	Context     *truthtable.Context
	Expressions []*boolexpr.Node
}

func Load(path string) (*Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	sheet, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return sheet, nil
}

func Decode(r io.Reader) (*Sheet, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc.Build()
}

// Build declares the variables of the document in a fresh context and builds
// every expression. Variables used by an expression but missing from the
// variables list are not declared; they evaluate to false.
func (d *Document) Build() (*Sheet, error) {
	sheet := &Sheet{
		Context: truthtable.NewContext(),
	}

	handles := make(map[string]*boolexpr.Node, len(d.Variables))
	for _, name := range d.Variables {
		handles[name] = sheet.Context.Declare(name)
	}

	for i, term := range d.Expressions {
		node, err := term.build(handles)
		if err != nil {
			return nil, fmt.Errorf("failed to build expression %d: %w", i+1, err)
		}
		sheet.Expressions = append(sheet.Expressions, node)
	}

	return sheet, nil
}

func (t Term) build(handles map[string]*boolexpr.Node) (*boolexpr.Node, error) {
	if t.Op == "" {
		return t.leaf(handles)
	}

	op, err := boolexpr.ParseOperator(t.Op)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", t.line, err)
	}

	operands := make([]*boolexpr.Node, len(t.Args))
	for i, arg := range t.Args {
		operands[i], err = arg.build(handles)
		if err != nil {
			return nil, err
		}
	}

	node, err := boolexpr.Apply(op, operands...)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", t.line, err)
	}
	return node, nil
}

func (t Term) leaf(handles map[string]*boolexpr.Node) (*boolexpr.Node, error) {
	switch t.Symbol {
	case "":
		return nil, fmt.Errorf("line %d: %w", t.line, errEmptyTerm)
	case "T":
		return boolexpr.True, nil
	case "F":
		return boolexpr.False, nil
	}

	if handle, ok := handles[t.Symbol]; ok {
		return handle, nil
	}
	return boolexpr.Var(t.Symbol), nil
}
