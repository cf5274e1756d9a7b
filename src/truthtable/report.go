package truthtable

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

type Classification int

const (
	CONTINGENT Classification = iota
	TAUTOLOGY
	CONTRADICTION
)

func (c Classification) String() string {
	switch c {
	case TAUTOLOGY:
		return "tautology"
	case CONTRADICTION:
		return "contradiction"
	default:
		return "contingent"
	}
}

// ExpressionSummary describes one expression column of a truth table.
type ExpressionSummary struct {
	Expression string
	TrueRows   int
	Rows       int
	// fraction of the rows where the expression holds
	Ratio          float64
	Classification Classification
}

type Report struct {
	Expressions []ExpressionSummary
}

// Summarize classifies every expression of the table by looking at all of its
// enumerated rows.
func Summarize(t *Table) (*Report, error) {
	header := t.Header()
	report := &Report{}

	for i := 0; i < t.Expressions(); i++ {
		values := lo.Map(t.Column(i), func(cell string, _ int) float64 {
			if cell == "1" {
				return 1
			}
			return 0
		})

		ratio, err := stats.Mean(values)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize expression '%s': %w", header[t.Variables()+i], err)
		}

		trueRows := lo.Count(values, 1)
		report.RecordExpression(header[t.Variables()+i], trueRows, len(values), ratio)
	}

	return report, nil
}

// RecordExpression adds the summary of an expression that holds in trueRows
// of rows.
func (r *Report) RecordExpression(expression string, trueRows, rows int, ratio float64) {
	classification := CONTINGENT
	switch trueRows {
	case rows:
		classification = TAUTOLOGY
	case 0:
		classification = CONTRADICTION
	}

	r.Expressions = append(r.Expressions, ExpressionSummary{
		Expression:     expression,
		TrueRows:       trueRows,
		Rows:           rows,
		Ratio:          ratio,
		Classification: classification,
	})
}

func (r *Report) Tautologies() []string {
	return r.withClassification(TAUTOLOGY)
}

func (r *Report) Contradictions() []string {
	return r.withClassification(CONTRADICTION)
}

func (r *Report) HasContradictions() bool {
	return len(r.Contradictions()) > 0
}

func (r *Report) withClassification(c Classification) []string {
	return lo.FilterMap(r.Expressions, func(s ExpressionSummary, _ int) (string, bool) {
		return s.Expression, s.Classification == c
	})
}
