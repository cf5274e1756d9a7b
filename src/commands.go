package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/definition"
	"github.com/eriklarko/truth-table/src/texttable"
	"github.com/eriklarko/truth-table/src/truthtable"
	"github.com/midbel/cli"
)

type DemoCommand struct {
	Format string
	Config string
}

func (c DemoCommand) Run(args []string) error {
	set := cli.NewFlagSet("demo")
	set.StringVar(&c.Format, "f", "", "output format: auto, table or csv")
	set.StringVar(&c.Config, "c", config.DefaultPath, "configuration file")
	if err := set.Parse(args); err != nil {
		return err
	}
	conf, err := setup(c.Config, c.Format)
	if err != nil {
		return err
	}
	return runDemo(os.Stdout, conf)
}

type TableCommand struct {
	Format string
	Config string
}

func (c TableCommand) Run(args []string) error {
	set := cli.NewFlagSet("table")
	set.StringVar(&c.Format, "f", "", "output format: auto, table or csv")
	set.StringVar(&c.Config, "c", config.DefaultPath, "configuration file")
	if err := set.Parse(args); err != nil {
		return err
	}
	conf, err := setup(c.Config, c.Format)
	if err != nil {
		return err
	}
	return runTable(os.Stdout, conf, set.Arg(0))
}

type SummaryCommand struct {
	Config string
	Strict bool
}

func (c SummaryCommand) Run(args []string) error {
	set := cli.NewFlagSet("summary")
	set.StringVar(&c.Config, "c", config.DefaultPath, "configuration file")
	set.BoolVar(&c.Strict, "x", false, "fail when an expression is a contradiction")
	if err := set.Parse(args); err != nil {
		return err
	}
	conf, err := setup(c.Config, "")
	if err != nil {
		return err
	}
	report, err := runSummary(os.Stdout, conf, set.Arg(0))
	if err != nil {
		return err
	}
	if c.Strict && report.HasContradictions() {
		return errFail
	}
	return nil
}

// setup loads the config, applies the format given on the command line and
// configures the default logger.
func setup(path, format string) (*config.Config, error) {
	conf, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if format != "" {
		conf.Format = format
		if err := conf.Validate(); err != nil {
			return nil, err
		}
	}

	level, err := conf.SlogLevel()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return conf, nil
}

// demoTables builds the example expressions: p & T ^ F on its own, then
// (!p | ~q) > (p == !q) next to p | q.
func demoTables() (*truthtable.Context, [][]*boolexpr.Node) {
	ctx := truthtable.NewContext()
	p := ctx.Declare("p")
	q := ctx.Declare("q")

	return ctx, [][]*boolexpr.Node{
		{
			boolexpr.Xor(boolexpr.And(p, boolexpr.True), boolexpr.False),
		},
		{
			boolexpr.Implies(
				boolexpr.Or(boolexpr.Not(p), boolexpr.Not(q)),
				boolexpr.Equiv(p, boolexpr.Not(q)),
			),
			boolexpr.Or(p, q),
		},
	}
}

func runDemo(w io.Writer, conf *config.Config) error {
	ctx, tables := demoTables()
	for i, exprs := range tables {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := render(w, conf, ctx, exprs); err != nil {
			return err
		}
	}
	return nil
}

func runTable(w io.Writer, conf *config.Config, path string) error {
	sheet, err := load(path)
	if err != nil {
		return err
	}
	return render(w, conf, sheet.Context, sheet.Expressions)
}

func runSummary(w io.Writer, conf *config.Config, path string) (*truthtable.Report, error) {
	sheet, err := load(path)
	if err != nil {
		return nil, err
	}

	sheet.Context.SetMaxVariables(conf.MaxVariables)
	table, err := sheet.Context.Generate(sheet.Expressions...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate truth table: %w", err)
	}

	report, err := truthtable.Summarize(table)
	if err != nil {
		return nil, err
	}

	for _, s := range report.Expressions {
		fmt.Fprintf(w, "%-13s %s: true in %d/%d rows (%.0f%%)\n", s.Classification, s.Expression, s.TrueRows, s.Rows, s.Ratio*100)
	}
	return report, nil
}

func load(path string) (*definition.Sheet, error) {
	if path == "" {
		return nil, fmt.Errorf("no definition file given")
	}
	sheet, err := definition.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded definition",
		"path", path,
		"variables", sheet.Context.Len(),
		"expressions", len(sheet.Expressions),
	)
	return sheet, nil
}

// render writes the truth table of exprs in the format chosen by conf.
func render(w io.Writer, conf *config.Config, ctx *truthtable.Context, exprs []*boolexpr.Node) error {
	ctx.SetMaxVariables(conf.MaxVariables)

	switch conf.OutputFormat() {
	case config.FormatCSV:
		out := texttable.NewCSV(w)
		if err := ctx.Write(out, exprs...); err != nil {
			return fmt.Errorf("failed to generate truth table: %w", err)
		}
		return out.Flush()
	default:
		out := texttable.New()
		if err := ctx.Write(out, exprs...); err != nil {
			return fmt.Errorf("failed to generate truth table: %w", err)
		}
		_, err := out.WriteTo(w)
		return err
	}
}
