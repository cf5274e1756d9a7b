package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/cli"
)

var errFail = errors.New("fail")

const summary = "truthtable prints the truth table of boolean expressions"

const about = `truthtable enumerates every assignment of the declared variables and prints
the value of each expression for every one of them.

Operators: & and, | or, ^ xor, > implies, == equivalent, ! or ~ not.
Constants: T and F.`

var commands = []*cli.Command{
	&demoCmd,
	&tableCmd,
	&summaryCmd,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command named by args and returns the exit code.
func run(args []string, stderr io.Writer) int {
	var (
		set  = cli.NewFlagSet("truthtable")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help())
	if err := set.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			return 2
		}
	}

	err := root.Execute(set.Args())
	if err == nil {
		return 0
	}
	if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
		fmt.Fprintln(stderr, "similar command(s)")
		for _, n := range s.Others {
			fmt.Fprintln(stderr, "-", n)
		}
	}
	// errFail means the command already reported why it failed
	if !errors.Is(err, errFail) {
		fmt.Fprintln(stderr, err)
	}
	return 1
}

func help() string {
	var b strings.Builder
	b.WriteString(about)
	b.WriteString("\n\nUsage:\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "  truthtable %s\n", cmd.Usage)
	}
	return b.String()
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	for _, cmd := range commands {
		root.Register([]string{cmd.Name}, cmd)
	}
	return root
}

var demoCmd = cli.Command{
	Name:    "demo",
	Alias:   []string{"example"},
	Summary: "print the truth tables of a few example expressions",
	Usage:   "demo [-f format] [-c config]",
	Handler: &DemoCommand{},
}

var tableCmd = cli.Command{
	Name:    "table",
	Alias:   []string{"print", "show"},
	Summary: "print the truth table of the expressions in a definition file",
	Usage:   "table [-f format] [-c config] <definition.yaml>",
	Handler: &TableCommand{},
}

var summaryCmd = cli.Command{
	Name:    "summary",
	Alias:   []string{"classify"},
	Summary: "tell which expressions of a definition file are tautologies or contradictions",
	Usage:   "summary [-c config] [-x] <definition.yaml>",
	Handler: &SummaryCommand{},
}
