// Command cql is the CLI collaborator described in spec §6.2: it loads a
// corpus from a JSON file, runs one CQL query against it in match or
// findall mode, and exits 0 on a match/non-empty result, 1 otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/andresecha/cqlgo/corpus"
	"github.com/andresecha/cqlgo/engine"
	"github.com/andresecha/cqlgo/internal/logging"
)

type cli struct {
	Query  string `arg:"" help:"CQL query to execute, e.g. [pos='NOUN']."`
	Corpus string `arg:"" help:"Path to a JSON corpus file." type:"existingfile"`

	Mode    string `enum:"match,findall" default:"findall" help:"match returns a boolean, findall lists every span."`
	Verbose bool   `short:"v" help:"Print a human-readable summary in addition to the exit code."`
	Debug   bool   `short:"d" help:"Enable debug logging and print the compiled AST."`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("cql"),
		kong.Description("Run a Corpus Query Language query against a JSON corpus."),
	)

	if c.Debug {
		logging.SetLevel("debug")
	} else if c.Verbose {
		logging.SetLevel("info")
	} else {
		logging.SetLevel("warn")
	}

	os.Exit(run(c))
}

func run(c cli) int {
	f, err := os.Open(c.Corpus)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer f.Close()

	corp, err := corpus.Load(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	eng := engine.New()

	switch c.Mode {
	case "match":
		ok, err := eng.Match(corp, c.Query, c.Verbose, c.Debug)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("Match: %v\n", ok)
		if !ok {
			return 1
		}
		return 0

	default: // "findall"
		spans, err := eng.FindAll(corp, c.Query, c.Verbose, c.Debug)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("Found %d matches:\n", len(spans))
		for _, s := range spans {
			fmt.Printf("  [%d:%d]\n", s.Start, s.End)
		}
		if len(spans) == 0 {
			return 1
		}
		return 0
	}
}
