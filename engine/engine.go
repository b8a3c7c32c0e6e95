// Package engine exposes the public, two-operation Corpus Query Language
// API (spec §6.1): Match and FindAll. It is a thin, stateless facade over
// cql.Parse and scanner.Run, in the same shape as the original project's
// CQLEngine — verbose/debug flags, construction-is-free, no retained state
// between calls.
package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log/level"

	"github.com/andresecha/cqlgo/corpus"
	"github.com/andresecha/cqlgo/cql"
	"github.com/andresecha/cqlgo/internal/logging"
	"github.com/andresecha/cqlgo/scanner"
)

// CQLEngine is the main entry point for running CQL queries against a
// corpus. It carries no state beyond where verbose output goes, and is
// free to construct or to share across goroutines (spec §5, §9).
type CQLEngine struct {
	// Writer receives the verbose-mode summary. Defaults to os.Stdout.
	Writer io.Writer
}

// New returns a ready-to-use CQLEngine. Construction is O(1).
func New() *CQLEngine {
	return &CQLEngine{Writer: os.Stdout}
}

func (e *CQLEngine) writer() io.Writer {
	if e.Writer != nil {
		return e.Writer
	}
	return os.Stdout
}

// FindAll returns the positions of every occurrence of query in c, in
// strictly increasing start order. An empty corpus yields nil spans and a
// nil error; an empty or invalid query returns *cql.InvalidQuery
// (or *cql.InvalidRegex) and the scanner is never invoked.
func (e *CQLEngine) FindAll(c corpus.Corpus, query string, verbose, debug bool) ([]corpus.Span, error) {
	pat, err := e.compile(query, debug)
	if err != nil {
		return nil, err
	}

	if len(c) == 0 {
		level.Warn(logging.Logger).Log("msg", "empty corpus provided to findall")
		return nil, nil
	}

	level.Info(logging.Logger).Log("msg", "executing findall query", "query", query)

	_, spans, err := scanner.Run(pat, c, scanner.Find)
	if err != nil {
		level.Error(logging.Logger).Log("msg", "error executing findall query", "err", err)
		return nil, err
	}

	if verbose {
		printFindAll(e.writer(), query, pat, c, spans, debug)
	}

	level.Info(logging.Logger).Log("msg", "findall complete", "matches", len(spans))
	return spans, nil
}

// Match reports whether query matches anywhere in c. It is cheaper than
// FindAll when only existence matters, since scanner.Run stops at the
// first completed occurrence.
func (e *CQLEngine) Match(c corpus.Corpus, query string, verbose, debug bool) (bool, error) {
	pat, err := e.compile(query, debug)
	if err != nil {
		return false, err
	}

	if len(c) == 0 {
		level.Warn(logging.Logger).Log("msg", "empty corpus provided to match")
		return false, nil
	}

	level.Info(logging.Logger).Log("msg", "executing match query", "query", query)

	ok, _, err := scanner.Run(pat, c, scanner.Match)
	if err != nil {
		level.Error(logging.Logger).Log("msg", "error executing match query", "err", err)
		return false, err
	}

	if verbose {
		printMatch(e.writer(), query, pat, ok, debug)
	}

	level.Info(logging.Logger).Log("msg", "match complete", "result", ok)
	return ok, nil
}

func (e *CQLEngine) compile(query string, debug bool) (cql.Pattern, error) {
	pat, err := cql.Parse(query)
	if err != nil {
		level.Error(logging.Logger).Log("msg", "error compiling query", "query", query, "err", err)
		return nil, err
	}
	if debug {
		level.Debug(logging.Logger).Log("msg", "compiled pattern", "ast", pat.String())
	}
	return pat, nil
}

func printFindAll(w io.Writer, query string, pat cql.Pattern, c corpus.Corpus, spans []corpus.Span, debug bool) {
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintf(w, "Query: %s\n", query)
	if debug {
		fmt.Fprintf(w, "AST: %s\n", pat.String())
	}
	fmt.Fprintf(w, "Matches found: %d\n", len(spans))
	for _, s := range spans {
		fmt.Fprintf(w, "  [%d:%d] -> %v\n", s.Start, s.End, c[s.Start:s.End])
	}
	fmt.Fprintln(w, "============================================================")
}

func printMatch(w io.Writer, query string, pat cql.Pattern, result bool, debug bool) {
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintf(w, "Query: %s\n", query)
	if debug {
		fmt.Fprintf(w, "AST: %s\n", pat.String())
	}
	fmt.Fprintf(w, "Match: %v\n", result)
	fmt.Fprintln(w, "============================================================")
}
