// Package cql implements the Corpus Query Language front end: a
// participle-based lexer/parser that turns a query string into a Pattern
// (the flat tagged-variant AST), plus the compiled predicates that
// Pattern's Simple elements carry.
package cql

import (
	"errors"
	"strings"

	participle "github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[patternCST](
	participle.Lexer(lex),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse lexes and parses query, then lowers the resulting concrete syntax
// tree into a Pattern. An empty or syntactically invalid query yields an
// *InvalidQuery error; an unparseable VALUE regex yields *InvalidRegex.
// The scanner is never reached on either path.
func Parse(query string) (Pattern, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &InvalidQuery{Message: "empty"}
	}

	cst, err := parser.ParseString("", query)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			pos := perr.Position()
			return nil, &InvalidQuery{Message: perr.Message(), Pos: &pos}
		}
		return nil, &InvalidQuery{Message: err.Error()}
	}

	return lower(cst)
}
