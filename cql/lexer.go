package cql

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// lex recognizes the token classes of spec §4.1. Distance is listed before
// LBrack/RBrack: participle's simple lexer takes the first rule that
// matches at the current offset, so "[]{0,3}" must be captured whole before
// the LBrack rule gets a chance to split it into "[" and an unmatched "]".
var lex = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\n\r]+`},
	{Name: "Distance", Pattern: `\[\s*\]\{\s*[0-9]*\s*,\s*[0-9]+\s*\}`},
	{Name: "LBrack", Pattern: `\[`},
	{Name: "RBrack", Pattern: `\]`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "NEq", Pattern: `!=`},
	{Name: "Eq", Pattern: `=`},
	{Name: "Amp", Pattern: `&`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Opt", Pattern: `\?`},
	{Name: "Attr", Pattern: `\b(?:lemma|pos|morph|word)\b`},
	{Name: "Value", Pattern: `'[^']*'`},
})

// quoted is a VALUE token with its surrounding quotes stripped, the same
// Capture-based post-processing the teacher grammar uses for its
// Comparator field.
type quoted string

func (q *quoted) Capture(values []string) error {
	s := values[0]
	*q = quoted(s[1 : len(s)-1])
	return nil
}
