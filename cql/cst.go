package cql

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// The types below are the concrete syntax tree participle builds directly
// from the grammar of spec §4.1:
//
//	pattern := element ( element | DISTANCE element )*
//	element := '[' inside ']' ( '?' )?
//	         | '(' alt ('|' alt)+ ')'
//	inside  := simple ( '&' simple )*
//	simple  := ATTR ('=' | '!=') VALUE
//	alt     := '[' inside ']'
//
// Every production except pattern has a matching struct. pattern is parsed
// more loosely, as one or more sequenceItems that are each a DISTANCE or an
// element; lower.go walks this tree, rejects misplaced DISTANCE items, and
// produces the flat []Element AST the scanner consumes.

type patternCST struct {
	Pos lexer.Position

	Items []*sequenceItem `@@+`
}

type sequenceItem struct {
	Pos lexer.Position

	Distance *distanceSpec `  @Distance`
	Element  *elementCST   `| @@`
}

type elementCST struct {
	Pos lexer.Position

	Bracket *bracketElement `  @@`
	Or      *orElement      `| @@`
}

type bracketElement struct {
	Pos lexer.Position

	Inside   insideExpr `"[" @@ "]"`
	Optional bool       `@"?"?`
}

type insideExpr struct {
	Pos lexer.Position

	Simple []*simpleExpr `@@ ( "&" @@ )*`
}

type simpleExpr struct {
	Pos lexer.Position

	Attr  string `@Attr`
	Op    string `@("=" | "!=")`
	Value quoted `@Value`
}

// alt is the inside of one bracketed alternative in an OR group: `[inside]`
// with no trailing "?" (spec grammar: alt := '[' inside ']').
type alt struct {
	Pos lexer.Position

	Inside insideExpr `"[" @@ "]"`
}

type orElement struct {
	Pos lexer.Position

	Alternatives []*alt `"(" @@ ( "|" @@ )+ ")"`
}

// distanceSpec captures a `[]{m,n}` token. Min defaults to 0 when the lower
// bound is omitted ("[]{,n}").
type distanceSpec struct {
	Min int
	Max int
}

func (d *distanceSpec) Capture(values []string) error {
	raw := values[0]
	// raw looks like "[]{0,3}" or "[]{,3}"; take the part after the last
	// "]" and strip the enclosing braces.
	bounds := raw[strings.LastIndex(raw, "]")+1:]
	bounds = strings.TrimPrefix(bounds, "{")
	bounds = strings.TrimSuffix(bounds, "}")

	parts := strings.SplitN(bounds, ",", 2)
	if len(parts) != 2 {
		return &MalformedPredicate{Detail: "distance range missing comma: " + raw}
	}

	minStr := strings.TrimSpace(parts[0])
	maxStr := strings.TrimSpace(parts[1])

	min := 0
	if minStr != "" {
		v, err := strconv.Atoi(minStr)
		if err != nil {
			return &MalformedPredicate{Detail: "bad distance min: " + raw}
		}
		min = v
	}

	max, err := strconv.Atoi(maxStr)
	if err != nil {
		return &MalformedPredicate{Detail: "bad distance max: " + raw}
	}

	d.Min, d.Max = min, max
	return nil
}
