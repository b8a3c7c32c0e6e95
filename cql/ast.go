package cql

import (
	"fmt"
	"strings"

	"github.com/grafana/regexp"
)

// Op is a Simple predicate's comparison operator.
type Op int

const (
	Eq Op = iota
	Neq
)

func (o Op) String() string {
	if o == Neq {
		return "!="
	}
	return "="
}

// Element is one item of the flat, tagged-variant AST spec §3/§9 describes.
// It is a closed sum type: the unexported element() method can only be
// satisfied by the types in this file, the same idiom used for ast.Node
// implementations throughout this corpus (a private marker method per
// concrete variant).
type Element interface {
	element()
	String() string
}

// Simple is a per-token predicate: does corpus[i][Attr] match Pattern under
// Op. Re is the compiled, doubly-anchored form of Pattern, owned by this
// Simple for the AST's lifetime.
type Simple struct {
	Attr    string
	Op      Op
	Pattern string
	Re      *regexp.Regexp
}

// And requires every child Simple to hold against the same token.
type And struct {
	Children []*Simple
}

// Or requires at least one alternative (a Simple or an And) to hold against
// the same token.
type Or struct {
	Alternatives []Element
}

// Distance is a gap element: the following element may be matched anywhere
// from Min to Max-1 tokens ahead (spec §4.3/§9: range is half-open,
// upper-exclusive).
type Distance struct {
	Min int
	Max int
}

// Optional wraps a per-token element (Simple, And, or Or) that may be
// skipped without consuming a corpus token.
type Optional struct {
	Inner Element
}

func (*Simple) element()   {}
func (*And) element()      {}
func (*Or) element()       {}
func (*Distance) element() {}
func (*Optional) element() {}

func (s *Simple) String() string {
	return fmt.Sprintf("[%s%s'%s']", s.Attr, s.Op, s.Pattern)
}

func (a *And) String() string {
	parts := make([]string, len(a.Children))
	for i, c := range a.Children {
		parts[i] = fmt.Sprintf("%s%s'%s'", c.Attr, c.Op, c.Pattern)
	}
	return "[" + strings.Join(parts, " & ") + "]"
}

func (o *Or) String() string {
	parts := make([]string, len(o.Alternatives))
	for i, alt := range o.Alternatives {
		parts[i] = strings.TrimSuffix(strings.TrimPrefix(alt.String(), "["), "]")
		parts[i] = "[" + parts[i] + "]"
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

func (d *Distance) String() string {
	return fmt.Sprintf("[]{%d,%d}", d.Min, d.Max)
}

func (o *Optional) String() string {
	return o.Inner.String() + "?"
}

// Pattern is the parsed, compiled form of a query: the flat sequence of
// Elements the scanner walks left-to-right against a corpus.
type Pattern []Element

func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.String()
	}
	return strings.Join(parts, "")
}
