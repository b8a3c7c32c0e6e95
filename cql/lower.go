package cql

import (
	"fmt"

	"github.com/grafana/regexp"
)

// lower walks the CST participle produced and builds the flat, tagged AST
// the scanner consumes, enforcing the structural invariants spec §3 lists
// for that AST (non-empty, Distance never first/last/adjacent-to-Distance,
// 0 <= Min < Max).
func lower(cst *patternCST) (Pattern, error) {
	pat := make(Pattern, 0, len(cst.Items))

	for _, item := range cst.Items {
		switch {
		case item.Distance != nil:
			d := item.Distance
			if d.Max <= d.Min {
				return nil, &InvalidQuery{
					Message: fmt.Sprintf("distance max (%d) must be greater than min (%d)", d.Max, d.Min),
					Pos:     &item.Pos,
				}
			}
			pat = append(pat, &Distance{Min: d.Min, Max: d.Max})

		case item.Element != nil:
			el, err := lowerElement(item.Element)
			if err != nil {
				return nil, err
			}
			pat = append(pat, el)

		default:
			return nil, &MalformedPredicate{Detail: "sequence item has neither distance nor element"}
		}
	}

	if len(pat) == 0 {
		return nil, &InvalidQuery{Message: "empty", Pos: &cst.Pos}
	}

	if err := validateDistances(pat); err != nil {
		return nil, err
	}

	return pat, nil
}

// validateDistances checks that Distance elements never open or close the
// pattern and never sit next to another Distance. sequenceItem is
// polymorphic over Distance and Element and repeated freely, so nothing in
// the grammar itself stops two Distances (or a leading/trailing one) from
// parsing; this pass is what actually enforces it.
func validateDistances(pat Pattern) error {
	if _, ok := pat[0].(*Distance); ok {
		return &InvalidQuery{Message: "pattern cannot start with a distance element"}
	}
	if _, ok := pat[len(pat)-1].(*Distance); ok {
		return &InvalidQuery{Message: "pattern cannot end with a distance element"}
	}
	for i := 1; i < len(pat); i++ {
		_, prevIsDist := pat[i-1].(*Distance)
		_, curIsDist := pat[i].(*Distance)
		if prevIsDist && curIsDist {
			return &InvalidQuery{Message: "two distance elements cannot be adjacent"}
		}
	}
	return nil
}

func lowerElement(el *elementCST) (Element, error) {
	switch {
	case el.Bracket != nil:
		return lowerBracket(el.Bracket)
	case el.Or != nil:
		return lowerOr(el.Or)
	default:
		return nil, &MalformedPredicate{Detail: "element has neither bracket nor or-group"}
	}
}

func lowerBracket(b *bracketElement) (Element, error) {
	inner, err := lowerInside(&b.Inside)
	if err != nil {
		return nil, err
	}
	if b.Optional {
		return &Optional{Inner: inner}, nil
	}
	return inner, nil
}

// lowerInside turns one bracket's `simple ( & simple )*` into a Simple (a
// single predicate is never wrapped) or an And of two-or-more.
func lowerInside(in *insideExpr) (Element, error) {
	children := make([]*Simple, len(in.Simple))
	for i, s := range in.Simple {
		simple, err := lowerSimple(s)
		if err != nil {
			return nil, err
		}
		children[i] = simple
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return &And{Children: children}, nil
}

func lowerSimple(s *simpleExpr) (*Simple, error) {
	var op Op
	switch s.Op {
	case "=":
		op = Eq
	case "!=":
		op = Neq
	default:
		return nil, &MalformedPredicate{Detail: "simple predicate missing operator: " + s.Op}
	}

	pattern := string(s.Value)
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, &InvalidRegex{Pattern: pattern, Err: err}
	}

	return &Simple{Attr: s.Attr, Op: op, Pattern: pattern, Re: re}, nil
}

func lowerOr(o *orElement) (Element, error) {
	alts := make([]Element, len(o.Alternatives))
	for i, a := range o.Alternatives {
		el, err := lowerInside(&a.Inside)
		if err != nil {
			return nil, err
		}
		alts[i] = el
	}
	return &Or{Alternatives: alts}, nil
}
