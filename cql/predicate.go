package cql

import "github.com/andresecha/cqlgo/corpus"

// EvalSimple tests a single predicate against one token (spec §4.2): fetch
// tok[s.Attr], fail with MissingAnnotation if absent, otherwise test the
// doubly-anchored regex and apply Eq/Neq.
func EvalSimple(s *Simple, tok corpus.Token) (bool, error) {
	val, ok := tok.Get(s.Attr)
	if !ok {
		return false, &MissingAnnotation{Attr: s.Attr}
	}

	matched := s.Re.MatchString(val)
	if s.Op == Neq {
		return !matched, nil
	}
	return matched, nil
}

// EvalAnd requires every child to hold, short-circuiting on the first
// failure or error.
func EvalAnd(a *And, tok corpus.Token) (bool, error) {
	for _, c := range a.Children {
		ok, err := EvalSimple(c, tok)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// EvalOr requires at least one alternative to hold. A MissingAnnotation
// from one alternative is swallowed (treated as that alternative failing)
// so heterogeneous alternatives — some referencing an attribute a given
// token lacks — remain usable, per spec §4.2.
func EvalOr(o *Or, tok corpus.Token) bool {
	for _, alt := range o.Alternatives {
		switch v := alt.(type) {
		case *Simple:
			if ok, err := EvalSimple(v, tok); err == nil && ok {
				return true
			}
		case *And:
			if ok, err := EvalAnd(v, tok); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// Eval dispatches a per-token Element (Simple, And, or Or) against tok.
// Distance and Optional are not per-token predicates; the scanner handles
// them directly rather than through Eval.
func Eval(e Element, tok corpus.Token) (bool, error) {
	switch v := e.(type) {
	case *Simple:
		return EvalSimple(v, tok)
	case *And:
		return EvalAnd(v, tok)
	case *Or:
		return EvalOr(v, tok), nil
	default:
		return false, &MalformedPredicate{Detail: "element is not a per-token predicate"}
	}
}
