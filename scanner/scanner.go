// Package scanner implements the Pattern Scanner (spec §4.3): a positional,
// left-to-right sweep of a corpus against a compiled cql.Pattern, producing
// either a boolean (Match mode) or the ordered list of match spans (Find
// mode).
package scanner

import (
	"github.com/go-kit/log/level"

	"github.com/andresecha/cqlgo/corpus"
	"github.com/andresecha/cqlgo/cql"
	"github.com/andresecha/cqlgo/internal/logging"
)

// Mode selects what Run reports.
type Mode int

const (
	// Match stops at the first completed occurrence and reports only
	// whether one exists.
	Match Mode = iota
	// Find collects every occurrence and reports all of their spans.
	Find
)

// noStart marks the absence of an in-progress match's starting position
// (spec §4.3's "start: None").
const noStart = -1

// Run sweeps pat across c and reports a match (mode Match) or every match
// span (mode Find). Its result depends only on (pat, c): no shared mutable
// state and no suspension points (spec §5). Its only I/O is the debug-level
// log line evalAt writes for a predicate that fails with an error.
func Run(pat cql.Pattern, c corpus.Corpus, mode Mode) (bool, []corpus.Span, error) {
	if mode != Match && mode != Find {
		return false, nil, &cql.InvalidArgument{Detail: "mode must be Match or Find"}
	}
	if len(c) == 0 || len(pat) == 0 {
		return false, nil, nil
	}

	astLen := len(pat)
	corpusLen := len(c)

	textI := 0
	treeI := 0
	anchor := 0
	start := noStart
	var spans []corpus.Span

	for {
		if treeI == astLen {
			if start != noStart {
				spans = append(spans, corpus.Span{Start: start, End: textI})
				if mode == Match {
					return true, nil, nil
				}
			}
			anchor++
			textI = anchor
			treeI = 0
			start = noStart
			continue
		}

		if textI >= corpusLen {
			break
		}

		switch el := pat[treeI].(type) {
		case *cql.Distance:
			if matchDistance(pat, el, c, &textI, &treeI, corpusLen) {
				continue
			}
			anchor++
			textI = anchor
			treeI = 0
			start = noStart

		case *cql.Optional:
			if evalAt(el.Inner, c, textI) {
				if start == noStart {
					start = textI
				}
				treeI++
				textI++
			} else {
				treeI++
			}

		default:
			if evalAt(el, c, textI) {
				if start == noStart {
					start = textI
				}
				treeI++
				textI++
			} else {
				anchor++
				textI = anchor
				treeI = 0
				start = noStart
			}
		}
	}

	if mode == Match {
		return false, nil, nil
	}
	return len(spans) > 0, spans, nil
}

// matchDistance attempts to satisfy a Distance element followed by its
// anchor element, per spec §4.3: advance textI by d.Min, then probe
// positions d.Min..d.Max-1 (upper-exclusive) for the anchor. On success it
// advances treeI by two and textI by one and returns true; on failure
// textI/treeI are left at their post-probe values and the caller must
// reset the scan.
func matchDistance(pat cql.Pattern, d *cql.Distance, c corpus.Corpus, textI, treeI *int, corpusLen int) bool {
	anchorElem := pat[*treeI+1]

	*textI += d.Min
	for i := d.Min; i < d.Max; i++ {
		if *textI >= corpusLen {
			break
		}
		if evalAt(anchorElem, c, *textI) {
			*treeI += 2
			*textI++
			return true
		}
		*textI++
	}
	return false
}

// evalAt evaluates a per-token element against c[i], logging and treating
// a MissingAnnotation as a plain miss rather than surfacing it (spec §7).
func evalAt(el cql.Element, c corpus.Corpus, i int) bool {
	ok, err := cql.Eval(el, c[i])
	if err != nil {
		level.Debug(logging.Logger).Log("msg", "predicate miss", "position", i, "err", err)
		return false
	}
	return ok
}
