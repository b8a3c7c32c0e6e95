package cql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresecha/cqlgo/corpus"
	"github.com/andresecha/cqlgo/cql"
)

func simple(t *testing.T, query string) *cql.Simple {
	t.Helper()
	pat, err := cql.Parse(query)
	require.NoError(t, err)
	require.Len(t, pat, 1)
	s, ok := pat[0].(*cql.Simple)
	require.Truef(t, ok, "pat[0] is %T, want *cql.Simple", pat[0])
	return s
}

func TestEvalSimpleAnchored(t *testing.T) {
	tok := corpus.Token{"lemma": "rey"}

	re := simple(t, `[lemma='re']`)
	ok, err := cql.EvalSimple(re, tok)
	require.NoError(t, err)
	assert.False(t, ok, "'re' must not match 'rey' (anchored)")

	reStar := simple(t, `[lemma='re.*']`)
	ok, err = cql.EvalSimple(reStar, tok)
	require.NoError(t, err)
	assert.True(t, ok, "'re.*' must match 'rey'")
}

func TestEvalSimpleNeq(t *testing.T) {
	tok := corpus.Token{"pos": "NOUN"}
	s := simple(t, `[pos!='VERB']`)
	ok, err := cql.EvalSimple(s, tok)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvalSimpleMissingAnnotation(t *testing.T) {
	tok := corpus.Token{"pos": "NOUN"}
	s := simple(t, `[lemma='rey']`)
	_, err := cql.EvalSimple(s, tok)
	require.Error(t, err)
	var target *cql.MissingAnnotation
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "lemma", target.Attr)
}

func TestEvalAnd(t *testing.T) {
	pat, err := cql.Parse(`[lemma='rey' & pos='NOUN']`)
	require.NoError(t, err)
	and := pat[0].(*cql.And)

	ok, err := cql.EvalAnd(and, corpus.Token{"lemma": "rey", "pos": "NOUN"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cql.EvalAnd(and, corpus.Token{"lemma": "rey", "pos": "VERB"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvalOrSwallowsMissingAnnotation(t *testing.T) {
	pat, err := cql.Parse(`([lemma='rey'] | [pos='NOUN'])`)
	require.NoError(t, err)
	or := pat[0].(*cql.Or)

	// Token has pos but no lemma: the lemma alternative fails with
	// MissingAnnotation, which must be swallowed, not propagated, so the
	// pos alternative still gets a chance.
	ok := cql.EvalOr(or, corpus.Token{"pos": "NOUN"})
	assert.True(t, ok)

	ok = cql.EvalOr(or, corpus.Token{"pos": "VERB"})
	assert.False(t, ok)
}
