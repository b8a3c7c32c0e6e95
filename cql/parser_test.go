package cql_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kr/pretty"

	"github.com/andresecha/cqlgo/cql"
)

func TestParseValid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		query string
		want  int // expected len(Pattern)
	}{
		{"simple equality", `[lemma='rey']`, 1},
		{"simple inequality", `[pos!='NOUN']`, 1},
		{"and", `[lemma='rey' & pos='NOUN']`, 1},
		{"regex", `[lemma='re.*']`, 1},
		{"sequence", `[pos='DET'][pos='NOUN']`, 2},
		{"distance", `[pos='DET'][]{0,3}[pos='NOUN']`, 3},
		{"or", `([lemma='casa'] | [lemma='hogar'])`, 1},
		{"optional", `[pos='ADV']?[pos='VERB']`, 2},
		{"empty min distance", `[pos='DET'][]{,3}[pos='NOUN']`, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pat, err := cql.Parse(tc.query)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.query, err)
			}
			if len(pat) != tc.want {
				t.Errorf("Parse(%q): len(pattern) = %d, want %d\n%# v", tc.query, len(pat), tc.want, pretty.Formatter(pat))
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		query string
	}{
		{"empty", ``},
		{"blank", `   `},
		{"unclosed bracket", `[lemma='rey'`},
		{"bad attribute", `[foo='rey']`},
		{"unterminated value", `[lemma='rey]`},
		{"leading distance", `[]{0,3}[pos='NOUN']`},
		{"trailing distance", `[pos='NOUN'][]{0,3}`},
		{"adjacent distance", `[pos='VERB'][]{0,1}[]{0,1}[pos='NOUN']`},
		{"single alternative or", `([lemma='rey'])`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := cql.Parse(tc.query); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tc.query)
			}
		})
	}
}

func TestParseBadRegex(t *testing.T) {
	_, err := cql.Parse(`[lemma='(']`)
	if err == nil {
		t.Fatal("Parse() succeeded, want *cql.InvalidRegex")
	}
	var target *cql.InvalidRegex
	if !errors.As(err, &target) {
		t.Errorf("Parse() error = %v (%T), want *cql.InvalidRegex", err, err)
	}
}

func TestParseShape(t *testing.T) {
	pat, err := cql.Parse(`[lemma='rey' & pos='NOUN']`)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(pat) != 1 {
		t.Fatalf("len(pat) = %d, want 1", len(pat))
	}
	and, ok := pat[0].(*cql.And)
	if !ok {
		t.Fatalf("pat[0] = %T, want *cql.And", pat[0])
	}
	if len(and.Children) != 2 {
		t.Fatalf("len(and.Children) = %d, want 2", len(and.Children))
	}

	want := []struct {
		Attr    string
		Op      cql.Op
		Pattern string
	}{
		{"lemma", cql.Eq, "rey"},
		{"pos", cql.Eq, "NOUN"},
	}
	for i, c := range and.Children {
		if diff := cmp.Diff(want[i].Attr, c.Attr); diff != "" {
			t.Errorf("child %d attr mismatch (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(want[i].Pattern, c.Pattern); diff != "" {
			t.Errorf("child %d pattern mismatch (-want +got):\n%s", i, diff)
		}
		if c.Op != want[i].Op {
			t.Errorf("child %d op = %v, want %v", i, c.Op, want[i].Op)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, query := range []string{
		`[lemma='rey']`,
		`[pos='NOUN']`,
		`[lemma='rey' & pos='NOUN']`,
		`[lemma='re.*']`,
		`[pos='DET'][pos='NOUN']`,
		`[pos='DET'][]{0,3}[pos='NOUN']`,
		`([lemma='paz'] | [lemma='rey'])`,
		`[pos='ADV']?[pos='VERB']`,
	} {
		t.Run(query, func(t *testing.T) {
			first, err := cql.Parse(query)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", query, err)
			}

			printed := first.String()
			second, err := cql.Parse(printed)
			if err != nil {
				t.Fatalf("Parse(printed %q) failed: %v", printed, err)
			}

			if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(cql.Simple{}, "Re")); diff != "" {
				t.Errorf("round trip through %q unexpected diff (-want +got):\n%s", printed, diff)
			}
		})
	}
}
