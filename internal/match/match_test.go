package match

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokensCollapseWhitespace(t *testing.T) {
	got := Tokens("  tmp   py \t proj ")
	want := []string{"tmp", "py", "proj"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens=%#v want %#v", got, want)
	}
	if got := Tokens("   "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %#v", got)
	}
}

func TestEmptyQueryMatchesEverything(t *testing.T) {
	for _, q := range []string{"", " ", "\t  "} {
		p := Compile(q)
		if !p.Empty() {
			t.Fatalf("Compile(%q) should be empty", q)
		}
		for _, s := range []string{"", "x", "/home/u/docs"} {
			spans, ok := p.Match(s)
			if !ok {
				t.Fatalf("Compile(%q) did not match %q", q, s)
			}
			if len(spans) != 0 {
				t.Fatalf("expected no spans, got %#v", spans)
			}
		}
	}
}

func TestMatchOrderedSubstrings(t *testing.T) {
	cases := []struct {
		query   string
		subject string
		want    bool
	}{
		{"tmp py", "/home/u/tmp/python/projects", true},
		{"py tmp", "/home/u/tmp/python/projects", false},
		{"proj", "proj", true},
		{"pro j", "proj", true},
		{"proj", "pro-j", false},
		{"PROJ", "proj", false},
		{"proj", "PROJ", false},
		{"a-b", "xa-by", true},
		{"a_b", "a-b", false},
		{"home docs", "/home/u/docs", true},
		{"docs home", "/home/u/docs", false},
		{"u u", "/usr/u/docs", true},
		{"u u", "/home/u/docs", false},
		{"u u u", "/u/u", false},
	}
	for _, tc := range cases {
		p := Compile(tc.query)
		_, got := p.Match(tc.subject)
		if got != tc.want {
			t.Fatalf("Compile(%q).Match(%q)=%v want %v", tc.query, tc.subject, got, tc.want)
		}
		if p.MatchString(tc.subject) != tc.want {
			t.Fatalf("MatchString disagrees with Match for %q/%q", tc.query, tc.subject)
		}
		if scan := scanInOrder(tc.subject, Tokens(tc.query)); scan != tc.want {
			t.Fatalf("case %q/%q wants %v, scan says %v", tc.query, tc.subject, tc.want, scan)
		}
	}
}

func TestMatchAgreesWithSubsequenceScan(t *testing.T) {
	subjects := []string{"/home/u/tmp/python/projects", "docs", "aaa", "ab-ba_ab", ""}
	queries := []string{"a", "a a", "a a a a", "ab ba", "ba ab", "b _", "tmp", "o o o", "x"}
	for _, s := range subjects {
		for _, q := range queries {
			_, got := Compile(q).Match(s)
			want := scanInOrder(s, Tokens(q))
			if got != want {
				t.Fatalf("Compile(%q).Match(%q)=%v, scan says %v", q, s, got, want)
			}
		}
	}
}

func scanInOrder(s string, tokens []string) bool {
	rest := s
	for _, tok := range tokens {
		idx := strings.Index(rest, tok)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(tok):]
	}
	return true
}

func TestMatchSpans(t *testing.T) {
	subject := "/home/u/tmp/python/projects"
	spans, ok := Compile("tmp py").Match(subject)
	if !ok {
		t.Fatalf("expected match")
	}
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %#v", spans)
	}
	if got := subject[spans[0].Start:spans[0].End]; got != "tmp" {
		t.Fatalf("span[0]=%q want tmp", got)
	}
	if got := subject[spans[1].Start:spans[1].End]; got != "py" {
		t.Fatalf("span[1]=%q want py", got)
	}
	if spans[0].End > spans[1].Start {
		t.Fatalf("spans overlap: %#v", spans)
	}
}

func TestMatchSpansPreferLastOccurrence(t *testing.T) {
	// Greedy leading text pushes each group as far right as the rest allows.
	spans, ok := Compile("o").Match("/foo/bar/o")
	if !ok {
		t.Fatalf("expected match")
	}
	if want := []Span{{Start: 9, End: 10}}; !reflect.DeepEqual(spans, want) {
		t.Fatalf("spans=%#v want %#v", spans, want)
	}
}

func TestMetacharactersAreLiteral(t *testing.T) {
	p := Compile("a.b")
	if _, ok := p.Match("axb"); ok {
		t.Fatalf("dot should be literal")
	}
	if _, ok := p.Match("a.b"); !ok {
		t.Fatalf("expected literal match")
	}
	if _, ok := Compile("(").Match("x(y"); !ok {
		t.Fatalf("expected literal paren match")
	}
}
