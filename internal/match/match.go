// Package match compiles a query into an ordered-substring pattern.
//
// A query is split on whitespace into tokens. A subject matches when every
// token occurs in it, in order, with arbitrary text before, between and after.
package match

import (
	"regexp"
	"strings"
)

type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

type Pattern struct {
	tokens []string
	re     *regexp.Regexp
}

func Tokens(query string) []string {
	return strings.Fields(query)
}

// Compile builds the pattern for query. Tokens are matched literally; each one
// becomes a capturing group so the consumed span can be highlighted.
func Compile(query string) Pattern {
	tokens := Tokens(query)
	groups := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		groups = append(groups, "("+regexp.QuoteMeta(tok)+")")
	}
	expr := "^.*" + strings.Join(groups, ".*") + ".*$"
	return Pattern{tokens: tokens, re: regexp.MustCompile(expr)}
}

func (p Pattern) Tokens() []string {
	return append([]string(nil), p.tokens...)
}

func (p Pattern) Empty() bool { return len(p.tokens) == 0 }

func (p Pattern) MatchString(s string) bool {
	if p.re == nil {
		return true
	}
	return p.re.MatchString(s)
}

// Match reports whether s matches and returns one span per token.
// Spans are byte offsets into s, ordered and non-overlapping.
func (p Pattern) Match(s string) ([]Span, bool) {
	if p.re == nil {
		return nil, true
	}
	loc := p.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil, false
	}
	spans := make([]Span, 0, len(p.tokens))
	for i := 1; i <= len(p.tokens); i++ {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			continue
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans, true
}

func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}
