package bookmark

import "github.com/baaaaaaaka/dir-short/internal/match"

type Result struct {
	Matched      bool
	NicknameHits []match.Span
	PathHits     []match.Span
}

// Filter returns the bookmarks whose nickname or path matches query, in
// (nickname, path) order.
func Filter(bookmarks []Bookmark, query string) []Bookmark {
	return FilterPattern(bookmarks, match.Compile(query))
}

func FilterPattern(bookmarks []Bookmark, p match.Pattern) []Bookmark {
	var out []Bookmark
	for _, b := range Sorted(bookmarks) {
		if p.MatchString(b.Nickname) || p.MatchString(b.Path) {
			out = append(out, b)
		}
	}
	return out
}

func Highlights(b Bookmark, p match.Pattern) Result {
	nickSpans, nickOK := p.Match(b.Nickname)
	pathSpans, pathOK := p.Match(b.Path)
	res := Result{Matched: nickOK || pathOK}
	if nickOK {
		res.NicknameHits = nonEmpty(nickSpans)
	}
	if pathOK {
		res.PathHits = nonEmpty(pathSpans)
	}
	return res
}

func nonEmpty(spans []match.Span) []match.Span {
	var out []match.Span
	for _, s := range spans {
		if s.Len() > 0 {
			out = append(out, s)
		}
	}
	return out
}

// First returns the first bookmark matching query.
func First(bookmarks []Bookmark, query string) (Bookmark, bool) {
	filtered := Filter(bookmarks, query)
	if len(filtered) == 0 {
		return Bookmark{}, false
	}
	return filtered[0], true
}
