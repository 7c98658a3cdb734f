package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/baaaaaaaka/dir-short/internal/bookmark"
	"github.com/baaaaaaaka/dir-short/internal/match"
)

const (
	markerWidth   = 2
	nicknameWidth = 16
	separator     = " "
)

const (
	selectedMarker   = "> "
	unselectedMarker = "  "
)

type State struct {
	Query    string
	Selected int
	Visible  int
}

type span struct {
	from, to int
}

// Render lays out one full frame. Bookmarks stack upward from the row above
// the query line, the last one lowest. When they do not all fit, the window
// scrolls just far enough to keep the selected row on screen.
func Render(filtered []bookmark.Bookmark, st State, width, height int) Frame {
	f := NewFrame(width, height)
	if f.Height == 0 {
		return f
	}

	pattern := match.Compile(st.Query)
	queryRow := f.Height - 1
	first := queryRow - len(filtered)
	if st.Visible > 0 && first+st.Selected < 0 {
		first = -st.Selected
	}
	for i, b := range filtered {
		y := first + i
		if y < 0 || y >= queryRow {
			continue
		}
		drawBookmark(&f, y, b, pattern, st.Visible > 0 && i == st.Selected)
	}

	f.Put(0, queryRow, st.Query, RoleCommand)
	return f
}

func drawBookmark(f *Frame, y int, b bookmark.Bookmark, p match.Pattern, selected bool) {
	marker := unselectedMarker
	if selected {
		marker = selectedMarker
	}

	nickCol, pathCol := columns(b)
	end := f.Put(0, y, marker, RoleBookmark)
	end = f.Put(end, y, b.Nickname, RoleBookmark)
	end = f.Put(end, y, padding(b.Nickname), RoleBookmark)
	end = f.Put(end, y, separator, RoleBookmark)
	f.Put(end, y, b.Path, RoleBookmark)

	res := bookmark.Highlights(b, p)
	for _, s := range cellSpans(b.Nickname, nickCol, res.NicknameHits) {
		f.Restyle(y, s.from, s.to, RoleHighlight)
	}
	for _, s := range cellSpans(b.Path, pathCol, res.PathHits) {
		f.Restyle(y, s.from, s.to, RoleHighlight)
	}
}

// columns returns where the nickname and the path start on a bookmark line.
func columns(b bookmark.Bookmark) (int, int) {
	field := max(runewidth.StringWidth(b.Nickname), nicknameWidth)
	return markerWidth, markerWidth + field + len(separator)
}

func padding(nickname string) string {
	n := nicknameWidth - runewidth.StringWidth(nickname)
	if n <= 0 {
		return ""
	}
	return runewidth.FillRight("", n)
}

func cellSpans(text string, col int, hits []match.Span) []span {
	out := make([]span, 0, len(hits))
	for _, h := range hits {
		out = append(out, span{
			from: col + runewidth.StringWidth(text[:h.Start]),
			to:   col + runewidth.StringWidth(text[:h.End]),
		})
	}
	return out
}
