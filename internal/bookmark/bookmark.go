package bookmark

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

type Bookmark struct {
	Nickname string
	Path     string
}

func New(nickname, path string) Bookmark {
	return Bookmark{Nickname: norm.NFC.String(nickname), Path: norm.NFC.String(path)}
}

func Less(a, b Bookmark) bool {
	if a.Nickname != b.Nickname {
		return a.Nickname < b.Nickname
	}
	return a.Path < b.Path
}

// Sorted returns a de-duplicated copy ordered by (nickname, path).
func Sorted(bookmarks []Bookmark) []Bookmark {
	out := make([]Bookmark, 0, len(bookmarks))
	seen := make(map[Bookmark]bool, len(bookmarks))
	for _, b := range bookmarks {
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

func Contains(bookmarks []Bookmark, b Bookmark) bool {
	for _, existing := range bookmarks {
		if existing == b {
			return true
		}
	}
	return false
}
