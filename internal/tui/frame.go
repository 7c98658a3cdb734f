package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Role uint8

const (
	RoleBackground Role = iota
	RoleBookmark
	RoleCommand
	RoleHighlight
)

// Cell is one terminal column. A zero Rune marks the trailing half of a
// wide rune placed in the previous cell.
type Cell struct {
	Rune rune
	Role Role
}

const filler = ' '

type Frame struct {
	Width  int
	Height int
	cells  []Cell
}

func NewFrame(width, height int) Frame {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Rune: filler, Role: RoleBackground}
	}
	return Frame{Width: width, Height: height, cells: cells}
}

func (f Frame) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

func (f Frame) Cell(x, y int) Cell {
	if !f.inside(x, y) {
		return Cell{}
	}
	return f.cells[y*f.Width+x]
}

// Row returns the text of row y with wide-rune continuations skipped.
func (f Frame) Row(y int) string {
	if y < 0 || y >= f.Height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < f.Width; x++ {
		if r := f.cells[y*f.Width+x].Rune; r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Put writes s at (x, y) and returns the column after the last rune written.
// Text past the right edge is dropped.
func (f *Frame) Put(x, y int, s string, role Role) int {
	if y < 0 || y >= f.Height {
		return x + runewidth.StringWidth(s)
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= f.Width {
			f.cells[y*f.Width+x] = Cell{Rune: r, Role: role}
			for i := 1; i < w; i++ {
				f.cells[y*f.Width+x+i] = Cell{Rune: 0, Role: role}
			}
		}
		x += w
	}
	return x
}

// Restyle changes the role of columns [from, to) on row y, leaving runes
// untouched.
func (f *Frame) Restyle(y, from, to int, role Role) {
	if y < 0 || y >= f.Height {
		return
	}
	from = max(from, 0)
	to = min(to, f.Width)
	for x := from; x < to; x++ {
		f.cells[y*f.Width+x].Role = role
	}
}
