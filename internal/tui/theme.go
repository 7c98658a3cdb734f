package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/dir-short/internal/config"
)

type palette map[Role]tcell.Style

var defaultPalette = palette{
	RoleBackground: tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorSilver),
	RoleBookmark:   tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorSilver),
	RoleCommand:    tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorYellow).Bold(true),
	RoleHighlight:  tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorGray).Dim(true),
}

// newPalette overlays the configured color names on the defaults. Unknown
// names keep the default color.
func newPalette(t config.Theme) palette {
	p := palette{}
	for role, style := range defaultPalette {
		p[role] = style
	}

	if c, ok := color(t.Background); ok {
		for _, role := range []Role{RoleBackground, RoleBookmark, RoleCommand} {
			p[role] = p[role].Background(c)
		}
	}
	if c, ok := color(t.Foreground); ok {
		p[RoleBackground] = p[RoleBackground].Foreground(c)
		p[RoleBookmark] = p[RoleBookmark].Foreground(c)
	}
	if c, ok := color(t.Command); ok {
		p[RoleCommand] = p[RoleCommand].Foreground(c)
	}
	if c, ok := color(t.Highlight); ok {
		p[RoleHighlight] = p[RoleHighlight].Foreground(c)
	}
	if c, ok := color(t.HighlightBackground); ok {
		p[RoleHighlight] = p[RoleHighlight].Background(c)
	}
	return p
}

func color(name string) (tcell.Color, bool) {
	if name == "" {
		return tcell.ColorDefault, false
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, false
	}
	return c, true
}

func (p palette) style(r Role) tcell.Style {
	if s, ok := p[r]; ok {
		return s
	}
	return tcell.StyleDefault
}
