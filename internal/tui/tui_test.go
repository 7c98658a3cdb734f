package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/dir-short/internal/bookmark"
	"github.com/baaaaaaaka/dir-short/internal/config"
)

type scriptedScreen struct {
	tcell.Screen
	events []tcell.Event
	inited bool
	fini   bool
}

func (s *scriptedScreen) Init() error {
	if err := s.Screen.Init(); err != nil {
		return err
	}
	s.inited = true
	s.Screen.SetSize(60, 10)
	return nil
}

func (s *scriptedScreen) Fini() {
	s.fini = true
	s.Screen.Fini()
}

func (s *scriptedScreen) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func withScreen(t *testing.T, events ...tcell.Event) *scriptedScreen {
	t.Helper()
	screen := &scriptedScreen{Screen: tcell.NewSimulationScreen("UTF-8"), events: events}
	prev := newScreen
	newScreen = func() (tcell.Screen, error) { return screen, nil }
	t.Cleanup(func() { newScreen = prev })
	return screen
}

func typeText(s string) []tcell.Event {
	out := make([]tcell.Event, 0, len(s))
	for _, r := range s {
		out = append(out, runeKey(r))
	}
	return out
}

func TestRunConfirmsSelection(t *testing.T) {
	events := append(typeText("tmp py"), key(tcell.KeyEnter))
	screen := withScreen(t, events...)

	got, err := Run(context.Background(), scenario, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want := `cd "/home/u/tmp/python/projects";`; got != want {
		t.Fatalf("command=%q want %q", got, want)
	}
	if !screen.inited || !screen.fini {
		t.Fatalf("screen init=%v fini=%v", screen.inited, screen.fini)
	}
}

func TestRunCancel(t *testing.T) {
	withScreen(t, runeKey('p'), key(tcell.KeyEscape), runeKey('x'))
	got, err := Run(context.Background(), scenario, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != bookmark.NullCommand {
		t.Fatalf("command=%q", got)
	}
}

func TestRunPasteUsesFirstKeyOnly(t *testing.T) {
	events := []tcell.Event{tcell.NewEventPaste(true)}
	events = append(events, typeText("ocs")...)
	events = append(events, tcell.NewEventPaste(false), key(tcell.KeyDown), key(tcell.KeyEnter))
	withScreen(t, events...)

	got, err := Run(context.Background(), scenario, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// only "o" was typed, so both bookmarks still match and Down selects proj
	if want := `cd "/home/u/tmp/python/projects";`; got != want {
		t.Fatalf("command=%q want %q", got, want)
	}
}

func TestRunTerminalClosedReleasesScreen(t *testing.T) {
	screen := withScreen(t, runeKey('a'))
	_, err := Run(context.Background(), scenario, Options{})
	if !errors.Is(err, errTerminalClosed) {
		t.Fatalf("expected errTerminalClosed, got %v", err)
	}
	if !screen.fini {
		t.Fatalf("screen must be released")
	}
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	screen := withScreen(t, &interruptEvent{})
	_, err := Run(ctx, scenario, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !screen.fini {
		t.Fatalf("screen must be released")
	}
}

func TestRunInitFailure(t *testing.T) {
	prev := newScreen
	newScreen = func() (tcell.Screen, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { newScreen = prev })

	_, err := Run(context.Background(), scenario, Options{})
	if err == nil || !strings.Contains(err.Error(), "no tty") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestDrawPaintsFrame(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 4)

	s := NewSession(scenario)
	for _, r := range "docs" {
		s.Apply(Action{Kind: AppendChar, Char: byte(r)})
	}
	colors := newPalette(config.Theme{})
	draw(screen, s, colors)

	cells, w, _ := screen.GetContents()
	row := func(y int) string {
		var b strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) > 0 {
				b.WriteRune(c.Runes[0])
			}
		}
		return b.String()
	}
	if got := row(2); !strings.HasPrefix(got, "> docs") {
		t.Fatalf("row 2=%q", got)
	}
	if got := row(3); !strings.HasPrefix(got, "docs") {
		t.Fatalf("row 3=%q", got)
	}
	if cells[3*w].Style != colors.style(RoleCommand) {
		t.Fatalf("query should use the command style")
	}
	if cells[2*w+2].Style != colors.style(RoleHighlight) {
		t.Fatalf("matched nickname should use the highlight style")
	}
}

func TestPaletteOverrides(t *testing.T) {
	p := newPalette(config.Theme{HighlightBackground: "blue", Command: "not-a-color"})
	_, bg, _ := p.style(RoleHighlight).Decompose()
	if bg != tcell.ColorBlue {
		t.Fatalf("highlight background=%v", bg)
	}
	fg, _, _ := p.style(RoleCommand).Decompose()
	if fg != tcell.ColorYellow {
		t.Fatalf("unknown color should keep default, got %v", fg)
	}
	if defaultPalette[RoleHighlight] == p[RoleHighlight] {
		t.Fatalf("defaults must not be mutated")
	}
}
