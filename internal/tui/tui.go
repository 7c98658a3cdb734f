package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/dir-short/internal/bookmark"
	"github.com/baaaaaaaka/dir-short/internal/config"
	"github.com/baaaaaaaka/dir-short/internal/logging"
)

var errTerminalClosed = errors.New("terminal closed before a selection was made")

var newScreen = tcell.NewScreen

type Options struct {
	Theme config.Theme
}

type interruptEvent struct {
	when time.Time
}

func (e *interruptEvent) When() time.Time { return e.when }

// Run shows the picker until the user confirms or cancels and returns the
// resulting shell command. The terminal is restored on every return path.
func Run(ctx context.Context, bookmarks []bookmark.Bookmark, opts Options) (string, error) {
	screen, err := newScreen()
	if err != nil {
		return "", fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return "", fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	screen.EnablePaste()
	screen.HideCursor()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = screen.PostEvent(&interruptEvent{when: time.Now()})
		case <-done:
		}
	}()

	session := NewSession(bookmarks)
	colors := newPalette(opts.Theme)
	logging.Trace("session.start", map[string]int{"bookmarks": len(bookmarks)})

	var paste pasteCollector
	for {
		draw(screen, session, colors)

		ev := screen.PollEvent()
		if ev == nil {
			return "", errTerminalClosed
		}
		switch ev.(type) {
		case *interruptEvent:
			logging.Trace("session.interrupted", nil)
			return "", ctx.Err()
		case *tcell.EventResize:
			screen.Sync()
			continue
		}

		ev, ok := paste.Feed(ev)
		if !ok {
			continue
		}
		action := Decode(ev)
		if action.Kind == Ignore {
			continue
		}
		finished := session.Apply(action)
		char := ""
		if action.Kind == AppendChar {
			char = string(rune(action.Char))
		}
		logging.Trace("session.action", actionTrace{
			Action:   action.Kind.String(),
			Char:     char,
			Query:    session.Query(),
			Selected: session.Selected(),
			Visible:  session.VisibleCount(),
		})
		if finished {
			logging.Trace("session.done", map[string]string{"command": session.Command()})
			return session.Command(), nil
		}
	}
}

type actionTrace struct {
	Action   string `json:"action"`
	Char     string `json:"char,omitempty"`
	Query    string `json:"query"`
	Selected int    `json:"selected"`
	Visible  int    `json:"visible"`
}

func draw(screen tcell.Screen, session *Session, colors palette) {
	w, h := screen.Size()
	frame := session.Frame(w, h)
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.Cell(x, y)
			if c.Rune == 0 {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, colors.style(c.Role))
		}
	}
	screen.Show()
}
