package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

type ActionKind int

const (
	Ignore ActionKind = iota
	Confirm
	Cancel
	Backspace
	MoveUp
	MoveDown
	CycleNext
	AppendChar
)

var actionNames = map[ActionKind]string{
	Ignore:     "ignore",
	Confirm:    "confirm",
	Cancel:     "cancel",
	Backspace:  "backspace",
	MoveUp:     "up",
	MoveDown:   "down",
	CycleNext:  "cycle",
	AppendChar: "append",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "unknown"
}

type Action struct {
	Kind ActionKind
	Char byte
}

// PasteEvent bundles the key events delivered between a bracketed paste's
// start and end markers.
type PasteEvent struct {
	when   time.Time
	Events []*tcell.EventKey
}

func NewPasteEvent(events ...*tcell.EventKey) *PasteEvent {
	return &PasteEvent{when: time.Now(), Events: events}
}

func (e *PasteEvent) When() time.Time { return e.when }

// Decode maps a terminal event to an Action. A paste only contributes its
// first key.
func Decode(ev tcell.Event) Action {
	switch tev := ev.(type) {
	case *PasteEvent:
		if len(tev.Events) == 0 {
			return Action{Kind: Ignore}
		}
		return decodeKey(tev.Events[0])
	case *tcell.EventKey:
		return decodeKey(tev)
	}
	return Action{Kind: Ignore}
}

func decodeKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyCtrlJ:
		return Action{Kind: Confirm}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: Cancel}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Action{Kind: Backspace}
	case tcell.KeyUp:
		return Action{Kind: MoveUp}
	case tcell.KeyDown:
		return Action{Kind: MoveDown}
	case tcell.KeyTab:
		return Action{Kind: CycleNext}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return Action{Kind: Ignore}
		}
		if ch, ok := acceptChar(ev.Rune()); ok {
			return Action{Kind: AppendChar, Char: ch}
		}
	}
	return Action{Kind: Ignore}
}

func acceptChar(r rune) (byte, bool) {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return byte(r), true
	case r == '-', r == '_', r == ' ':
		return byte(r), true
	}
	return 0, false
}

// pasteCollector turns tcell's bracketed paste markers into one PasteEvent.
type pasteCollector struct {
	active bool
	keys   []*tcell.EventKey
}

// Feed returns the event to decode, or false while a paste is still open.
func (p *pasteCollector) Feed(ev tcell.Event) (tcell.Event, bool) {
	switch tev := ev.(type) {
	case *tcell.EventPaste:
		if tev.Start() {
			p.active = true
			p.keys = nil
			return nil, false
		}
		if !p.active {
			return nil, false
		}
		p.active = false
		keys := p.keys
		p.keys = nil
		return NewPasteEvent(keys...), true
	case *tcell.EventKey:
		if p.active {
			p.keys = append(p.keys, tev)
			return nil, false
		}
	}
	return ev, true
}
