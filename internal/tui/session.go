package tui

import (
	"github.com/baaaaaaaka/dir-short/internal/bookmark"
)

// Session is the picker state machine. It is driven one Action at a time and
// never touches the terminal.
type Session struct {
	bookmarks []bookmark.Bookmark
	query     []byte
	selected  int
	filtered  []bookmark.Bookmark
	done      bool
	command   string
}

func NewSession(bookmarks []bookmark.Bookmark) *Session {
	s := &Session{bookmarks: bookmark.Sorted(bookmarks)}
	s.refilter()
	return s
}

// Apply performs one transition and reports whether the session finished.
func (s *Session) Apply(a Action) bool {
	if s.done {
		return true
	}

	switch a.Kind {
	case Confirm:
		s.finish(s.confirmCommand())
		return true
	case Cancel:
		s.finish(bookmark.NullCommand)
		return true
	case Backspace:
		s.selected = 0
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
		}
	case MoveUp:
		s.selected = max(s.selected-1, 0)
	case MoveDown:
		if n := len(s.filtered); n > 0 {
			s.selected = min(s.selected+1, n-1)
		}
	case CycleNext:
		if n := len(s.filtered); n > 0 {
			s.selected = (s.selected + 1) % n
		} else {
			s.selected = 0
		}
	case AppendChar:
		if _, ok := acceptChar(rune(a.Char)); ok {
			s.query = append(s.query, a.Char)
			s.selected = 0
		}
	case Ignore:
	}

	s.refilter()
	return false
}

func (s *Session) confirmCommand() string {
	b, ok := s.Selection()
	if !ok {
		return bookmark.NullCommand
	}
	return bookmark.CdCommand(b.Path)
}

func (s *Session) finish(command string) {
	s.done = true
	s.command = command
}

func (s *Session) refilter() {
	s.filtered = bookmark.Filter(s.bookmarks, string(s.query))
	if s.selected >= len(s.filtered) {
		s.selected = max(len(s.filtered)-1, 0)
	}
}

// Selection returns the highlighted bookmark, if the filtered list has one at
// the current index.
func (s *Session) Selection() (bookmark.Bookmark, bool) {
	if s.selected < 0 || s.selected >= len(s.filtered) {
		return bookmark.Bookmark{}, false
	}
	return s.filtered[s.selected], true
}

func (s *Session) Done() bool { return s.done }

// Command is the shell statement produced when the session finished.
func (s *Session) Command() string { return s.command }

func (s *Session) Query() string { return string(s.query) }

func (s *Session) Selected() int { return s.selected }

func (s *Session) VisibleCount() int { return len(s.filtered) }

func (s *Session) Filtered() []bookmark.Bookmark {
	return append([]bookmark.Bookmark(nil), s.filtered...)
}

func (s *Session) State() State {
	return State{Query: s.Query(), Selected: s.selected, Visible: len(s.filtered)}
}

func (s *Session) Frame(width, height int) Frame {
	return Render(s.filtered, s.State(), width, height)
}
