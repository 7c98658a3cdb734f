package bookmark

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mattn/go-runewidth"
)

const NullCommand = ":"

var shellEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "`", "\\`")

func CdCommand(path string) string {
	return fmt.Sprintf(`cd "%s";`, shellEscaper.Replace(path))
}

// PrintCommand wraps msg in a printf statement. Escape sequences already in
// msg (such as \t) are kept for printf to expand.
func PrintCommand(msg string) string {
	msg = strings.NewReplacer("$", `\$`, "`", "\\`", `"`, `\"`, "%", "%%").Replace(msg)
	return fmt.Sprintf(`printf "%s\n";`, msg)
}

func SavedMessage(b Bookmark) string {
	return PrintCommand("saved [" + escapeBackslash(b.Nickname) + "] " + escapeBackslash(b.Path))
}

func ListLines(bookmarks []Bookmark) []string {
	sorted := Sorted(bookmarks)
	out := make([]string, 0, len(sorted))
	for _, b := range sorted {
		tabs := `\t`
		if runewidth.StringWidth(b.Nickname) < 8 {
			tabs = `\t\t`
		}
		out = append(out, PrintCommand(escapeBackslash(b.Nickname)+tabs+escapeBackslash(b.Path)))
	}
	return out
}

// FindCommands resolves a one-shot filter to shell statements. On a miss the
// closest nickname, if any, is suggested before the no-op.
func FindCommands(bookmarks []Bookmark, query string) []string {
	if b, ok := First(bookmarks, query); ok {
		return []string{CdCommand(b.Path)}
	}
	if hint, ok := Suggest(bookmarks, query); ok {
		return []string{
			PrintCommand("no bookmark matches [" + escapeBackslash(query) + "], did you mean [" + escapeBackslash(hint) + "]?"),
			NullCommand,
		}
	}
	return []string{NullCommand}
}

func Suggest(bookmarks []Bookmark, query string) (string, bool) {
	needle := strings.Join(strings.Fields(query), "")
	if needle == "" {
		return "", false
	}
	var names []string
	for _, b := range Sorted(bookmarks) {
		if b.Nickname != "" {
			names = append(names, b.Nickname)
		}
	}
	ranks := fuzzy.RankFindFold(needle, names)
	if len(ranks) == 0 {
		return "", false
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance || (r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
			best = r
		}
	}
	return best.Target, true
}

func escapeBackslash(s string) string {
	return strings.ReplaceAll(s, `\`, `\\`)
}
