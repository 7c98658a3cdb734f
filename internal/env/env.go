package env

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	Bookmarks = "DS_BOOKMARKS"
	Config    = "DS_CONFIG"
	Trace     = "DS_TRACE"
	LogFile   = "DS_LOG_FILE"
	Home      = "HOME"

	DefaultBookmarkFile = ".dir-short.bookmarks"
)

type Vars map[string]string

func Parse(environ []string) Vars {
	return toMap(environ)
}

func (v Vars) Get(key string) string {
	return strings.TrimSpace(v[key])
}

func (v Vars) Bool(key string) (bool, bool) {
	raw := v.Get(key)
	if raw == "" {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return b, true
}

// BookmarkFile resolves the bookmark file from DS_BOOKMARKS, then
// $HOME/.dir-short.bookmarks. It returns "" when neither is set.
func (v Vars) BookmarkFile() string {
	if p := v.Get(Bookmarks); p != "" {
		return p
	}
	if home := v.Get(Home); home != "" {
		return filepath.Join(home, DefaultBookmarkFile)
	}
	return ""
}

// FirstNonEmpty returns the first value that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func toMap(env []string) Vars {
	out := make(Vars, len(env))
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}
