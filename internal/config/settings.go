package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the optional user config file. Every field may be left out.
type Settings struct {
	BookmarksFile string `toml:"bookmarks_file"`
	LogFile       string `toml:"log_file"`
	Trace         bool   `toml:"trace"`
	Theme         Theme  `toml:"theme"`
}

// Theme holds tcell color names; empty values keep the built-in palette.
type Theme struct {
	Background          string `toml:"background"`
	Foreground          string `toml:"foreground"`
	Command             string `toml:"command"`
	Highlight           string `toml:"highlight"`
	HighlightBackground string `toml:"highlight_background"`
}

func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(base, "ds", "config.toml"), nil
}

// Load reads settings from path. A missing file yields zero settings.
func Load(path string) (Settings, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Settings{}, nil
		}
		path = p
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("read config: %w", err)
	}

	var s Settings
	if err := toml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	s.BookmarksFile = expandHome(s.BookmarksFile)
	s.LogFile = expandHome(s.LogFile)
	return s, nil
}

func expandHome(p string) string {
	if p != "~" && !hasHomePrefix(p) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}

func hasHomePrefix(p string) bool {
	return len(p) >= 2 && p[0] == '~' && (p[1] == '/' || p[1] == filepath.Separator)
}
