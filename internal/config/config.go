package config

import (
	"errors"

	"github.com/baaaaaaaka/dir-short/internal/env"
)

var errNoBookmarkFile = errors.New("cannot locate bookmark file: set DS_BOOKMARKS or HOME")

// Overrides carries command-line values. Empty strings and a nil Trace mean
// "not given".
type Overrides struct {
	ConfigPath    string
	BookmarksFile string
	LogFile       string
	Trace         *bool
}

type Config struct {
	ConfigPath    string
	BookmarksFile string
	LogFile       string
	Trace         bool
	Theme         Theme
}

// Resolve layers flags over environment over the config file.
func Resolve(o Overrides, vars env.Vars) (Config, error) {
	cfgPath := env.FirstNonEmpty(o.ConfigPath, vars.Get(env.Config))
	settings, err := Load(cfgPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ConfigPath:    cfgPath,
		BookmarksFile: env.FirstNonEmpty(o.BookmarksFile, vars.Get(env.Bookmarks), settings.BookmarksFile, vars.BookmarkFile()),
		LogFile:       env.FirstNonEmpty(o.LogFile, vars.Get(env.LogFile), settings.LogFile),
		Trace:         settings.Trace,
		Theme:         settings.Theme,
	}
	if b, ok := vars.Bool(env.Trace); ok {
		cfg.Trace = b
	}
	if o.Trace != nil {
		cfg.Trace = *o.Trace
	}
	if cfg.BookmarksFile == "" {
		return Config{}, errNoBookmarkFile
	}
	return cfg, nil
}
