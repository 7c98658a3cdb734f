package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/dir-short/internal/bookmark"
	"github.com/baaaaaaaka/dir-short/internal/config"
	"github.com/baaaaaaaka/dir-short/internal/env"
	"github.com/baaaaaaaka/dir-short/internal/logging"
)

var (
	errListArgs = errors.New("--list takes no filter")
	errSaveArgs = errors.New("--save takes at most one nickname")
)

var getEnviron = os.Environ

// runEnv is what every command needs after flags, environment and the
// config file have been layered.
type runEnv struct {
	cfg   config.Config
	store *bookmark.Store
}

func loadEnv(cmd *cobra.Command, opts *rootOptions) (runEnv, error) {
	overrides := config.Overrides{
		ConfigPath:    opts.configPath,
		BookmarksFile: opts.bookmarkFile,
		LogFile:       opts.logFile,
	}
	if cmd.Flags().Changed("trace") {
		trace := opts.trace
		overrides.Trace = &trace
	}

	cfg, err := config.Resolve(overrides, env.Parse(getEnviron()))
	if err != nil {
		return runEnv{}, err
	}
	if err := logging.Configure(cfg.LogFile, cfg.Trace); err != nil {
		return runEnv{}, err
	}

	store, err := bookmark.NewStore(cfg.BookmarksFile)
	if err != nil {
		return runEnv{}, err
	}
	return runEnv{cfg: cfg, store: store}, nil
}

func (e runEnv) bookmarks() ([]bookmark.Bookmark, error) {
	bookmarks, err := e.store.Load()
	if err != nil {
		logging.Error("store.load", err)
		return nil, err
	}
	logging.Trace("store.load", map[string]any{"path": e.store.Path(), "count": len(bookmarks)})
	return bookmark.Sorted(bookmarks), nil
}
