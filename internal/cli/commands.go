package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/baaaaaaaka/dir-short/internal/bookmark"
	"github.com/baaaaaaaka/dir-short/internal/logging"
	"github.com/baaaaaaaka/dir-short/internal/tui"
)

var errNotTerminal = errors.New("interactive mode needs a terminal on stdin")

var (
	runPicker  = tui.Run
	getwd      = os.Getwd
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

func runList(cmd *cobra.Command, env runEnv) error {
	bookmarks, err := env.bookmarks()
	if err != nil {
		return err
	}
	return emit(cmd, bookmark.ListLines(bookmarks)...)
}

func runSave(cmd *cobra.Command, env runEnv, nickname string) error {
	cwd, err := getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	b := bookmark.New(nickname, cwd)

	added, err := env.store.Add(b)
	if err != nil {
		logging.Error("store.save", err)
		return err
	}
	logging.Trace("store.save", map[string]any{"nickname": b.Nickname, "path": b.Path, "added": added})
	return emit(cmd, bookmark.SavedMessage(b))
}

func runFind(cmd *cobra.Command, env runEnv, args []string) error {
	bookmarks, err := env.bookmarks()
	if err != nil {
		return err
	}
	return emit(cmd, bookmark.FindCommands(bookmarks, strings.Join(args, " "))...)
}

func runInteractive(cmd *cobra.Command, env runEnv) error {
	if !isTerminal() {
		return errNotTerminal
	}
	bookmarks, err := env.bookmarks()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command, err := runPicker(ctx, bookmarks, tui.Options{Theme: env.cfg.Theme})
	if err != nil {
		logging.Error("session.error", err)
		return err
	}
	return emit(cmd, command)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func emit(cmd *cobra.Command, lines ...string) error {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
