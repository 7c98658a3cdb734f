package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/baaaaaaaka/dir-short/internal/bookmark"
	"github.com/baaaaaaaka/dir-short/internal/tui"
)

type harness struct {
	dir   string
	marks string
}

func newHarness(t *testing.T, contents string) *harness {
	t.Helper()
	dir := t.TempDir()
	h := &harness{dir: dir, marks: filepath.Join(dir, "bookmarks")}
	if contents != "" {
		if err := os.WriteFile(h.marks, []byte(contents), 0o600); err != nil {
			t.Fatalf("write bookmarks: %v", err)
		}
	}

	prevEnv := getEnviron
	getEnviron = func() []string {
		return []string{
			"HOME=" + dir,
			"DS_BOOKMARKS=" + h.marks,
			"DS_CONFIG=" + filepath.Join(dir, "missing.toml"),
		}
	}
	t.Cleanup(func() { getEnviron = prevEnv })
	return h
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func stubPicker(t *testing.T, fn func(context.Context, []bookmark.Bookmark, tui.Options) (string, error)) {
	t.Helper()
	prevPicker := runPicker
	prevTerm := isTerminal
	runPicker = fn
	isTerminal = func() bool { return true }
	t.Cleanup(func() {
		runPicker = prevPicker
		isTerminal = prevTerm
	})
}
