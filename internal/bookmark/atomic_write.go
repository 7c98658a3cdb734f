package bookmark

import (
	"fmt"
	"os"
	"path/filepath"
)

// atomicWriteFile writes data next to path and swaps it into place. An
// existing file keeps its permission bits.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := writeTempFile(filepath.Dir(path), filepath.Base(path), data, perm)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp) }()

	if err := replaceFile(tmp, path); err != nil {
		return fmt.Errorf("replace bookmark file: %w", err)
	}
	return nil
}

func writeTempFile(dir, base string, data []byte, perm os.FileMode) (string, error) {
	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()

	fail := func(step string, err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("%s temp file: %w", step, err)
	}
	if err := f.Chmod(perm); err != nil {
		return fail("chmod", err)
	}
	if _, err := f.Write(data); err != nil {
		return fail("write", err)
	}
	if err := f.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp, nil
}
