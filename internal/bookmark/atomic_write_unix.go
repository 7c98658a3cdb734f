//go:build !windows

package bookmark

import "os"

func replaceFile(from, to string) error {
	return os.Rename(from, to)
}
