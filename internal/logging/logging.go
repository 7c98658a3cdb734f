// Package logging appends JSON trace lines to a file. The picker owns the
// terminal while it runs, so nothing is written to stdout or stderr.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	enabled bool
	logPath string
)

func Configure(path string, trace bool) error {
	mu.Lock()
	defer mu.Unlock()

	path = strings.TrimSpace(path)
	if trace && path == "" {
		path = filepath.Join(os.TempDir(), "ds-trace.log")
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	logPath = path
	enabled = trace && path != ""
	return nil
}

func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Trace appends one entry when tracing is enabled.
func Trace(event string, payload any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	write(logPath, event, payload)
}

// Error records err whenever a log file is configured, traced or not.
func Error(event string, err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if logPath == "" {
		return
	}
	write(logPath, event, map[string]string{"error": err.Error()})
}

func write(path, event string, payload any) {
	entry := struct {
		Time    time.Time `json:"time"`
		Event   string    `json:"event"`
		Payload any       `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	_ = json.NewEncoder(f).Encode(entry)
}
