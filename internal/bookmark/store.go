package bookmark

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

const Delimiter = ':'

// Store reads and writes the flat bookmark file. Each record is
// "nickname:path" with CSV-style quoting when a field needs it.
type Store struct {
	mu   sync.Mutex
	path string
	lock *flock.Flock
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("bookmark file path is required")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create bookmark dir: %w", err)
	}
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Load() ([]Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock bookmarks: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	return s.loadUnlocked()
}

func (s *Store) Save(bookmarks []Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock bookmarks: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	return s.saveUnlocked(bookmarks)
}

func (s *Store) Update(fn func([]Bookmark) ([]Bookmark, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock bookmarks: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	bookmarks, err := s.loadUnlocked()
	if err != nil {
		return err
	}
	updated, err := fn(bookmarks)
	if err != nil {
		return err
	}
	return s.saveUnlocked(updated)
}

// Add records b unless the same (nickname, path) pair is already stored.
func (s *Store) Add(b Bookmark) (bool, error) {
	added := false
	err := s.Update(func(bookmarks []Bookmark) ([]Bookmark, error) {
		if Contains(bookmarks, b) {
			return bookmarks, nil
		}
		added = true
		return append(bookmarks, b), nil
	})
	return added, err
}

func (s *Store) loadUnlocked() ([]Bookmark, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}
	defer f.Close()

	bookmarks, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (s *Store) saveUnlocked(bookmarks []Bookmark) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create bookmark dir: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, bookmarks); err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := atomicWriteFile(s.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("atomic write bookmarks: %w", err)
	}
	return nil
}

// Decode parses bookmark records. Records with fewer than two fields are
// skipped and duplicates are dropped.
func Decode(r io.Reader) ([]Bookmark, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var out []Bookmark
	seen := map[Bookmark]bool{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			continue
		}
		b := Bookmark{Nickname: rec[0], Path: rec[1]}
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return out, nil
}

func Encode(w io.Writer, bookmarks []Bookmark) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	for _, b := range Sorted(bookmarks) {
		if err := cw.Write([]string{b.Nickname, b.Path}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
