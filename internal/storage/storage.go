// Package storage persists approved refinement sessions to disk, one text
// file per session.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// StorageError indicates a failure to persist or read a session record
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Record is one approved (original, optimized) prompt pair
type Record struct {
	Original  string
	Optimized string
	Timestamp time.Time
}

// Store writes session records to a directory. The on-disk layout is a
// compatibility surface: external tooling parses saved sessions.
type Store struct {
	dir string
}

// NewStore creates the storage directory if it does not already exist
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StorageError{Err: fmt.Errorf("failed to create storage directory: %w", err)}
	}
	return &Store{dir: dir}, nil
}

// Save writes one session file named YYYY-MM-DD-HHMMSS-session.txt and
// returns its path
func (s *Store) Save(rec Record) (string, error) {
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	filename := ts.Format("2006-01-02-150405") + "-session.txt"
	path := filepath.Join(s.dir, filename)

	lines := []string{
		"========================================",
		"PromptPolish Session",
		"Date: " + ts.Format("2006-01-02 15:04:05"),
		"========================================",
		"",
		"ORIGINAL PROMPT:",
		rec.Original,
		"",
		"OPTIMIZED PROMPT:",
		rec.Optimized,
		"========================================",
		"",
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return "", &StorageError{Err: fmt.Errorf("failed to write file: %w", err)}
	}
	return path, nil
}

// List returns the paths of saved session files, newest first
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &StorageError{Err: fmt.Errorf("failed to read storage directory: %w", err)}
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "-session.txt") {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, entry.Name()))
	}
	// Filenames start with the timestamp, so lexical order is chronological
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths, nil
}
