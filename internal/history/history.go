// Package history keeps the most recently generated values per document
// kind. Each kind lives in its own JSON file under history/.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zfake/internal/document"
)

const (
	historyDir = "history"

	// DefaultLimit is the number of entries kept per kind.
	DefaultLimit = 10
)

// ErrInvalidLimit is returned when a store is opened with a limit below 1.
var ErrInvalidLimit = errors.New("history limit must be positive")

// Entry is one generated value.
type Entry struct {
	Kind      document.Kind `json:"kind"`
	Value     string        `json:"value"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store manages history files on a filesystem.
type Store struct {
	mu    sync.Mutex
	fs    zfilesystem.ReadWriteFileFS
	limit int
	now   func() time.Time
}

// Open prepares the history directory on fsys.
func Open(fsys zfilesystem.ReadWriteFileFS, limit int) (*Store, error) {
	if limit < 1 {
		return nil, fmt.Errorf("open history: %d: %w", limit, ErrInvalidLimit)
	}

	if err := fsys.MkdirAll(historyDir, 0o700); err != nil {
		return nil, fmt.Errorf("open history: create dir: %w", err)
	}

	return &Store{fs: fsys, limit: limit, now: time.Now}, nil
}

// Add records value as the newest entry for kind, dropping the oldest
// entries beyond the limit.
func (s *Store) Add(kind document.Kind, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read(kind)
	if err != nil {
		return fmt.Errorf("add history: %w", err)
	}

	entries = append([]Entry{{Kind: kind, Value: value, CreatedAt: s.now()}}, entries...)
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}

	if err := s.write(kind, entries); err != nil {
		return fmt.Errorf("add history: %w", err)
	}
	return nil
}

// List returns entries for kind, newest first. A kind with no history
// returns an empty slice.
func (s *Store) List(kind document.Kind) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read(kind)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// Clear removes all history for kind. Clearing an empty kind is not an error.
func (s *Store) Clear(kind document.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(historyPath(kind)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear history: remove %s: %w", kind, err)
	}
	return nil
}

// Limit returns the per-kind entry cap.
func (s *Store) Limit() int {
	return s.limit
}

func (s *Store) read(kind document.Kind) ([]Entry, error) {
	data, err := s.fs.ReadFile(historyPath(kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", kind, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", kind, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (s *Store) write(kind document.Kind, entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", kind, err)
	}

	if err := s.fs.WriteFile(historyPath(kind), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	return nil
}

func historyPath(kind document.Kind) string {
	return historyDir + "/" + kind.String() + ".json"
}
