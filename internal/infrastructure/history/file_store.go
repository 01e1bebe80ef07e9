package history

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/obsidian-os/obsidian-shell/internal/pkg/filesystem"
	"github.com/obsidian-os/obsidian-shell/internal/ports"
)

// FileStore keeps the issued-command log as plain newline-delimited text,
// one raw command per line, append-only. Entries are never rewritten or
// deleted. A command containing an embedded newline corrupts the format;
// that is a documented limitation of the log.
type FileStore struct {
	path    string
	mu      sync.Mutex
	entries []string
}

// NewFileStore creates a store backed by path ("~" is expanded).
func NewFileStore(path string) *FileStore {
	return &FileStore{path: filesystem.ExpandPath(path)}
}

// Load reads the persisted log into memory, replacing any prior in-memory
// entries. An absent file is not an error; history starts empty.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer file.Close()

	s.entries = s.entries[:0]
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		s.entries = append(s.entries, scanner.Text())
	}
	return scanner.Err()
}

// Add records entry in memory and appends one line to the log file. The
// in-memory record is kept even when the write fails; callers may ignore the
// returned error (persistence is best-effort). The file is opened and closed
// per call, no handle is held across calls.
func (s *FileStore) Add(entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = fmt.Fprintln(file, entry)
	return err
}

// Recent returns the last min(n, Len) entries in issuance order, oldest of
// the window first. It never fails; an empty history yields no entries.
func (s *FileStore) Recent(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || len(s.entries) == 0 {
		return nil
	}
	start := 0
	if len(s.entries) > n {
		start = len(s.entries) - n
	}
	out := make([]string, len(s.entries)-start)
	copy(out, s.entries[start:])
	return out
}

// Len reports the number of in-memory entries.
func (s *FileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

var _ ports.HistoryStore = (*FileStore)(nil)
