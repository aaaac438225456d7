package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// Validator is implemented by every record type a Collection can hold.
type Validator interface {
	Validate() error
}

// Collection is a typed JSON-file collection: one file holding an
// ordered array of T.  Read tolerates a missing file (fresh site
// bootstrap); Write validates every record first, backs up the previous
// file into the history directory, then writes atomically and prunes
// old backups.
//
// A Collection serializes its own writers with an in-process mutex and
// an advisory file lock next to the collection file, so a second
// process (e.g. a diagnostic CLI) cannot interleave with the write
// sequence.  Two writes racing from separate sessions still resolve as
// last-writer-wins at the record level; the loser survives as a backup.
type Collection[T Validator] struct {
	path       string
	historyDir string
	maxBackups int

	mu   sync.Mutex
	lock *flock.Flock
}

// NewCollection returns a collection stored at path with backups kept
// under historyDir, at most maxBackups per collection base name.
func NewCollection[T Validator](path, historyDir string, maxBackups int) *Collection[T] {
	return &Collection[T]{
		path:       path,
		historyDir: historyDir,
		maxBackups: maxBackups,
		lock:       flock.New(path + ".lock"),
	}
}

// Path returns the collection's file path.
func (c *Collection[T]) Path() string { return c.path }

// Read loads and validates the whole collection.  A missing file is not
// an error: it yields an empty collection so a fresh deployment works
// before any content exists.  Parse and schema failures propagate; the
// caller never sees a silently truncated dataset.
func (c *Collection[T]) Read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrValidation, filepath.Base(c.path), err)
	}
	if err := c.validateAll(records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Write replaces the collection's contents.  The full proposed
// collection is validated before anything touches disk, so a write is
// all-or-nothing.  The on-disk sequence is: ensure target dir, take
// the write lock, backup previous file, write a uniquely named temp
// file, rename over the target, prune backups.  Readers never observe
// a partial file because the rename is atomic.
func (c *Collection[T]) Write(records []T) ([]T, error) {
	if err := c.validateAll(records); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// The dir must exist before the lock file can be created inside it;
	// on a fresh deployment the first write bootstraps the content root.
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure content dir: %w", err)
	}
	if err := c.lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", c.path, err)
	}
	defer c.lock.Unlock()

	if err := c.backup(); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", filepath.Base(c.path), err)
	}
	data = append(data, '\n')

	tmp := c.path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("replace %s: %w", c.path, err)
	}

	if err := c.prune(); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Collection[T]) validateAll(records []T) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%w: %s record %d: %v", ErrValidation, c.base(), i, err)
		}
	}
	return nil
}

// base returns the collection's file name without the .json extension,
// e.g. "shows".  Backup files for this collection all share the
// "<base>-" prefix.
func (c *Collection[T]) base() string {
	return strings.TrimSuffix(filepath.Base(c.path), ".json")
}

// backupName builds "<base>-<timestamp>.json" with colons and dots in
// the ISO timestamp replaced by dashes, which keeps lexicographic order
// equal to chronological order.
func (c *Collection[T]) backupName(now time.Time) string {
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return c.base() + "-" + ts + ".json"
}

// backup copies the current collection file into the history directory.
// A missing source file means there is nothing to back up yet, which is
// not an error.
func (c *Collection[T]) backup() error {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read for backup: %w", err)
	}
	if err := os.MkdirAll(c.historyDir, 0o755); err != nil {
		return fmt.Errorf("ensure history dir: %w", err)
	}
	dst := filepath.Join(c.historyDir, c.backupName(time.Now()))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// prune deletes the oldest backups for this collection's base name
// until at most maxBackups remain.
func (c *Collection[T]) prune() error {
	entries, err := os.ReadDir(c.historyDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("list history dir: %w", err)
	}
	prefix := c.base() + "-"
	var matches []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			matches = append(matches, e.Name())
		}
	}
	if len(matches) <= c.maxBackups {
		return nil
	}
	sort.Strings(matches)
	for _, name := range matches[:len(matches)-c.maxBackups] {
		if err := os.Remove(filepath.Join(c.historyDir, name)); err != nil {
			return fmt.Errorf("prune backup %s: %w", name, err)
		}
	}
	return nil
}
