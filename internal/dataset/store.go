package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"basketlens/internal/basket"
)

// topItemCount is how many items the frequency chart shows.
const topItemCount = 10

var ErrNotLoaded = errors.New("dataset not loaded")

// Snapshot is one immutable load of the dataset.
type Snapshot struct {
	Path     string
	ModTime  time.Time
	LoadedAt time.Time
	Table    *Table
	Encoding *basket.Encoding
	Summary  Summary
}

// Store holds the current snapshot. Reloads swap the pointer; readers never
// block and keep using the snapshot they fetched.
type Store struct {
	path    string
	current atomic.Pointer[Snapshot]

	// failedMod is the UnixNano mod time of the last file that failed to load.
	failedMod atomic.Int64
}

// NewStore creates an empty store for the dataset at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the dataset file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and encodes the dataset file, replacing the current snapshot.
func (s *Store) Load() (*Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat dataset: %w", err)
	}

	snap, err := readSnapshot(f)
	if err != nil {
		s.failedMod.Store(info.ModTime().UnixNano())
		return nil, err
	}
	snap.Path = s.path
	snap.ModTime = info.ModTime()

	s.failedMod.Store(0)
	s.current.Store(snap)
	return snap, nil
}

func readSnapshot(r io.Reader) (*Snapshot, error) {
	table, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(table)
}

// Set installs a snapshot directly.
func (s *Store) Set(snap *Snapshot) {
	s.current.Store(snap)
}

// Current returns the active snapshot or ErrNotLoaded.
func (s *Store) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// Changed reports whether the file on disk differs from the loaded snapshot.
// A file that already failed to load is not reported again until it changes.
func (s *Store) Changed() (bool, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return false, err
	}
	if failed := s.failedMod.Load(); failed != 0 && info.ModTime().UnixNano() == failed {
		return false, nil
	}
	snap := s.current.Load()
	if snap == nil {
		return true, nil
	}
	return !info.ModTime().Equal(snap.ModTime), nil
}

// NewSnapshot encodes a table into a snapshot.
func NewSnapshot(table *Table) (*Snapshot, error) {
	txs, err := table.Transactions()
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		LoadedAt: time.Now(),
		Table:    table,
		Encoding: basket.Encode(txs),
		Summary:  Summarize(table, topItemCount),
	}, nil
}
