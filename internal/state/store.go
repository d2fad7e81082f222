package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/ajgould/bookdeck/internal/catalog"
)

// Snapshot represents the latest catalog data available to the UI.
type Snapshot struct {
	Books       []catalog.Book
	Categories  []string
	LastUpdated time.Time
	LastError   error
}

// Store coordinates concurrent updates to the snapshot and sequences list
// fetches so that stale responses never overwrite newer ones.
type Store struct {
	mu       sync.Mutex
	snapshot Snapshot
	issued   uint64
	applied  uint64
}

// Begin registers a new list fetch and returns its sequence number.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Apply records the outcome of the fetch with the given sequence number. It
// reports whether the result was applied; responses older than the latest
// issued request are discarded outright. When err is non-nil the previous
// book list is kept and only the error is recorded.
func (s *Store) Apply(seq uint64, books []catalog.Book, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.issued || seq <= s.applied {
		return false
	}
	s.applied = seq
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		return true
	}

	s.snapshot.Books = cloneBooks(books)
	s.snapshot.Categories = catalog.Categories(books)
	s.snapshot.LastError = nil
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot
	snap.Books = cloneBooks(s.snapshot.Books)
	snap.Categories = append([]string(nil), s.snapshot.Categories...)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneBooks(books []catalog.Book) []catalog.Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]catalog.Book, len(books))
	copy(dup, books)
	return dup
}
