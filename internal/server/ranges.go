package server

import (
	"fmt"
	"sync"

	"github.com/mj1618/a11ytree/internal/a11y"
)

// RangeStore holds client text ranges addressed by handle strings such as
// "r7". Ranges stay in the store across rebuilds and fail with a stale
// error when used after their nodes disappear.
type RangeStore struct {
	mu     sync.Mutex
	next   int
	ranges map[string]*a11y.TextRange
	limit  int
}

// NewRangeStore creates a store holding at most limit ranges. A limit of 0
// means unbounded.
func NewRangeStore(limit int) *RangeStore {
	return &RangeStore{ranges: make(map[string]*a11y.TextRange), limit: limit}
}

// Put stores r and returns its handle.
func (s *RangeStore) Put(r *a11y.TextRange) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.limit > 0 && len(s.ranges) >= s.limit {
		return "", fmt.Errorf("too many open ranges (%d); release some with range_release", s.limit)
	}
	s.next++
	h := fmt.Sprintf("r%d", s.next)
	s.ranges[h] = r
	return h, nil
}

// Get returns the range for handle.
func (s *RangeStore) Get(handle string) (*a11y.TextRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.ranges[handle]
	if !ok {
		return nil, fmt.Errorf("unknown range handle %q", handle)
	}
	return r, nil
}

// Release drops handle. It reports whether the handle existed.
func (s *RangeStore) Release(handle string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ranges[handle]
	delete(s.ranges, handle)
	return ok
}

// Len returns the number of open ranges.
func (s *RangeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ranges)
}

// ReleaseAll clears the store.
func (s *RangeStore) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranges = make(map[string]*a11y.TextRange)
}
