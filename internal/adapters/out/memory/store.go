// Package memory provides the default order store: a process-local map of
// order snapshots behind a read-write mutex, with units of work that stage
// their writes and apply them all at once on Commit.
//
// Aggregates handed out by the repositories are rebuilt from snapshots, so a
// command that fails half way never leaks a partial change into the store.
package memory

import (
	"cmp"
	"slices"
	"sync"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// Store holds the committed orders. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]order.Snapshot
	seq    map[kernel.UUID]int
	next   int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders: make(map[kernel.UUID]order.Snapshot),
		seq:    make(map[kernel.UUID]int),
	}
}

// Len returns the number of committed orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// snapshots returns the committed records in insertion order.
func (s *Store) snapshots() []order.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]order.Snapshot, 0, len(s.orders))
	for _, snap := range s.orders {
		out = append(out, snap)
	}
	slices.SortFunc(out, func(a, b order.Snapshot) int {
		return cmp.Compare(s.seq[a.ID], s.seq[b.ID])
	})
	return out
}

// apply writes a committed change set. The caller holds no lock.
func (s *Store) apply(cs changeSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cs.cleared {
		s.orders = make(map[kernel.UUID]order.Snapshot)
		s.seq = make(map[kernel.UUID]int)
	}
	for _, id := range cs.order {
		snap := cs.writes[id]
		if _, ok := s.seq[id]; !ok {
			s.next++
			s.seq[id] = s.next
		}
		s.orders[id] = snap
	}
}
