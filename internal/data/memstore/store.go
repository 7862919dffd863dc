// Package memstore is the in-memory fallback document store. It backs
// the same repository interfaces as the live store so the API behaves
// identically when the database is unreachable. Data lives only for
// the process lifetime.
package memstore

import (
	"sync"
)

type collection struct {
	records map[string]any
	order   []string // insertion order, newest last
}

// Store keeps records per collection name, keyed by record id. All
// access goes through the mutex; callers must store and return copies,
// never aliases into the store.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
	counters    map[string]int64
}

func New() *Store {
	return &Store{
		collections: make(map[string]*collection),
		counters:    make(map[string]int64),
	}
}

func (s *Store) coll(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{records: make(map[string]any)}
		s.collections[name] = c
	}
	return c
}

// Insert adds a record under the given id, replacing any previous one
func (s *Store) Insert(collName, id string, rec any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.coll(collName)
	if _, exists := c.records[id]; !exists {
		c.order = append(c.order, id)
	}
	c.records[id] = rec
}

// Get returns the record stored under id
func (s *Store) Get(collName, id string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collName]
	if !ok {
		return nil, false
	}
	rec, ok := c.records[id]
	return rec, ok
}

// List returns all records of a collection in insertion order
func (s *Store) List(collName string) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collName]
	if !ok {
		return nil
	}

	out := make([]any, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id])
	}
	return out
}

// Update replaces an existing record; false when the id is unknown
func (s *Store) Update(collName, id string, rec any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collName]
	if !ok {
		return false
	}
	if _, exists := c.records[id]; !exists {
		return false
	}
	c.records[id] = rec
	return true
}

// Delete removes a record; false when the id is unknown
func (s *Store) Delete(collName, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collName]
	if !ok {
		return false
	}
	if _, exists := c.records[id]; !exists {
		return false
	}

	delete(c.records, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// NextSeq advances the per-kind counter and returns the new value
func (s *Store) NextSeq(kind string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[kind]++
	return s.counters[kind]
}
