package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps records in a mutex-guarded map. It is the default
// backend and the one used by tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Put stores a record.
func (s *MemoryStore) Put(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	return nil
}

// Get returns a record by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return Record{}, notFound(id)
	}
	return rec, nil
}

// List returns all records, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes a record by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return notFound(id)
	}
	delete(s.records, id)
	return nil
}

// Close does nothing for the in-memory backend.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
