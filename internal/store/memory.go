package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memRecord is a stored document plus the bookkeeping needed for stable
// creation-time ordering.
type memRecord struct {
	doc       Document
	createdAt time.Time
	seq       int64
}

// MemStore is an in-memory Store used in development and tests. Documents
// go through a JSON round trip on write and read so their value types match
// what the database-backed store produces.
type MemStore struct {
	mu          sync.RWMutex
	seq         int64
	collections map[string]map[string]*memRecord
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string]map[string]*memRecord)}
}

// Insert implements Store.
func (s *MemStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	now := time.Now().UTC()
	doc["id"] = id
	doc["createdAt"] = now.Format(time.RFC3339Nano)
	doc["updatedAt"] = now.Format(time.RFC3339Nano)

	stored, err := Encode(doc)
	if err != nil {
		return "", err
	}

	col, ok := s.collections[collection]
	if !ok {
		col = make(map[string]*memRecord)
		s.collections[collection] = col
	}
	s.seq++
	col[id] = &memRecord{doc: stored, createdAt: now, seq: s.seq}
	return id, nil
}

// Get implements Store.
func (s *MemStore) Get(ctx context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDoc(rec.doc)
}

// Query implements Store.
func (s *MemStore) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []*memRecord
	for _, rec := range s.collections[collection] {
		if matches(rec.doc, q.Filter) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		less := a.createdAt.Before(b.createdAt) ||
			(a.createdAt.Equal(b.createdAt) && a.seq < b.seq)
		if q.Desc {
			return !less
		}
		return less
	})

	docs := make([]Document, 0, len(recs))
	for _, rec := range recs {
		doc, err := copyDoc(rec.doc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Update implements Store.
func (s *MemStore) Update(ctx context.Context, collection, id string, patch Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}

	merged, err := copyDoc(rec.doc)
	if err != nil {
		return err
	}
	for k, v := range patch {
		merged[k] = v
	}
	merged["updatedAt"] = time.Now().UTC().Format(time.RFC3339Nano)

	stored, err := Encode(merged)
	if err != nil {
		return err
	}
	rec.doc = stored
	return nil
}

func copyDoc(doc Document) (Document, error) {
	return Encode(doc)
}
