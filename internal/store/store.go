package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested document does not exist in the
// store. Callers use it to distinguish logical absence from a store failure.
var ErrNotFound = errors.New("document not found")

// Document is an opaque schemaless record. The store assigns "id",
// "createdAt" and "updatedAt" at write time and injects them into the
// document.
type Document map[string]any

// Query describes a filtered, ordered collection read. Filter entries must
// all match for a document to be included. Only ordering by creation time is
// supported.
type Query struct {
	Filter map[string]any
	Desc   bool
}

// Store is the remote document store collaborator: insert, point read,
// filtered/ordered query and partial update. There is no delete.
type Store interface {
	// Insert persists doc in collection, assigns an id and creation/update
	// timestamps, injects them into doc and returns the id.
	Insert(ctx context.Context, collection string, doc Document) (string, error)

	// Get returns the document with the given id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Query returns documents matching q ordered by creation time.
	Query(ctx context.Context, collection string, q Query) ([]Document, error)

	// Update merges patch into the stored document and bumps its update
	// timestamp. Returns ErrNotFound for a missing id.
	Update(ctx context.Context, collection, id string, patch Document) error
}

// Encode converts an entity into a Document via its JSON representation.
func Encode(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return doc, nil
}

// Decode converts a Document back into a typed entity.
func Decode(doc Document, v any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// matches reports whether doc satisfies every filter entry.
func matches(doc Document, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok {
			return false
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}
