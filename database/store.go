package database

import (
	"context"
	"errors"
)

// ErrNotFound is returned by every DocumentStore when the addressed document does not exist.
var ErrNotFound = errors.New("document not found")

// Document is a single stored record. Data never contains the id.
type Document struct {
	ID   string
	Data map[string]any
}

// Filter is an equality condition on a top-level field.
type Filter struct {
	Field string
	Value any
}

// Query selects documents of one collection.
type Query struct {
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

// Where returns a copy of q with an extra equality filter.
func (q Query) Where(field string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})
	return q
}

// DocumentStore is the hosted document database as seen by the repositories.
type DocumentStore interface {
	// Get returns the document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// Put creates or fully replaces the document with the given id.
	Put(ctx context.Context, collection, id string, data map[string]any) error
	// Create writes the document only if id is unused and reports whether it did.
	// An existing document is left untouched.
	Create(ctx context.Context, collection, id string, data map[string]any) (bool, error)
	// Add inserts a new document and returns the id assigned by the store.
	Add(ctx context.Context, collection string, data map[string]any) (string, error)
	// Merge sets the given top-level fields on an existing document (ErrNotFound otherwise).
	Merge(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete removes the document (ErrNotFound if it does not exist).
	Delete(ctx context.Context, collection, id string) error
	// Increment atomically adds delta to the numeric field at path, server side.
	Increment(ctx context.Context, collection, id string, path []string, delta int64) error
	// Query returns the documents matching q.
	Query(ctx context.Context, collection string, q Query) ([]Document, error)
}

// IndexSpec describes a secondary index a repository relies on.
type IndexSpec struct {
	Collection string
	Name       string
	Fields     []string
	Descending bool
	Unique     bool
}

// Indexer is implemented by stores that manage their own indexes.
type Indexer interface {
	EnsureIndexes(ctx context.Context, specs []IndexSpec) error
}
