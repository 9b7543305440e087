// Package memstore is an in-process database.DocumentStore used for local runs and tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bookingsite/database"

	"github.com/google/uuid"
)

// Store keeps collections in memory. All operations take one lock, which makes
// Increment atomic in the same sense as the hosted stores.
type Store struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]any
}

func New() *Store {
	return &Store{collections: map[string]map[string]map[string]any{}}
}

func (s *Store) collection(name string) map[string]map[string]any {
	c, ok := s.collections[name]
	if !ok {
		c = map[string]map[string]any{}
		s.collections[name] = c
	}
	return c
}

func (s *Store) Get(ctx context.Context, collection, id string) (*database.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collection(collection)[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &database.Document{ID: id, Data: copyMap(data)}, nil
}

func (s *Store) Put(ctx context.Context, collection, id string, data map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collection(collection)[id] = copyMap(data)
	return nil
}

func (s *Store) Create(ctx context.Context, collection, id string, data map[string]any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	if _, ok := c[id]; ok {
		return false, nil
	}
	c[id] = copyMap(data)
	return true, nil
}

func (s *Store) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.collection(collection)[id] = copyMap(data)
	return id, nil
}

func (s *Store) Merge(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collection(collection)[id]
	if !ok {
		return database.ErrNotFound
	}
	for k, v := range fields {
		data[k] = copyValue(v)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	if _, ok := c[id]; !ok {
		return database.ErrNotFound
	}
	delete(c, id)
	return nil
}

// Increment creates missing intermediate maps and treats a missing leaf as zero.
func (s *Store) Increment(ctx context.Context, collection, id string, path []string, delta int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("empty increment path")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.collection(collection)[id]
	if !ok {
		return database.ErrNotFound
	}
	for _, key := range path[:len(path)-1] {
		next, ok := node[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			node[key] = next
		}
		node = next
	}
	leaf := path[len(path)-1]
	current, ok := toInt64(node[leaf])
	if !ok && node[leaf] != nil {
		return fmt.Errorf("field %v is not numeric", path)
	}
	node[leaf] = current + delta
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, q database.Query) ([]database.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	var docs []database.Document
	for id, data := range s.collection(collection) {
		if matches(data, q.Filters) {
			docs = append(docs, database.Document{ID: id, Data: copyMap(data)})
		}
	}
	s.mu.Unlock()

	if q.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			c := compare(docs[i].Data[q.OrderBy], docs[j].Data[q.OrderBy])
			if q.Descending {
				return c > 0
			}
			return c < 0
		})
	} else {
		sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	}
	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func matches(data map[string]any, filters []database.Filter) bool {
	for _, f := range filters {
		v, ok := data[f.Field]
		if !ok || compare(v, f.Value) != 0 {
			return false
		}
	}
	return true
}

// compare orders numbers, strings and times; unrelated types compare by their printed form.
func compare(a, b any) int {
	if x, ok := toInt64(a); ok {
		if y, ok := toInt64(b); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	}
	if x, ok := a.(time.Time); ok {
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}
	if x, ok := a.(float64); ok {
		if y, ok := b.(float64); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	}
	x, y := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = copyValue(inner)
		}
		return out
	case int:
		return int64(val)
	case int32:
		return int64(val)
	default:
		return v
	}
}
