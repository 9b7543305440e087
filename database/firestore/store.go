// File: database/firestore/store.go
package firestore

import (
	"context"
	"fmt"
	"time"

	"bookingsite/database"

	gcfirestore "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const opTimeout = 5 * time.Second

// Store implements database.DocumentStore on Cloud Firestore.
type Store struct {
	client *gcfirestore.Client
}

// New wraps a Firestore client, usually obtained from firebase.App.Firestore.
func New(client *gcfirestore.Client) *Store {
	return &Store{client: client}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func (s *Store) Get(ctx context.Context, collection, id string) (*database.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s/%s: %w", collection, id, err)
	}
	return &database.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *Store) Put(ctx context.Context, collection, id string, data map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) Create(ctx context.Context, collection, id string, data map[string]any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.client.Collection(collection).Doc(id).Create(ctx, data)
	if status.Code(err) == codes.AlreadyExists {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create %s/%s: %w", collection, id, err)
	}
	return true, nil
}

func (s *Store) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (s *Store) Merge(ctx context.Context, collection, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	updates := make([]gcfirestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, gcfirestore.Update{FieldPath: gcfirestore.FieldPath{k}, Value: v})
	}
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if isNotFound(err) {
		return database.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.client.Collection(collection).Doc(id).Delete(ctx, gcfirestore.Exists)
	if isNotFound(err) {
		return database.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// Increment relies on the server-side Increment transform; path segments are
// passed as a FieldPath so keys like "09:00" need no quoting.
func (s *Store) Increment(ctx context.Context, collection, id string, path []string, delta int64) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, []gcfirestore.Update{
		{FieldPath: gcfirestore.FieldPath(path), Value: gcfirestore.Increment(delta)},
	})
	if isNotFound(err) {
		return database.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to increment %v on %s/%s: %w", path, collection, id, err)
	}
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, q database.Query) ([]database.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := s.client.Collection(collection).Query
	for _, f := range q.Filters {
		query = query.Where(f.Field, "==", f.Value)
	}
	if q.OrderBy != "" {
		dir := gcfirestore.Asc
		if q.Descending {
			dir = gcfirestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	docs := make([]database.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, database.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}
