// File: database/mongostore/store.go
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookingsite/database"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// Store implements database.DocumentStore on a MongoDB database.
// Document ids are kept in _id as strings.
type Store struct {
	db *mongo.Database
}

// New wraps a MongoDB database.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) coll(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) Get(ctx context.Context, collection, id string) (*database.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var raw bson.M
	err := s.coll(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s/%s: %w", collection, id, err)
	}
	doc := toDocument(raw)
	return &doc, nil
}

func (s *Store) Put(ctx context.Context, collection, id string, data map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.coll(collection).ReplaceOne(ctx, bson.M{"_id": id}, withID(id, data), options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) Create(ctx context.Context, collection, id string, data map[string]any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	onInsert := withID(id, data)
	delete(onInsert, "_id")
	res, err := s.coll(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$setOnInsert": onInsert}, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to create %s/%s: %w", collection, id, err)
	}
	return res.UpsertedCount > 0, nil
}

func (s *Store) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	id := uuid.New().String()
	if _, err := s.coll(collection).InsertOne(ctx, withID(id, data)); err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return id, nil
}

func (s *Store) Merge(ctx context.Context, collection, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		return nil
	}
	res, err := s.coll(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.coll(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	if res.DeletedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

// Increment uses $inc so concurrent writers never lose an update.
func (s *Store) Increment(ctx context.Context, collection, id string, path []string, delta int64) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	field := strings.Join(path, ".")
	res, err := s.coll(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return fmt.Errorf("failed to increment %s on %s/%s: %w", field, collection, id, err)
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (s *Store) Query(ctx context.Context, collection string, q database.Query) ([]database.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.D{}
	for _, f := range q.Filters {
		filter = append(filter, bson.E{Key: f.Field, Value: f.Value})
	}
	opts := options.Find()
	if q.OrderBy != "" {
		dir := 1
		if q.Descending {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cursor, err := s.coll(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", collection, err)
	}
	docs := make([]database.Document, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, toDocument(raw))
	}
	return docs, nil
}

func withID(id string, data map[string]any) bson.M {
	doc := bson.M{"_id": id}
	for k, v := range data {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	return doc
}

func toDocument(raw bson.M) database.Document {
	id := fmt.Sprint(raw["_id"])
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		id = oid.Hex()
	}
	data := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		data[k] = normalize(v)
	}
	return database.Document{ID: id, Data: data}
}

// normalize converts driver-specific values into plain Go values.
func normalize(v any) any {
	switch val := v.(type) {
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.M:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = normalize(inner)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = normalize(inner)
		}
		return out
	case primitive.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case primitive.A:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = normalize(inner)
		}
		return out
	case int32:
		return int64(val)
	default:
		return v
	}
}
