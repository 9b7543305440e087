// FILE: database/mongostore/indexes.go
package mongostore

import (
	"context"
	"fmt"
	"time"

	"bookingsite/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories declared, grouped per collection.
func (s *Store) EnsureIndexes(ctx context.Context, specs []database.IndexSpec) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	byCollection := map[string][]mongo.IndexModel{}
	var order []string
	for _, spec := range specs {
		dir := 1
		if spec.Descending {
			dir = -1
		}
		keys := bson.D{}
		for _, f := range spec.Fields {
			keys = append(keys, bson.E{Key: f, Value: dir})
		}
		opts := options.Index().SetName(spec.Name)
		if spec.Unique {
			opts.SetUnique(true)
		}
		if _, seen := byCollection[spec.Collection]; !seen {
			order = append(order, spec.Collection)
		}
		byCollection[spec.Collection] = append(byCollection[spec.Collection], mongo.IndexModel{Keys: keys, Options: opts})
	}

	for _, name := range order {
		if _, err := s.coll(name).Indexes().CreateMany(ctx, byCollection[name]); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}
	return nil
}
