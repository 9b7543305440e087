// File: database/repository/activity/interface.go
package activityRepo

import (
	"context"
	"fmt"

	"bookingsite/database"
	"bookingsite/models"
)

const Collection = "activities"

// ActivityRepository is read-only; activities are maintained outside this service.
type ActivityRepository interface {
	GetAll(ctx context.Context) ([]models.Activity, error)
}

type storeActivityRepo struct {
	store database.DocumentStore
}

func NewActivityRepo(store database.DocumentStore) ActivityRepository {
	return &storeActivityRepo{store: store}
}

func (r *storeActivityRepo) GetAll(ctx context.Context) ([]models.Activity, error) {
	docs, err := r.store.Query(ctx, Collection, database.Query{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	activities := make([]models.Activity, 0, len(docs))
	for _, doc := range docs {
		activities = append(activities, models.Activity{ID: doc.ID, Attributes: doc.Data})
	}
	return activities, nil
}
