// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"bookingsite/database"
	"bookingsite/models"
	"context"
)

const Collection = "availability"

type AvailabilityRepository interface {
	// GetByDate returns database.ErrNotFound (wrapped) when the day was never initialised.
	GetByDate(ctx context.Context, date string) (*models.AvailabilityDay, error)
	// Save writes the whole day document, replacing any previous content.
	Save(ctx context.Context, day models.AvailabilityDay) error
	// Init writes day only if no document exists for its date yet. It reports
	// whether this call created it.
	Init(ctx context.Context, day models.AvailabilityDay) (bool, error)
	// IncrementBooked adds delta to slots.<slot>.booked in one server-side operation.
	IncrementBooked(ctx context.Context, date, slot string, delta int) error
}

type storeAvailabilityRepo struct {
	store database.DocumentStore
}

// NewAvailabilityRepo constructs an AvailabilityRepository; documents are keyed by date.
func NewAvailabilityRepo(store database.DocumentStore) AvailabilityRepository {
	return &storeAvailabilityRepo{store: store}
}
