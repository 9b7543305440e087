// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"errors"
	"fmt"

	"bookingsite/database"
	"bookingsite/models"
)

func (r *storeAvailabilityRepo) GetByDate(ctx context.Context, date string) (*models.AvailabilityDay, error) {
	doc, err := r.store.Get(ctx, Collection, date)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("availability for %s: %w", date, err)
		}
		return nil, fmt.Errorf("failed to fetch availability for %s: %w", date, err)
	}

	var day models.AvailabilityDay
	if err := models.DecodeDocument(doc.Data, &day); err != nil {
		return nil, fmt.Errorf("error decoding availability for %s: %w", date, err)
	}
	// Older documents only carry the slots map.
	if day.Date == "" {
		day.Date = date
	}
	if day.Slots == nil {
		day.Slots = map[string]models.SlotCount{}
	}
	return &day, nil
}

func (r *storeAvailabilityRepo) Save(ctx context.Context, day models.AvailabilityDay) error {
	if err := r.store.Put(ctx, Collection, day.Date, day.Fields()); err != nil {
		return fmt.Errorf("failed to save availability for %s: %w", day.Date, err)
	}
	return nil
}

func (r *storeAvailabilityRepo) Init(ctx context.Context, day models.AvailabilityDay) (bool, error) {
	created, err := r.store.Create(ctx, Collection, day.Date, day.Fields())
	if err != nil {
		return false, fmt.Errorf("failed to initialise availability for %s: %w", day.Date, err)
	}
	return created, nil
}

func (r *storeAvailabilityRepo) IncrementBooked(ctx context.Context, date, slot string, delta int) error {
	err := r.store.Increment(ctx, Collection, date, []string{"slots", slot, "booked"}, int64(delta))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("availability for %s: %w", date, err)
		}
		return fmt.Errorf("failed to update availability for %s %s: %w", date, slot, err)
	}
	return nil
}
