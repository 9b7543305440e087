// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"bookingsite/database"
	"bookingsite/models"
)

func (r *storeBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	id, err := r.store.Add(ctx, Collection, booking.Fields())
	if err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	return id, nil
}

func (r *storeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	doc, err := r.store.Get(ctx, Collection, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("booking %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return models.BookingFromDocument(doc.ID, doc.Data)
}

// GetAll returns every booking, newest first.
func (r *storeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.query(ctx, database.Query{OrderBy: "createdAt", Descending: true})
}

// GetByDate matches the date field exactly.
func (r *storeBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.query(ctx, database.Query{}.Where("date", date))
}

func (r *storeBookingRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.store.Merge(ctx, Collection, id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("booking %s: %w", id, err)
		}
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return nil
}

func (r *storeBookingRepo) DeleteByID(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, Collection, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("booking %s: %w", id, err)
		}
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	return nil
}

func (r *storeBookingRepo) query(ctx context.Context, q database.Query) ([]models.Booking, error) {
	docs, err := r.store.Query(ctx, Collection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	bookings := make([]models.Booking, 0, len(docs))
	for _, doc := range docs {
		b, err := models.BookingFromDocument(doc.ID, doc.Data)
		if err != nil {
			return nil, fmt.Errorf("error decoding booking %s: %w", doc.ID, err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, nil
}
