// File: database/repository/booking/interface.go
package bookingRepo

import (
	"bookingsite/database"
	"bookingsite/models"
	"context"
)

const Collection = "bookings"

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type storeBookingRepo struct {
	store database.DocumentStore
}

// NewBookingRepo constructs a BookingRepository on top of any DocumentStore.
func NewBookingRepo(store database.DocumentStore) BookingRepository {
	return &storeBookingRepo{store: store}
}

// Indexes lists the secondary indexes the booking queries rely on.
func Indexes() []database.IndexSpec {
	return []database.IndexSpec{
		{Collection: Collection, Name: "date_idx", Fields: []string{"date"}},
		{Collection: Collection, Name: "created_at_desc_idx", Fields: []string{"createdAt"}, Descending: true},
	}
}
