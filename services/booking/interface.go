package booking

import (
	"context"
	"time"

	activityRepo "bookingsite/database/repository/activity"
	adminRepo "bookingsite/database/repository/admin"
	availabilityRepo "bookingsite/database/repository/availability"
	bookingRepo "bookingsite/database/repository/booking"
	"bookingsite/models"
	"bookingsite/services/auth"

	"go.uber.org/zap"
)

// BookingService is the call surface used by the website. Every method reports
// failures through the returned envelope; none of them returns an error.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.BookingInput) models.Result[models.BookingCreated]
	GetBooking(ctx context.Context, id string) models.Result[models.BookingPayload]
	GetAllBookings(ctx context.Context) models.Result[models.BookingList]
	GetBookingsByDate(ctx context.Context, date string) models.Result[models.BookingList]
	UpdateBooking(ctx context.Context, id string, updates map[string]any) models.Result[models.Empty]
	DeleteBooking(ctx context.Context, id string) models.Result[models.Empty]

	GetAvailability(ctx context.Context, date string) models.Result[models.SlotsPayload]
	UpdateAvailability(ctx context.Context, date, slot string, delta int) models.Result[models.Empty]

	GetActivities(ctx context.Context) models.Result[models.ActivitiesPayload]

	AdminLogin(ctx context.Context, email, password string) models.Result[models.AdminSession]
	AdminLogout(ctx context.Context) models.Result[models.Empty]
	IsAdmin(ctx context.Context) bool
}

// BookingStore is the production BookingService. It keeps no state of its own:
// the document store behind the repositories is the only source of truth.
type BookingStore struct {
	Bookings     bookingRepo.BookingRepository
	Availability availabilityRepo.AvailabilityRepository
	Activities   activityRepo.ActivityRepository
	Admins       adminRepo.AdminRepository
	Identity     auth.IdentityProvider
	Slots        SlotConfig
	Logger       *zap.Logger
	// Now is overridable in tests.
	Now func() time.Time
}

var _ BookingService = (*BookingStore)(nil)

func (s *BookingStore) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	// Millisecond precision survives every backend unchanged.
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *BookingStore) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *BookingStore) slotConfig() SlotConfig {
	if s.Slots == (SlotConfig{}) {
		return DefaultSlotConfig
	}
	return s.Slots
}
