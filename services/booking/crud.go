package booking

import (
	"context"
	"fmt"

	"bookingsite/models"

	"go.uber.org/zap"
)

// CreateBooking stores a pending booking and then reserves its party in the slot.
// The two writes are not atomic: when the reservation fails the booking stays,
// the envelope reports failure and Data still carries the new id.
func (s *BookingStore) CreateBooking(ctx context.Context, input models.BookingInput) models.Result[models.BookingCreated] {
	logger := s.log()
	if err := validateBookingInput(input); err != nil {
		return fail[models.BookingCreated](err)
	}

	now := s.now()
	booking := models.Booking{
		Date:      input.Date,
		Time:      input.Time,
		Kids:      input.Kids,
		Adults:    input.Adults,
		Status:    models.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Extra:     input.Extra,
	}

	id, err := s.Bookings.Create(ctx, booking)
	if err != nil {
		logger.Error("CreateBooking: failed to insert booking", zap.String("date", booking.Date), zap.Error(err))
		return fail[models.BookingCreated](err)
	}

	if err := s.updateAvailability(ctx, booking.Date, booking.Time, booking.PartySize()); err != nil {
		logger.Error("CreateBooking: booking stored without slot reservation",
			zap.String("bookingID", id),
			zap.String("date", booking.Date),
			zap.String("time", booking.Time),
			zap.Int("partySize", booking.PartySize()),
			zap.Error(err),
		)
		res := fail[models.BookingCreated](fmt.Errorf("booking %s was saved but its slot was not reserved: %w", id, err))
		res.Data = models.BookingCreated{ID: id}
		return res
	}

	logger.Info("CreateBooking: booking created", zap.String("bookingID", id), zap.Int("partySize", booking.PartySize()))
	return models.Ok(models.BookingCreated{ID: id})
}

func (s *BookingStore) GetBooking(ctx context.Context, id string) models.Result[models.BookingPayload] {
	if id == "" {
		return fail[models.BookingPayload](newValidationError("id", "is required"))
	}
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return fail[models.BookingPayload](err)
	}
	return models.Ok(models.BookingPayload{Booking: *booking})
}

// GetAllBookings lists every booking, newest first.
func (s *BookingStore) GetAllBookings(ctx context.Context) models.Result[models.BookingList] {
	bookings, err := s.Bookings.GetAll(ctx)
	if err != nil {
		s.log().Error("GetAllBookings: failed to fetch bookings", zap.Error(err))
		return fail[models.BookingList](err)
	}
	return models.Ok(models.BookingList{Bookings: bookings})
}

func (s *BookingStore) GetBookingsByDate(ctx context.Context, date string) models.Result[models.BookingList] {
	if err := validateDate(date); err != nil {
		return fail[models.BookingList](err)
	}
	bookings, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		s.log().Error("GetBookingsByDate: failed to fetch bookings", zap.String("date", date), zap.Error(err))
		return fail[models.BookingList](err)
	}
	return models.Ok(models.BookingList{Bookings: bookings})
}

// UpdateBooking merges updates into the stored record and refreshes updatedAt.
// Availability is left alone even when date, time or party size change.
func (s *BookingStore) UpdateBooking(ctx context.Context, id string, updates map[string]any) models.Result[models.Empty] {
	if id == "" {
		return fail[models.Empty](newValidationError("id", "is required"))
	}

	fields := make(map[string]any, len(updates)+1)
	for k, v := range updates {
		switch k {
		case "id", "createdAt", "updatedAt":
			continue
		}
		fields[k] = v
	}
	fields["updatedAt"] = s.now()

	if err := s.Bookings.Update(ctx, id, fields); err != nil {
		s.log().Error("UpdateBooking: failed to update booking", zap.String("bookingID", id), zap.Error(err))
		return fail[models.Empty](err)
	}
	return models.Ok(models.Empty{})
}

// DeleteBooking removes the record. The party it reserved stays counted in the
// slot's booked total.
func (s *BookingStore) DeleteBooking(ctx context.Context, id string) models.Result[models.Empty] {
	if id == "" {
		return fail[models.Empty](newValidationError("id", "is required"))
	}
	if err := s.Bookings.DeleteByID(ctx, id); err != nil {
		s.log().Error("DeleteBooking: failed to delete booking", zap.String("bookingID", id), zap.Error(err))
		return fail[models.Empty](err)
	}
	s.log().Debug("DeleteBooking: availability not released", zap.String("bookingID", id))
	return models.Ok(models.Empty{})
}
