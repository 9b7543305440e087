package booking

import (
	"context"
	"errors"

	"bookingsite/database"
	"bookingsite/models"

	"go.uber.org/zap"
)

// GetAvailability returns the slot map of a date, initialising it on first access.
func (s *BookingStore) GetAvailability(ctx context.Context, date string) models.Result[models.SlotsPayload] {
	if err := validateDate(date); err != nil {
		return fail[models.SlotsPayload](err)
	}
	day, err := s.ensureDay(ctx, date)
	if err != nil {
		s.log().Error("GetAvailability: failed to load availability", zap.String("date", date), zap.Error(err))
		return fail[models.SlotsPayload](err)
	}
	return models.Ok(models.SlotsPayload{Date: date, Slots: day.Slots})
}

// UpdateAvailability adds delta (negative to release) to the booked count of a slot.
func (s *BookingStore) UpdateAvailability(ctx context.Context, date, slot string, delta int) models.Result[models.Empty] {
	if err := s.updateAvailability(ctx, date, slot, delta); err != nil {
		s.log().Error("UpdateAvailability: failed to update slot",
			zap.String("date", date), zap.String("time", slot), zap.Int("delta", delta), zap.Error(err))
		return fail[models.Empty](err)
	}
	return models.Ok(models.Empty{})
}

// updateAvailability never reads the counter back: the store applies the
// increment server side, so concurrent bookings of one slot cannot lose updates.
func (s *BookingStore) updateAvailability(ctx context.Context, date, slot string, delta int) error {
	if err := validateDate(date); err != nil {
		return err
	}
	if err := validateSlot(slot); err != nil {
		return err
	}
	if _, err := s.ensureDay(ctx, date); err != nil {
		return err
	}
	return s.Availability.IncrementBooked(ctx, date, slot, delta)
}

// ensureDay returns the day document, creating it with the default layout on
// first use. Creation never overwrites a document another caller wrote first.
func (s *BookingStore) ensureDay(ctx context.Context, date string) (*models.AvailabilityDay, error) {
	day, err := s.Availability.GetByDate(ctx, date)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	fresh := models.AvailabilityDay{Date: date, Slots: s.slotConfig().Generate()}
	created, err := s.Availability.Init(ctx, fresh)
	if err != nil {
		return nil, err
	}
	if !created {
		return s.Availability.GetByDate(ctx, date)
	}
	s.log().Debug("availability initialised", zap.String("date", date), zap.Int("slots", len(fresh.Slots)))
	return &fresh, nil
}
