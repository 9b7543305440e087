package booking

import (
	"errors"
	"fmt"
	"time"

	"bookingsite/database"
	"bookingsite/models"
	"bookingsite/services/auth"
)

// ErrNotAdmin is returned when valid credentials belong to an email missing from
// the allow-list. The message is shown to users as is.
var ErrNotAdmin = errors.New("Not an admin user")

// ValidationError rejects malformed input before any store round-trip.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// kindOf maps an error onto the envelope's error kind.
func kindOf(err error) models.ErrorKind {
	var vErr *ValidationError
	var signInErr *auth.SignInError
	switch {
	case errors.As(err, &vErr):
		return models.KindValidation
	case errors.Is(err, database.ErrNotFound):
		return models.KindNotFound
	case errors.Is(err, ErrNotAdmin), errors.Is(err, auth.ErrInvalidCredentials), errors.As(err, &signInErr):
		return models.KindUnauthorized
	default:
		return models.KindStore
	}
}

func fail[T any](err error) models.Result[T] {
	return models.Fail[T](kindOf(err), err.Error())
}

func validateDate(date string) error {
	if date == "" {
		return newValidationError("date", "is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return newValidationError("date", "%q is not a YYYY-MM-DD date", date)
	}
	return nil
}

func validateSlot(slot string) error {
	if slot == "" {
		return newValidationError("time", "is required")
	}
	if _, err := time.Parse("15:04", slot); err != nil || len(slot) != 5 {
		return newValidationError("time", "%q is not an HH:MM slot", slot)
	}
	return nil
}

func validateBookingInput(in models.BookingInput) error {
	if err := validateDate(in.Date); err != nil {
		return err
	}
	if err := validateSlot(in.Time); err != nil {
		return err
	}
	if in.Kids < 0 {
		return newValidationError("kids", "must not be negative")
	}
	if in.Adults < 0 {
		return newValidationError("adults", "must not be negative")
	}
	return nil
}
