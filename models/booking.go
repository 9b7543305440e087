package models

import (
	"encoding/json"
	"time"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a reservation stored in the "bookings" collection.
type Booking struct {
	ID        string         `mapstructure:"-" json:"id"`                // Assigned by the store on creation
	Date      string         `mapstructure:"date" json:"date"`           // "YYYY-MM-DD"
	Time      string         `mapstructure:"time" json:"time"`           // Slot key, e.g. "09:00"
	Kids      int            `mapstructure:"kids" json:"kids"`           // Number of children in the party
	Adults    int            `mapstructure:"adults" json:"adults"`       // Number of adults in the party
	Status    string         `mapstructure:"status" json:"status"`       // "pending" on creation; later values are caller-defined
	CreatedAt time.Time      `mapstructure:"createdAt" json:"createdAt"` // Set once on creation
	UpdatedAt time.Time      `mapstructure:"updatedAt" json:"updatedAt"` // Refreshed on every update
	Extra     map[string]any `mapstructure:",remain" json:"-"`           // Caller-supplied fields (name, email, activity, notes...)
}

// PartySize is the number of people the booking reserves in its slot.
func (b Booking) PartySize() int {
	return b.Kids + b.Adults
}

// Fields flattens the booking into the document layout used by the stores.
func (b Booking) Fields() map[string]any {
	fields := make(map[string]any, len(b.Extra)+7)
	for k, v := range b.Extra {
		fields[k] = v
	}
	fields["date"] = b.Date
	fields["time"] = b.Time
	fields["kids"] = b.Kids
	fields["adults"] = b.Adults
	fields["status"] = b.Status
	fields["createdAt"] = b.CreatedAt
	fields["updatedAt"] = b.UpdatedAt
	return fields
}

// MarshalJSON keeps caller-supplied fields at the top level, next to the known ones.
func (b Booking) MarshalJSON() ([]byte, error) {
	fields := b.Fields()
	fields["id"] = b.ID
	return json.Marshal(fields)
}

// BookingFromDocument decodes a stored booking document.
func BookingFromDocument(id string, data map[string]any) (*Booking, error) {
	var b Booking
	if err := DecodeDocument(data, &b); err != nil {
		return nil, err
	}
	b.ID = id
	delete(b.Extra, "id")
	if len(b.Extra) == 0 {
		b.Extra = nil
	}
	return &b, nil
}

// BookingInput is the payload accepted when a booking is created.
type BookingInput struct {
	Date   string         `mapstructure:"date"`
	Time   string         `mapstructure:"time"`
	Kids   int            `mapstructure:"kids"`
	Adults int            `mapstructure:"adults"`
	Extra  map[string]any `mapstructure:",remain"`
}

// BookingInputFromMap accepts loosely typed request bodies ("kids": "2" is fine).
func BookingInputFromMap(data map[string]any) (BookingInput, error) {
	var in BookingInput
	if err := DecodeDocument(data, &in); err != nil {
		return BookingInput{}, err
	}
	// Status and timestamps are owned by the store layer.
	for _, k := range []string{"id", "status", "createdAt", "updatedAt"} {
		delete(in.Extra, k)
	}
	return in, nil
}
