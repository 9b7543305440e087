package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingFromDocument(t *testing.T) {
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	b, err := BookingFromDocument("b1", map[string]any{
		"date":      "2024-06-01",
		"time":      "09:00",
		"kids":      int64(2),
		"adults":    int32(1),
		"status":    BookingStatusPending,
		"createdAt": created,
		"updatedAt": "2024-06-01T10:00:00Z",
		"name":      "Ada",
		"activity":  "maze",
	})
	require.NoError(t, err)

	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, 3, b.PartySize())
	assert.True(t, b.CreatedAt.Equal(created))
	assert.True(t, b.UpdatedAt.Equal(created.Add(time.Hour)))
	assert.Equal(t, map[string]any{"name": "Ada", "activity": "maze"}, b.Extra)
}

func TestBookingFromDocument_NoExtras(t *testing.T) {
	b, err := BookingFromDocument("b1", map[string]any{"date": "2024-06-01", "time": "09:00"})
	require.NoError(t, err)
	assert.Nil(t, b.Extra)
}

func TestBookingMarshalJSON_FlattensExtras(t *testing.T) {
	b := Booking{ID: "b1", Date: "2024-06-01", Time: "09:00", Adults: 2, Status: BookingStatusPending,
		Extra: map[string]any{"name": "Ada"}}

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "b1", out["id"])
	assert.Equal(t, "Ada", out["name"])
	assert.EqualValues(t, 2, out["adults"])
	assert.NotContains(t, out, "Extra")
}

func TestBookingInputFromMap(t *testing.T) {
	in, err := BookingInputFromMap(map[string]any{
		"date":      "2024-06-01",
		"time":      "10:00",
		"kids":      "2",
		"adults":    float64(1),
		"status":    "confirmed",
		"createdAt": "2020-01-01T00:00:00Z",
		"id":        "forged",
		"email":     "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01", in.Date)
	assert.Equal(t, "10:00", in.Time)
	assert.Equal(t, 2, in.Kids)
	assert.Equal(t, 1, in.Adults)
	assert.Equal(t, map[string]any{"email": "ada@example.com"}, in.Extra)
}

func TestBookingInputFromMap_BadType(t *testing.T) {
	_, err := BookingInputFromMap(map[string]any{"kids": "several"})
	assert.Error(t, err)
}

func TestAvailabilityDayFields(t *testing.T) {
	day := AvailabilityDay{Date: "2024-06-01", Slots: map[string]SlotCount{"09:00": {Booked: 1, Total: 10}}}

	fields := day.Fields()
	assert.Equal(t, "2024-06-01", fields["date"])
	assert.Equal(t, map[string]any{"09:00": map[string]any{"booked": 1, "total": 10}}, fields["slots"])

	var back AvailabilityDay
	require.NoError(t, DecodeDocument(fields, &back))
	assert.Equal(t, day, back)
	assert.Equal(t, 9, back.Slots["09:00"].Remaining())
}
