package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "success flattens payload",
			in:   Ok(BookingCreated{ID: "b1"}),
			want: `{"success":true,"id":"b1"}`,
		},
		{
			name: "success with empty payload",
			in:   Ok(Empty{}),
			want: `{"success":true}`,
		},
		{
			name: "slots payload",
			in:   Ok(SlotsPayload{Date: "2024-06-01", Slots: map[string]SlotCount{"09:00": {Booked: 1, Total: 100}}}),
			want: `{"success":true,"date":"2024-06-01","slots":{"09:00":{"booked":1,"total":100}}}`,
		},
		{
			name: "failure carries error and kind",
			in:   Fail[BookingCreated](KindNotFound, "booking b1: document not found"),
			want: `{"success":false,"error":"booking b1: document not found","kind":"not_found"}`,
		},
		{
			name: "failure hides partial data",
			in:   Result[BookingCreated]{Data: BookingCreated{ID: "b1"}, Error: "slot not reserved", Kind: KindStore},
			want: `{"success":false,"error":"slot not reserved","kind":"store"}`,
		},
		{
			name: "non-object payload is nested",
			in:   Ok([]string{"a"}),
			want: `{"success":true,"data":["a"]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestResultListPayloadIsArray(t *testing.T) {
	raw, err := json.Marshal(Ok(BookingList{Bookings: []Booking{}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"bookings":[]}`, string(raw))
}
