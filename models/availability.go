package models

// SlotCount tracks how many people are booked into one hourly slot.
// Booked is expected to stay within [0, Total] but nothing enforces it.
type SlotCount struct {
	Booked int `mapstructure:"booked" json:"booked"`
	Total  int `mapstructure:"total" json:"total"`
}

// Remaining returns the free capacity, which is negative for an over-booked slot.
func (s SlotCount) Remaining() int {
	return s.Total - s.Booked
}

// AvailabilityDay is the per-date document in the "availability" collection, keyed by date.
type AvailabilityDay struct {
	Date  string               `mapstructure:"date" json:"date"`
	Slots map[string]SlotCount `mapstructure:"slots" json:"slots"`
}

// Fields returns the document layout of the day.
func (d AvailabilityDay) Fields() map[string]any {
	slots := make(map[string]any, len(d.Slots))
	for key, slot := range d.Slots {
		slots[key] = map[string]any{"booked": slot.Booked, "total": slot.Total}
	}
	return map[string]any{
		"date":  d.Date,
		"slots": slots,
	}
}
