package booking

import (
	"fmt"

	"bookingsite/models"
)

// SlotConfig describes the hourly slots a new date starts with.
type SlotConfig struct {
	StartHour int // first slot, inclusive
	EndHour   int // last slot, inclusive
	Capacity  int
}

// DefaultSlotConfig yields ten slots, 09:00 through 18:00, of 100 places each.
var DefaultSlotConfig = SlotConfig{StartHour: 9, EndHour: 18, Capacity: 100}

// Generate builds the empty slot map for a date. It performs no I/O.
func (c SlotConfig) Generate() map[string]models.SlotCount {
	slots := make(map[string]models.SlotCount, c.EndHour-c.StartHour+1)
	for hour := c.StartHour; hour <= c.EndHour; hour++ {
		slots[fmt.Sprintf("%02d:00", hour)] = models.SlotCount{Booked: 0, Total: c.Capacity}
	}
	return slots
}

// GenerateDefaultSlots returns DefaultSlotConfig.Generate().
func GenerateDefaultSlots() map[string]models.SlotCount {
	return DefaultSlotConfig.Generate()
}
