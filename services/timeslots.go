package services

import (
	"time"

	"tomyumkitchen/entity"
)

// DefaultTimeSlot is preselected in the reservation form.
const DefaultTimeSlot = entity.TimeSlot("18:00")

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// AvailableSlots returns the bookable slots for a date. For today only slots
// whose starting hour is strictly later than the current hour remain; minutes
// are ignored, so an 18:30 slot disappears at 18:00 sharp. Future dates get
// the full set.
func AvailableSlots(selectedDate, now time.Time) []entity.TimeSlot {
	if !sameDay(selectedDate, now) {
		return append([]entity.TimeSlot(nil), entity.AllTimeSlots...)
	}

	hour := now.Hour()
	out := make([]entity.TimeSlot, 0, len(entity.AllTimeSlots))
	for _, slot := range entity.AllTimeSlots {
		if slot.Hour() > hour {
			out = append(out, slot)
		}
	}
	return out
}

// EffectiveSlot keeps the current selection when it is still bookable,
// otherwise falls back to the first available slot, or the default when the
// day is fully booked out.
func EffectiveSlot(selected entity.TimeSlot, available []entity.TimeSlot) entity.TimeSlot {
	for _, slot := range available {
		if slot == selected {
			return selected
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return DefaultTimeSlot
}
