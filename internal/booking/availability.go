package booking

import (
	"sort"

	"github.com/pavallion/turfbook/internal/models"
)

// OccupiedSlots derives the already-booked catalog slots from a snapshot of
// one turf's bookings for one date. Legacy single-slot records contribute
// their label directly; range records are expanded back into unit slots so
// each covered band can be disabled individually at selection time.
//
// The result is purely a function of the snapshot passed in; callers
// re-fetch when the store changes. A record carrying neither time shape
// occupies nothing.
func OccupiedSlots(bookings []*models.Booking) []string {
	occupied := make(map[string]bool, len(bookings))
	for i := range bookings {
		bt, err := bookings[i].BookedTime()
		if err != nil {
			continue
		}
		switch t := bt.(type) {
		case models.LegacySlotBooking:
			occupied[t.Slot] = true
		case models.RangeBooking:
			for _, label := range ExpandRange(t.Start, t.End) {
				occupied[label] = true
			}
		}
	}

	labels := make([]string, 0, len(occupied))
	for _, slot := range TimeSlots {
		if occupied[slot] {
			labels = append(labels, slot)
			delete(occupied, slot)
		}
	}

	// Legacy records may carry labels from an older, wider catalog, such as
	// "18:00 - 20:00". They are reported as-is, after the catalog members.
	if len(occupied) > 0 {
		legacy := make([]string, 0, len(occupied))
		for slot := range occupied {
			legacy = append(legacy, slot)
		}
		sort.Strings(legacy)
		labels = append(labels, legacy...)
	}
	return labels
}
