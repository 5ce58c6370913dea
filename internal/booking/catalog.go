package booking

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	catalogOpenHour  = 6
	catalogCloseHour = 24
)

// TimeSlots is the slot catalog: the fixed, ordered, non-overlapping hourly
// bands a turf can be booked in, from 06:00 through midnight. Bookings only
// ever reference these labels; membership is tested by label equality.
var TimeSlots = buildCatalog()

func buildCatalog() []string {
	slots := make([]string, 0, catalogCloseHour-catalogOpenHour)
	for h := catalogOpenHour; h < catalogCloseHour; h++ {
		slots = append(slots, UnitSlot(h))
	}
	return slots
}

// UnitSlot returns the label of the one-hour band starting at hour. The end
// hour wraps so the last band of the day reads "23:00 - 00:00".
func UnitSlot(hour int) string {
	return fmt.Sprintf("%02d:00 - %02d:00", hour, (hour+1)%24)
}

// SlotIndex returns the catalog position of label, or -1 if label is not a
// catalog slot.
func SlotIndex(label string) int {
	for i, s := range TimeSlots {
		if s == label {
			return i
		}
	}
	return -1
}

// startHour extracts the starting hour from a slot label or an "HH:MM" time.
// The catalog is a closed, internally controlled set, so a value without a
// clock time is a programmer error and panics rather than defaulting.
func startHour(s string) int {
	start := strings.SplitN(s, " - ", 2)[0]
	colon := strings.Index(start, ":")
	if colon < 0 {
		panic(fmt.Sprintf("booking: malformed slot label %q", s))
	}
	hour, err := strconv.Atoi(start[:colon])
	if err != nil || hour < 0 || hour > 23 {
		panic(fmt.Sprintf("booking: malformed slot label %q", s))
	}
	return hour
}
