package booking

import (
	"time"

	"github.com/pavallion/turfbook/internal/models"
)

// Flat surcharges added on top of a turf's base price. Both can apply to the
// same slot.
const (
	PeakSurcharge    = 500
	WeekendSurcharge = 300
)

// The peak window covers the evening bands: every slot starting at 18:00
// through the 23:00 band.
const (
	peakStartHour = 18
	peakEndHour   = 23
)

// PriceForSlot prices a single catalog slot on a turf for a given date.
// A zero date skips both surcharges and returns the base price unchanged;
// that is the degraded mode used when no date is known yet, not an error.
func PriceForSlot(turf *models.Turf, slotLabel string, date time.Time) int {
	price := turf.Price
	if date.IsZero() {
		return price
	}
	h := startHour(slotLabel)
	if h >= peakStartHour && h <= peakEndHour {
		price += PeakSurcharge
	}
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		price += WeekendSurcharge
	}
	return price
}

// PriceForRange prices the unit slots from start up to, not including, end.
// Hours advance on a 24-hour ring, so "23:00" to "00:00" is exactly one
// unit and equal endpoints mean a full 24-unit day, never zero.
func PriceForRange(turf *models.Turf, start, end string, date time.Time) int {
	total := 0
	for _, label := range ExpandRange(start, end) {
		total += PriceForSlot(turf, label, date)
	}
	return total
}
