package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// SlotRange is a contiguous span of catalog slots stored as one booking,
// so a three-hour reservation is one record rather than three.
type SlotRange struct {
	Start string // "HH:MM", first sub-slot's start
	End   string // "HH:MM", last sub-slot's end
	Label string // "{start} - {end}"
}

// MergeSlots collapses a non-empty selection of catalog slots into a single
// range. Sorted by label, the selection must form an unbroken chain in
// catalog order; anything else is a user input error.
func MergeSlots(labels []string) (SlotRange, error) {
	if len(labels) == 0 {
		return SlotRange{}, errors.New("no time slots selected")
	}

	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Strings(sorted)

	prev := -1
	for _, label := range sorted {
		idx := SlotIndex(label)
		if idx < 0 {
			return SlotRange{}, fmt.Errorf("unknown time slot %q", label)
		}
		if prev >= 0 && idx != prev+1 {
			return SlotRange{}, fmt.Errorf("time slots must be contiguous, found a gap before %q", label)
		}
		prev = idx
	}

	r := SlotRange{
		Start: strings.SplitN(sorted[0], " - ", 2)[0],
		End:   strings.SplitN(sorted[len(sorted)-1], " - ", 2)[1],
	}
	r.Label = r.Start + " - " + r.End
	return r, nil
}

// ExpandRange is the inverse of MergeSlots: the unit labels covering start
// up to end, walking the 24-hour ring. Equal endpoints expand to the full
// day, matching PriceForRange.
func ExpandRange(start, end string) []string {
	from := startHour(start)
	units := (startHour(end) - from + 24) % 24
	if units == 0 {
		units = 24
	}
	labels := make([]string, 0, units)
	for i := 0; i < units; i++ {
		labels = append(labels, UnitSlot((from+i)%24))
	}
	return labels
}
