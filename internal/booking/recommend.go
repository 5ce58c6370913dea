package booking

import "strings"

// RangeAt is the contiguous range covering units catalog slots beginning at
// catalog index idx. It panics if the window runs past the catalog; callers
// pick indexes with AlternativeStarts, which never does.
func RangeAt(idx, units int) SlotRange {
	first := TimeSlots[idx]
	last := TimeSlots[idx+units-1]
	r := SlotRange{
		Start: strings.SplitN(first, " - ", 2)[0],
		End:   strings.SplitN(last, " - ", 2)[1],
	}
	r.Label = r.Start + " - " + r.End
	return r
}

// AlternativeStarts finds catalog start indexes of fully free windows of the
// given length, ordered nearest to wantIdx first, earlier window winning a
// tie. The window at wantIdx itself is never suggested; it is the one the
// caller already asked for. Returns at most max indexes.
func AlternativeStarts(occupied []string, wantIdx, units, max int) []int {
	taken := make(map[string]bool, len(occupied))
	for _, slot := range occupied {
		taken[slot] = true
	}

	free := func(start int) bool {
		for i := start; i < start+units; i++ {
			if taken[TimeSlots[i]] {
				return false
			}
		}
		return true
	}

	starts := []int{}
	for dist := 1; len(starts) < max; dist++ {
		before := wantIdx - dist
		after := wantIdx + dist
		if before < 0 && after+units > len(TimeSlots) {
			break
		}
		if before >= 0 && free(before) {
			starts = append(starts, before)
		}
		if len(starts) < max && after+units <= len(TimeSlots) && free(after) {
			starts = append(starts, after)
		}
	}
	return starts
}
