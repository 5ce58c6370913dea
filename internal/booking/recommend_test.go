package booking

import (
	"reflect"
	"testing"
)

func TestRangeAt(t *testing.T) {
	r := RangeAt(SlotIndex("09:00 - 10:00"), 2)
	if r.Start != "09:00" || r.End != "11:00" || r.Label != "09:00 - 11:00" {
		t.Errorf("unexpected range %+v", r)
	}

	// Last window of the day keeps the wrapped end label
	r = RangeAt(SlotIndex("23:00 - 00:00"), 1)
	if r.Label != "23:00 - 00:00" {
		t.Errorf("unexpected range %+v", r)
	}
}

func TestAlternativeStartsNearestFirst(t *testing.T) {
	// Requested 18:00-19:00 is taken; everything else is free
	want := SlotIndex("18:00 - 19:00")
	got := AlternativeStarts([]string{"18:00 - 19:00"}, want, 1, 3)

	// Nearest first, earlier winning the tie: 17:00, 19:00, 16:00
	expected := []int{want - 1, want + 1, want - 2}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestAlternativeStartsSkipsOccupiedWindows(t *testing.T) {
	// 18-20 requested, 17-18 and 20-21 also taken, so the nearest free
	// two-hour windows are 15-17 and 21-23
	occupied := []string{"17:00 - 18:00", "18:00 - 19:00", "19:00 - 20:00", "20:00 - 21:00"}
	want := SlotIndex("18:00 - 19:00")
	got := AlternativeStarts(occupied, want, 2, 3)

	expected := []int{SlotIndex("15:00 - 16:00"), SlotIndex("21:00 - 22:00"), SlotIndex("14:00 - 15:00")}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestAlternativeStartsRespectsCatalogEdges(t *testing.T) {
	// A window starting at the first catalog slot has no earlier neighbor
	got := AlternativeStarts(nil, 0, 1, 2)
	expected := []int{1, 2}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	// And the last slot has no later one
	last := len(TimeSlots) - 1
	got = AlternativeStarts(nil, last, 1, 2)
	expected = []int{last - 1, last - 2}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestAlternativeStartsFullDay(t *testing.T) {
	if got := AlternativeStarts(TimeSlots, 5, 1, 3); len(got) != 0 {
		t.Errorf("expected no suggestions on a fully booked day, got %v", got)
	}
}
