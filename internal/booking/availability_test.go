package booking

import (
	"reflect"
	"testing"

	"github.com/pavallion/turfbook/internal/models"
)

func TestOccupiedSlotsLegacy(t *testing.T) {
	bookings := []*models.Booking{
		{TurfID: "t1", Date: "2026-09-05", TimeSlot: "10:00 - 11:00"},
	}
	got := OccupiedSlots(bookings)
	want := []string{"10:00 - 11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestOccupiedSlotsRange(t *testing.T) {
	bookings := []*models.Booking{
		{TurfID: "t1", Date: "2026-09-05", StartTime: "14:00", EndTime: "16:00"},
	}
	got := OccupiedSlots(bookings)
	want := []string{"14:00 - 15:00", "15:00 - 16:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestOccupiedSlotsMixedSortedByCatalog(t *testing.T) {
	// Output order follows the catalog, not insertion order
	bookings := []*models.Booking{
		{TimeSlot: "20:00 - 21:00"},
		{StartTime: "08:00", EndTime: "09:00"},
	}
	got := OccupiedSlots(bookings)
	want := []string{"08:00 - 09:00", "20:00 - 21:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestOccupiedSlotsSkipsCorruptRecords(t *testing.T) {
	bookings := []*models.Booking{
		{TurfID: "t1"}, // neither shape
		{TimeSlot: "09:00 - 10:00"},
	}
	got := OccupiedSlots(bookings)
	want := []string{"09:00 - 10:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestOccupiedSlotsKeepsOffCatalogLegacyLabels(t *testing.T) {
	// Old records can carry two-hour labels from a wider catalog. They are
	// reported verbatim, after the current catalog members.
	bookings := []*models.Booking{
		{TimeSlot: "18:00 - 20:00"},
		{TimeSlot: "09:00 - 10:00"},
	}
	got := OccupiedSlots(bookings)
	want := []string{"09:00 - 10:00", "18:00 - 20:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestOccupiedSlotsEmpty(t *testing.T) {
	if got := OccupiedSlots(nil); len(got) != 0 {
		t.Errorf("expected no occupied slots, got %v", got)
	}
}

func TestOccupiedSlotsRoundTripWithMerge(t *testing.T) {
	slots := []string{"11:00 - 12:00", "12:00 - 13:00", "13:00 - 14:00"}
	r, err := MergeSlots(slots)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored := []*models.Booking{{StartTime: r.Start, EndTime: r.End, TimeRange: r.Label}}
	got := OccupiedSlots(stored)
	if !reflect.DeepEqual(got, slots) {
		t.Errorf("expected %v, got %v", slots, got)
	}
}
