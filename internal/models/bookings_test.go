package models

import (
	"testing"
)

func TestBookedTimeRange(t *testing.T) {
	b := &Booking{StartTime: "14:00", EndTime: "16:00", TimeRange: "14:00 - 16:00"}

	bt, err := b.BookedTime()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := bt.(RangeBooking)
	if !ok {
		t.Fatalf("expected RangeBooking, got %T", bt)
	}
	if r.Start != "14:00" || r.End != "16:00" || r.Range != "14:00 - 16:00" {
		t.Errorf("unexpected range %+v", r)
	}
}

func TestBookedTimeRangeDefaultsLabel(t *testing.T) {
	b := &Booking{StartTime: "14:00", EndTime: "16:00"}

	bt, err := b.BookedTime()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := bt.(RangeBooking)
	if r.Range != "14:00 - 16:00" {
		t.Errorf("expected derived label, got %q", r.Range)
	}
}

func TestBookedTimeLegacy(t *testing.T) {
	b := &Booking{TimeSlot: "10:00 - 11:00"}

	bt, err := b.BookedTime()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, ok := bt.(LegacySlotBooking)
	if !ok {
		t.Fatalf("expected LegacySlotBooking, got %T", bt)
	}
	if l.Slot != "10:00 - 11:00" {
		t.Errorf("unexpected slot %q", l.Slot)
	}
}

func TestBookedTimeRangeWinsOverLegacy(t *testing.T) {
	b := &Booking{StartTime: "14:00", EndTime: "16:00", TimeSlot: "10:00 - 11:00"}

	bt, err := b.BookedTime()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := bt.(RangeBooking); !ok {
		t.Errorf("expected range shape to win, got %T", bt)
	}
}

func TestBookedTimeCorruptRecord(t *testing.T) {
	b := &Booking{TurfID: "t1", Date: "2026-09-05"}

	if _, err := b.BookedTime(); err == nil {
		t.Error("expected error for record with neither time shape")
	}
}

func TestTimeDisplay(t *testing.T) {
	cases := []struct {
		b    Booking
		want string
	}{
		{Booking{TimeSlot: "10:00 - 11:00"}, "10:00 - 11:00"},
		{Booking{StartTime: "14:00", EndTime: "16:00", TimeRange: "14:00 - 16:00"}, "14:00 - 16:00"},
		{Booking{}, "Unknown time"},
	}
	for _, tc := range cases {
		if got := tc.b.TimeDisplay(); got != tc.want {
			t.Errorf("TimeDisplay() = %q, want %q", got, tc.want)
		}
	}
}

func TestBookingBeforeCreateDefaults(t *testing.T) {
	b := &Booking{TurfID: "t1", Date: "2026-09-05", TimeSlot: "10:00 - 11:00"}
	if err := b.BeforeCreate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID.IsZero() {
		t.Error("expected generated ID")
	}
	if b.Status != BookingPending {
		t.Errorf("expected pending default, got %q", b.Status)
	}
	if b.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestAdminListIsAdmin(t *testing.T) {
	list := &AdminList{Emails: []string{"Owner@Example.com", "staff@example.com"}}

	if !list.IsAdmin("owner@example.com") {
		t.Error("expected case-insensitive match")
	}
	if !list.IsAdmin("STAFF@EXAMPLE.COM") {
		t.Error("expected case-insensitive match")
	}
	if list.IsAdmin("guest@example.com") {
		t.Error("expected non-member to be rejected")
	}
	if (&AdminList{}).IsAdmin("owner@example.com") {
		t.Error("empty allowlist must admit nobody")
	}
}
