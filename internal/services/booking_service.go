package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pavallion/turfbook/internal/booking"
	"github.com/pavallion/turfbook/internal/helpers"
	"github.com/pavallion/turfbook/internal/models"
	"github.com/pavallion/turfbook/internal/notify"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const dateLayout = "2006-01-02"

// adminContactFallback is stored when an admin creates a manual booking
// without a contact number.
const adminContactFallback = "N/A (Admin)"

type BookingService struct {
	bookingRepo models.BookingRepo
	turfRepo    models.TurfRepo
	whatsapp    *notify.WhatsApp
}

func NewBookingService(bookingRepo models.BookingRepo, turfRepo models.TurfRepo, whatsapp *notify.WhatsApp) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		turfRepo:    turfRepo,
		whatsapp:    whatsapp,
	}
}

type BookingRequest struct {
	TurfID         string   `json:"turfId" validate:"required"`
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlots      []string `json:"timeSlots" validate:"required,min=1"`
	WhatsappNumber string   `json:"whatsappNumber"`
	// Confirmed lets an admin record a booking directly in confirmed state
	// (walk-ins, phone bookings). Rejected for everyone else.
	Confirmed bool `json:"confirmed"`
}

// BookingReceipt pairs the stored record with the derived price and the
// wa.me link the client should open.
type BookingReceipt struct {
	Booking      *models.Booking `json:"booking"`
	Price        int             `json:"price"`
	WhatsappLink string          `json:"whatsappLink,omitempty"`
}

// RequestBooking validates a selection, checks it against the day's snapshot,
// merges it into one contiguous range and persists a single record. The
// conflict check is advisory only: two concurrent requests for the same
// interval can both land, and the admin reconciles by hand.
func (bs *BookingService) RequestBooking(ctx context.Context, req *BookingRequest, claims *helpers.EnhancedClaims) (*BookingReceipt, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, NewValidationError("invalid booking request: %v", err)
	}

	if req.Confirmed && !claims.IsAdmin() {
		return nil, fmt.Errorf("only admins can create confirmed bookings: %w", ErrForbidden)
	}

	contact := req.WhatsappNumber
	if contact == "" && req.Confirmed {
		contact = adminContactFallback
	} else if !helpers.IsValidPhone(contact) {
		return nil, NewValidationError("invalid WhatsApp number %q", req.WhatsappNumber)
	}

	turf, err := bs.getTurf(ctx, req.TurfID)
	if err != nil {
		return nil, err
	}

	existing, err := bs.bookingRepo.ListBookingsForTurfDate(ctx, req.TurfID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %v", err)
	}
	occupied := map[string]bool{}
	for _, slot := range booking.OccupiedSlots(existing) {
		occupied[slot] = true
	}
	for _, slot := range req.TimeSlots {
		if occupied[slot] {
			return nil, fmt.Errorf("%q is taken: %w", slot, ErrSlotTaken)
		}
	}

	r, err := booking.MergeSlots(req.TimeSlots)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}

	status := models.BookingPending
	if req.Confirmed {
		status = models.BookingConfirmed
	}

	record := &models.Booking{
		TurfID:         req.TurfID,
		Date:           req.Date,
		StartTime:      r.Start,
		EndTime:        r.End,
		TimeRange:      r.Label,
		WhatsappNumber: contact,
		UserID:         claims.UserID,
		UserName:       displayName(claims),
		Status:         status,
	}

	created, err := bs.bookingRepo.CreateBooking(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save booking: %v", err)
	}

	date, _ := time.Parse(dateLayout, req.Date)
	price := booking.PriceForRange(turf, r.Start, r.End, date)

	receipt := &BookingReceipt{Booking: created, Price: price}
	if status == models.BookingPending {
		receipt.WhatsappLink = bs.whatsapp.BookingRequestLink(turf.Name, created.Date, r.Label, price, contact)
	} else if contact != adminContactFallback {
		receipt.WhatsappLink = bs.whatsapp.ConfirmationLink(created.UserName, turf.Name, created.Date, r.Label, price, contact)
	}
	return receipt, nil
}

// Availability returns the occupied catalog slots for a turf and date,
// derived from a fresh store snapshot on every call.
func (bs *BookingService) Availability(ctx context.Context, turfID, date string) ([]string, error) {
	if turfID == "" {
		return nil, NewValidationError("turf_id is required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, NewValidationError("invalid date %q, want YYYY-MM-DD", date)
	}

	bookings, err := bs.bookingRepo.ListBookingsForTurfDate(ctx, turfID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %v", err)
	}
	return booking.OccupiedSlots(bookings), nil
}

// SlotQuote is the per-slot price line of a quote.
type SlotQuote struct {
	Slot  string `json:"slot"`
	Price int    `json:"price"`
}

type Quote struct {
	TurfID string      `json:"turfId"`
	Date   string      `json:"date"`
	Slots  []SlotQuote `json:"slots"`
	Total  int         `json:"total"`
}

// QuoteSlots prices each selected slot individually plus the sum, the figures
// the booking form shows before submission. Prices are always recomputed,
// never read back from a record.
func (bs *BookingService) QuoteSlots(ctx context.Context, turfID, dateStr string, slots []string) (*Quote, error) {
	if len(slots) == 0 {
		return nil, NewValidationError("no time slots selected")
	}
	for _, slot := range slots {
		if booking.SlotIndex(slot) < 0 {
			return nil, NewValidationError("unknown time slot %q", slot)
		}
	}

	var date time.Time
	if dateStr != "" {
		var err error
		date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, NewValidationError("invalid date %q, want YYYY-MM-DD", dateStr)
		}
	}

	turf, err := bs.getTurf(ctx, turfID)
	if err != nil {
		return nil, err
	}

	quote := &Quote{TurfID: turfID, Date: dateStr}
	for _, slot := range slots {
		price := booking.PriceForSlot(turf, slot, date)
		quote.Slots = append(quote.Slots, SlotQuote{Slot: slot, Price: price})
		quote.Total += price
	}
	return quote, nil
}

// Recommendation is an alternative free window offered when the requested
// slots are not available.
type Recommendation struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	TimeRange string `json:"timeRange"`
	Price     int    `json:"price"`
	Reason    string `json:"reason"`
}

const maxRecommendations = 3

// RecommendTimes suggests up to three free contiguous windows of the same
// length as the requested selection on the same turf and date, nearest to
// the requested start first. Suggestions are derived from the day's booking
// snapshot alone, so they are deterministic and can be stale the same way
// the availability view can.
func (bs *BookingService) RecommendTimes(ctx context.Context, turfID, dateStr string, slots []string) ([]Recommendation, error) {
	r, err := booking.MergeSlots(slots)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, NewValidationError("invalid date %q, want YYYY-MM-DD", dateStr)
	}

	turf, err := bs.getTurf(ctx, turfID)
	if err != nil {
		return nil, err
	}

	existing, err := bs.bookingRepo.ListBookingsForTurfDate(ctx, turfID, dateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %v", err)
	}

	units := len(booking.ExpandRange(r.Start, r.End))
	wantIdx := booking.SlotIndex(booking.ExpandRange(r.Start, r.End)[0])
	occupied := booking.OccupiedSlots(existing)

	recommendations := []Recommendation{}
	for _, idx := range booking.AlternativeStarts(occupied, wantIdx, units, maxRecommendations) {
		alt := booking.RangeAt(idx, units)
		offset := idx - wantIdx
		reason := fmt.Sprintf("Free for the same duration, starting %d hour(s) later", offset)
		if offset < 0 {
			reason = fmt.Sprintf("Free for the same duration, starting %d hour(s) earlier", -offset)
		}
		recommendations = append(recommendations, Recommendation{
			StartTime: alt.Start,
			EndTime:   alt.End,
			TimeRange: alt.Label,
			Price:     booking.PriceForRange(turf, alt.Start, alt.End, date),
			Reason:    reason,
		})
	}
	return recommendations, nil
}

func (bs *BookingService) ListBookings(ctx context.Context, offset, limit int) ([]*models.Booking, int, error) {
	return bs.bookingRepo.ListBookings(ctx, offset, limit)
}

func (bs *BookingService) ListBookingsByUser(ctx context.Context, userID string) ([]*models.Booking, error) {
	return bs.bookingRepo.ListBookingsByUser(ctx, userID)
}

// ConfirmBooking flips a booking to confirmed and builds the WhatsApp
// confirmation link for the requester. Confirming an already confirmed
// booking just rebuilds the link, useful for resending. The price is
// recomputed from the turf's current base price.
func (bs *BookingService) ConfirmBooking(ctx context.Context, id string) (*BookingReceipt, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("invalid booking ID %q", id)
	}

	updated, err := bs.bookingRepo.UpdateBookingStatus(ctx, oid, models.BookingConfirmed)
	if err == models.ErrBookingNotFound {
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %v", err)
	}

	turfName := "Unknown"
	price := 0
	date, _ := time.Parse(dateLayout, updated.Date)

	if oid, err := primitive.ObjectIDFromHex(updated.TurfID); err == nil {
		if turf, err := bs.turfRepo.GetTurfByID(ctx, oid); err == nil && turf != nil {
			turfName = turf.Name
			price = bs.priceFor(turf, updated, date)
		}
	}

	receipt := &BookingReceipt{Booking: updated, Price: price}
	if updated.WhatsappNumber != "" && updated.WhatsappNumber != adminContactFallback {
		receipt.WhatsappLink = bs.whatsapp.ConfirmationLink(
			updated.UserName, turfName, updated.Date, updated.TimeDisplay(), price, updated.WhatsappNumber,
		)
	}
	return receipt, nil
}

// DeleteBooking removes a record. Admins can delete anything; a requester
// can only withdraw their own booking while it is still pending.
func (bs *BookingService) DeleteBooking(ctx context.Context, id string, claims *helpers.EnhancedClaims) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewValidationError("invalid booking ID %q", id)
	}

	record, err := bs.bookingRepo.GetBookingByID(ctx, oid)
	if err == models.ErrBookingNotFound {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load booking: %v", err)
	}

	if !claims.IsAdmin() {
		if !claims.IsOwner(record.UserID) || record.Status != models.BookingPending {
			return fmt.Errorf("cannot delete this booking: %w", ErrForbidden)
		}
	}

	if err := bs.bookingRepo.DeleteBooking(ctx, oid); err != nil {
		if err == models.ErrBookingNotFound {
			return fmt.Errorf("booking %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to delete booking: %v", err)
	}
	return nil
}

// priceFor recomputes a booking's price, handling both record shapes.
func (bs *BookingService) priceFor(turf *models.Turf, b *models.Booking, date time.Time) int {
	bt, err := b.BookedTime()
	if err != nil {
		return 0
	}
	switch t := bt.(type) {
	case models.LegacySlotBooking:
		return booking.PriceForSlot(turf, t.Slot, date)
	case models.RangeBooking:
		return booking.PriceForRange(turf, t.Start, t.End, date)
	}
	return 0
}

func (bs *BookingService) getTurf(ctx context.Context, turfID string) (*models.Turf, error) {
	oid, err := primitive.ObjectIDFromHex(turfID)
	if err != nil {
		return nil, NewValidationError("invalid turf ID %q", turfID)
	}
	turf, err := bs.turfRepo.GetTurfByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to load turf: %v", err)
	}
	if turf == nil {
		return nil, fmt.Errorf("turf %s: %w", turfID, ErrNotFound)
	}
	return turf, nil
}

func displayName(claims *helpers.EnhancedClaims) string {
	if claims.Fullname != "" {
		return claims.Fullname
	}
	if claims.Email != "" {
		return claims.Email
	}
	return "Unknown User"
}
