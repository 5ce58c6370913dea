package notify

import (
	"fmt"
	"net/url"
	"time"

	"github.com/pavallion/turfbook/internal/helpers"
)

// WhatsApp builds wa.me deep links with a pre-filled message. Links are
// handed back to the caller to open; nothing is delivered from here and no
// delivery confirmation ever comes back.
type WhatsApp struct {
	AdminNumber string
}

func NewWhatsApp(adminNumber string) *WhatsApp {
	return &WhatsApp{AdminNumber: adminNumber}
}

// Link assembles https://wa.me/{digitsOnlyNumber}?text={encoded}.
func Link(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", helpers.NormalizePhone(number), url.QueryEscape(message))
}

// BookingRequestLink is what the requester opens to ask the admin to confirm:
// a message to the admin's number with the turf, date, time range, price and
// the requester's own contact number.
func (w *WhatsApp) BookingRequestLink(turfName, date, timeRange string, price int, requesterNumber string) string {
	message := fmt.Sprintf(
		"Hi! I'd like to request a booking for %s on %s from %s for ₹%d. My WhatsApp number is %s. Please confirm.",
		turfName, FormatDate(date), timeRange, price, requesterNumber,
	)
	return Link(w.AdminNumber, message)
}

// ConfirmationLink is what the admin opens after confirming: a message to the
// requester's number restating the booking and its price.
func (w *WhatsApp) ConfirmationLink(userName, turfName, date, timeDisplay string, price int, requesterNumber string) string {
	message := fmt.Sprintf(
		"Hi %s! Your booking for %s on %s from %s (₹%d) has been confirmed. Thank you!",
		userName, turfName, FormatDate(date), timeDisplay, price,
	)
	return Link(requesterNumber, message)
}

// FormatDate renders a YYYY-MM-DD date long-form for messages, falling back
// to the raw string if it does not parse.
func FormatDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("January 2, 2006")
}
