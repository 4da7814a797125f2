package history

import (
	"strings"
	"time"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

// Partition buckets bookings by their derived time status. All three
// slices are fresh; the input is never reordered or mutated.
type Partition struct {
	Upcoming []entities.Booking `json:"upcoming"`
	Active   []entities.Booking `json:"active"`
	Past     []entities.Booking `json:"past"`
}

func PartitionByTime(bookings []entities.Booking, now time.Time) Partition {
	var p Partition
	for _, b := range bookings {
		switch b.TimeStatus(now) {
		case entities.TimeStatusUpcoming:
			p.Upcoming = append(p.Upcoming, b)
		case entities.TimeStatusActive:
			p.Active = append(p.Active, b)
		default:
			p.Past = append(p.Past, b)
		}
	}
	return p
}

// Filter returns the bookings whose ID, customer name, license plate or
// lot name contains the query, case-insensitively. An empty query keeps
// everything. The result is a new slice.
func Filter(bookings []entities.Booking, query string) []entities.Booking {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]entities.Booking(nil), bookings...)
	}

	var out []entities.Booking
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.ID), query) ||
			strings.Contains(strings.ToLower(b.CustomerName), query) ||
			strings.Contains(strings.ToLower(b.Car.LicensePlate), query) ||
			strings.Contains(strings.ToLower(b.LotName), query) {
			out = append(out, b)
		}
	}
	return out
}

// CanCancel: only upcoming bookings may be cancelled, and cancelling an
// already-cancelled booking is nonsense.
func CanCancel(b entities.Booking, now time.Time) bool {
	return b.TimeStatus(now) == entities.TimeStatusUpcoming &&
		b.Status != entities.BookingStatusCancelled
}

// RefundNotice is the informational policy text shown in the cancel
// dialog. Enforcement is entirely backend-side.
func RefundNotice(b entities.Booking, now time.Time) string {
	if b.StartTime.Sub(now) > 2*time.Hour {
		return "Cancelling more than 2 hours before your start time qualifies for a full refund."
	}
	return "Cancellations within 2 hours of the start time are not eligible for a refund."
}
