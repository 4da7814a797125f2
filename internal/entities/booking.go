package entities

import (
	"fmt"
	"strings"
	"time"
)

// TimeStatus is derived from the booking interval against the current
// time. It is never stored; dashboards re-derive it on every read so the
// partitioning cannot drift from what the ticket view shows.
type TimeStatus string

const (
	TimeStatusUpcoming TimeStatus = "upcoming"
	TimeStatusActive   TimeStatus = "active"
	TimeStatusPast     TimeStatus = "past"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type CarDetails struct {
	Model        string `json:"model"`
	Color        string `json:"color"`
	LicensePlate string `json:"license_plate"`
}

// Validate checks the user-entered vehicle fields before they are sent
// anywhere. Each field needs at least 2 characters.
func (c CarDetails) Validate() error {
	if len(strings.TrimSpace(c.Model)) < 2 {
		return fmt.Errorf("car model must be at least 2 characters")
	}
	if len(strings.TrimSpace(c.Color)) < 2 {
		return fmt.Errorf("car color must be at least 2 characters")
	}
	if len(strings.TrimSpace(c.LicensePlate)) < 2 {
		return fmt.Errorf("license plate must be at least 2 characters")
	}
	return nil
}

func (c CarDetails) Complete() bool {
	return strings.TrimSpace(c.Model) != "" &&
		strings.TrimSpace(c.Color) != "" &&
		strings.TrimSpace(c.LicensePlate) != ""
}

// Booking mirrors the backend time-slot record. The client never owns or
// mutates it except through the cancel endpoint.
type Booking struct {
	ID           string        `json:"id"`
	ParkingLotID string        `json:"parking_lot_id"`
	LotName      string        `json:"lot_name"`
	LotLocation  string        `json:"lot_location,omitempty"`
	CustomerName string        `json:"customer_name,omitempty"`
	SpotNumber   int           `json:"spot_number"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	Car          CarDetails    `json:"car_details"`
	Payment      PaymentRecord `json:"payment"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at,omitempty"`
}

// TimeStatus compares the interval against now.
func (b Booking) TimeStatus(now time.Time) TimeStatus {
	switch {
	case now.Before(b.StartTime):
		return TimeStatusUpcoming
	case now.Before(b.EndTime):
		return TimeStatusActive
	default:
		return TimeStatusPast
	}
}

type AvailabilityRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}
