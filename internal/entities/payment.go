package entities

import (
	"fmt"
	"time"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// PaymentRecord is backend-authoritative. Amount is in kobo (1/100 of the
// display currency); it is only divided by 100 at render time.
type PaymentRecord struct {
	Status    string     `json:"status"`
	Amount    int64      `json:"amount"`
	Reference string     `json:"reference"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

type InitializePaymentRequest struct {
	ParkingLotID string     `json:"parking_lot_id"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Car          CarDetails `json:"car_details"`
	Amount       int64      `json:"amount"`
}

// PaymentInit is the hand-off from payment initialization to checkout:
// the created time-slot, gateway reference and assigned spot number.
type PaymentInit struct {
	Reference        string  `json:"reference"`
	AccessCode       string  `json:"access_code,omitempty"`
	AuthorizationURL string  `json:"authorization_url,omitempty"`
	Amount           int64   `json:"amount"`
	SpotNumber       int     `json:"spot_number"`
	TimeSlot         Booking `json:"time_slot"`
}

type VerifyPaymentResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
	Payment PaymentRecord `json:"payment"`
	Booking Booking       `json:"booking"`
}

// FormatKobo renders a minor-unit amount for display, e.g. 150000 -> "₦1500.00".
func FormatKobo(amount int64) string {
	return fmt.Sprintf("₦%.2f", float64(amount)/100)
}
