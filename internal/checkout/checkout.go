package checkout

import (
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

// State is the payment leg of a booking attempt.
//
//	pending -> processing -> success | failed
//	failed  -> pending (explicit retry)
//	processing -> pending (gateway cancel; not a failure)
//
// success is terminal for the session.
type State string

const (
	StatePending    State = "pending"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// Checkout is the transient navigation state carried from booking into
// payment. It is JSON-serializable for the session store; a lost session
// loses it, and the guard below sends the user back to the listing.
type Checkout struct {
	Reference        string              `json:"reference"`
	AccessCode       string              `json:"access_code,omitempty"`
	AuthorizationURL string              `json:"authorization_url,omitempty"`
	LotID            string              `json:"lot_id"`
	LotName          string              `json:"lot_name"`
	SpotNumber       int                 `json:"spot_number"`
	TimeSlot         entities.Booking    `json:"time_slot"`
	Car              entities.CarDetails `json:"car_details"`
	Email            string              `json:"email"`
	Amount           int64               `json:"amount"`
	State            State               `json:"state"`
	Message          string              `json:"message,omitempty"`
}

func New(init *entities.PaymentInit, lot *entities.ParkingLot, car entities.CarDetails, email string) *Checkout {
	return &Checkout{
		Reference:        init.Reference,
		AccessCode:       init.AccessCode,
		AuthorizationURL: init.AuthorizationURL,
		LotID:            lot.ID,
		LotName:          lot.Name,
		SpotNumber:       init.SpotNumber,
		TimeSlot:         init.TimeSlot,
		Car:              car,
		Email:            email,
		Amount:           init.Amount,
		State:            StatePending,
	}
}

// Complete is the entry guard: time-slot, reference, car details and
// parking lot must all be present before any payment call is attempted.
func (c *Checkout) Complete() bool {
	if c == nil {
		return false
	}
	return c.Reference != "" && c.LotID != "" && c.TimeSlot.ID != "" && c.Car.Complete()
}
