package booking

import (
	"fmt"
	"math"
	"time"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

// State gates progression through the booking flow. The only transition
// to Confirmed is a successful availability check for the exact interval
// currently held by the flow; any edit to the interval drops back to
// Unconfirmed. The backend stays the sole source of truth for conflicts.
type State string

const (
	StateUnconfirmed State = "unconfirmed"
	StateConfirmed   State = "confirmed"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Flow is the transient per-session state of one booking attempt for a
// single parking lot. It is JSON-serializable so it can live in the
// session store; losing the session loses the attempt, which is accepted.
type Flow struct {
	LotID      string              `json:"lot_id"`
	LotName    string              `json:"lot_name"`
	HourlyRate float64             `json:"hourly_rate"`
	Date       string              `json:"date"`
	StartTime  string              `json:"start_time"`
	EndTime    string              `json:"end_time"`
	Car        entities.CarDetails `json:"car_details"`
	State      State               `json:"state"`
}

func NewFlow(lot *entities.ParkingLot) *Flow {
	return &Flow{
		LotID:      lot.ID,
		LotName:    lot.Name,
		HourlyRate: lot.HourlyRate,
		State:      StateUnconfirmed,
	}
}

// SetTimes records the candidate interval. This is the single place the
// reset rule lives: every call invalidates a prior confirmation, even
// when the values are unchanged.
func (f *Flow) SetTimes(date, start, end string) {
	f.Date = date
	f.StartTime = start
	f.EndTime = end
	f.State = StateUnconfirmed
}

func (f *Flow) SetCar(car entities.CarDetails) {
	f.Car = car
}

// Interval parses the selected date and times. End must be strictly
// after start on the same date; violations are reported before any
// request is made.
func (f *Flow) Interval() (time.Time, time.Time, error) {
	if f.Date == "" || f.StartTime == "" || f.EndTime == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("date, start time and end time are required")
	}
	start, err := time.Parse(dateLayout+" "+timeLayout, f.Date+" "+f.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := time.Parse(dateLayout+" "+timeLayout, f.Date+" "+f.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time: %w", err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end time must be after start time")
	}
	return start, end, nil
}

// Hours returns the duration of the selected interval in fractional
// hours, clamped to zero when the interval is unparseable or inverted.
func (f *Flow) Hours() float64 {
	start, end, err := f.Interval()
	if err != nil {
		return 0
	}
	hours := end.Sub(start).Hours()
	return math.Max(hours, 0)
}

// Amount is the charge in minor currency units (kobo):
// round(hours × hourlyRate × 100).
func (f *Flow) Amount() int64 {
	return int64(math.Round(f.Hours() * f.HourlyRate * 100))
}
