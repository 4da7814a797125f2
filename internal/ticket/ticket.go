package ticket

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

//go:embed templates/eticket.html
var templateFS embed.FS

var eticketTmpl = template.Must(template.ParseFS(templateFS, "templates/eticket.html"))

// Ticket is a pure presentation transform of an already-fetched booking.
// Building and rendering it performs no backend calls; the QR encodes a
// lookup URL, never the ticket payload itself.
type Ticket struct {
	BookingID    string
	LotName      string
	LotLocation  string
	SpotNumber   int
	CustomerName string
	CarModel     string
	CarColor     string
	LicensePlate string
	CheckIn      string
	CheckOut     string
	AmountPaid   string
	Reference    string
	Status       string
	LookupURL    string
	Year         int
}

// FromBooking shapes a booking for rendering. baseURL is this
// application's public URL; the ticket link points back at it.
func FromBooking(b entities.Booking, baseURL string) Ticket {
	const layout = "02 Jan 2006 15:04"
	return Ticket{
		BookingID:    b.ID,
		LotName:      b.LotName,
		LotLocation:  b.LotLocation,
		SpotNumber:   b.SpotNumber,
		CustomerName: b.CustomerName,
		CarModel:     b.Car.Model,
		CarColor:     b.Car.Color,
		LicensePlate: b.Car.LicensePlate,
		CheckIn:      b.StartTime.Format(layout),
		CheckOut:     b.EndTime.Format(layout),
		AmountPaid:   entities.FormatKobo(b.Payment.Amount),
		Reference:    b.Payment.Reference,
		Status:       b.Status,
		LookupURL:    strings.TrimRight(baseURL, "/") + "/tickets/" + b.ID,
		Year:         time.Now().Year(),
	}
}

// QRPNG encodes the lookup URL as a PNG QR code.
func (t Ticket) QRPNG(size int) ([]byte, error) {
	png, err := qrcode.Encode(t.LookupURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode ticket QR: %w", err)
	}
	return png, nil
}

// RenderHTML produces the printable e-ticket page.
func (t Ticket) RenderHTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := eticketTmpl.Execute(&buf, t); err != nil {
		return nil, fmt.Errorf("render ticket template: %w", err)
	}
	return buf.Bytes(), nil
}
