package ticket

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF lays out a single-page e-ticket with the QR code top right.
func (t Ticket) RenderPDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "ParkAccess e-Ticket")
	pdf.Ln(16)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 52, "F")

	pdf.SetXY(20, yStart+6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "BOOKING SUMMARY")
	pdf.Ln(9)
	pdf.SetX(20)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Booking ID: %s", t.BookingID))
	pdf.Ln(6)
	pdf.SetX(20)
	pdf.Cell(0, 7, fmt.Sprintf("Lot: %s  (Spot #%d)", t.LotName, t.SpotNumber))
	pdf.Ln(6)
	pdf.SetX(20)
	pdf.Cell(0, 7, fmt.Sprintf("Check-in: %s", t.CheckIn))
	pdf.Ln(6)
	pdf.SetX(20)
	pdf.Cell(0, 7, fmt.Sprintf("Check-out: %s", t.CheckOut))

	qrBytes, err := t.QRPNG(256)
	if err != nil {
		return nil, err
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 148, yStart+4, 44, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 58)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Scan this QR code at the gate for entry verification.")
	pdf.Ln(10)

	drawSection(pdf, "VEHICLE")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%s (%s)  Plate: %s", t.CarModel, t.CarColor, t.LicensePlate))
	pdf.Ln(12)

	drawSection(pdf, "PAYMENT")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Amount paid: %s", t.AmountPaid))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Reference: %s", t.Reference))
	pdf.Ln(6)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 283, 195, 283)
	pdf.SetY(286)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("© %d ParkAccess. All rights reserved.", t.Year), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write ticket PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func drawSection(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
	pdf.Ln(2)
}
