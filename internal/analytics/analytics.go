package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

// Service fetches the company dashboard figures. Aggregation is
// backend-side; this only fetches and shapes for display.
type Service struct {
	client *backend.Client
	log    zerolog.Logger
}

func NewService(client *backend.Client, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		log:    logger.With().Str("component", "analytics").Logger(),
	}
}

func (s *Service) Summary(ctx context.Context, token string) (*entities.CompanySummary, error) {
	return s.client.CompanySummary(ctx, token)
}

// RevenueSeries is the chart-ready shape: labels plus naira amounts.
type RevenueSeries struct {
	Labels  []string  `json:"labels"`
	Amounts []float64 `json:"amounts"`
}

func (s *Service) RevenueChart(ctx context.Context, token string) (*RevenueSeries, error) {
	points, err := s.client.RevenueChart(ctx, token)
	if err != nil {
		return nil, err
	}

	series := &RevenueSeries{
		Labels:  make([]string, 0, len(points)),
		Amounts: make([]float64, 0, len(points)),
	}
	for _, p := range points {
		series.Labels = append(series.Labels, p.Date)
		series.Amounts = append(series.Amounts, float64(p.Amount)/100)
	}
	return series, nil
}

var exportHeaders = []string{"Booking ID", "Customer", "Lot", "Plate", "Spot", "Start", "End", "Status", "Amount"}

// ExportHistoryXLSX writes the company booking list to an Excel
// workbook for download.
func ExportHistoryXLSX(bookings []entities.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, b := range bookings {
		values := []interface{}{
			b.ID,
			b.CustomerName,
			b.LotName,
			b.Car.LicensePlate,
			b.SpotNumber,
			b.StartTime.Format(time.RFC3339),
			b.EndTime.Format(time.RFC3339),
			b.Status,
			entities.FormatKobo(b.Payment.Amount),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write bookings workbook: %w", err)
	}
	return buf.Bytes(), nil
}
