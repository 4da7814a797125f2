package booking

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

// Service sequences one booking attempt: select time, check availability,
// enter vehicle details, submit for payment initialization.
type Service struct {
	client *backend.Client
	log    zerolog.Logger
}

func NewService(client *backend.Client, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		log:    logger.With().Str("component", "booking").Logger(),
	}
}

// CheckAvailability validates the interval locally, then asks the backend
// whether the exact (lot, start, end) tuple is free. Only a successful
// check confirms the flow; every failure, including network errors,
// leaves it unconfirmed.
func (s *Service) CheckAvailability(ctx context.Context, token string, flow *Flow) (*entities.AvailabilityResponse, error) {
	start, end, err := flow.Interval()
	if err != nil {
		flow.State = StateUnconfirmed
		return nil, err
	}

	resp, err := s.client.CheckAvailability(ctx, token, flow.LotID, start, end)
	if err != nil {
		flow.State = StateUnconfirmed
		return nil, err
	}
	if !resp.Available {
		flow.State = StateUnconfirmed
		return resp, nil
	}

	flow.State = StateConfirmed
	s.log.Debug().Str("lot_id", flow.LotID).Time("start", start).Time("end", end).
		Msg("availability confirmed")
	return resp, nil
}

// BookSlot requires a confirmed flow and complete vehicle details, then
// initializes payment for round(hours × hourlyRate × 100) minor units.
// The returned hand-off carries the created time-slot, the gateway
// reference and the assigned spot number.
func (s *Service) BookSlot(ctx context.Context, token string, flow *Flow) (*entities.PaymentInit, error) {
	if flow.State != StateConfirmed {
		return nil, fmt.Errorf("availability must be confirmed before booking")
	}
	if !flow.Car.Complete() {
		return nil, fmt.Errorf("car model, color and license plate are required")
	}
	if err := flow.Car.Validate(); err != nil {
		return nil, err
	}

	start, end, err := flow.Interval()
	if err != nil {
		return nil, err
	}

	init, err := s.client.InitializePayment(ctx, token, entities.InitializePaymentRequest{
		ParkingLotID: flow.LotID,
		StartTime:    start,
		EndTime:      end,
		Car:          flow.Car,
		Amount:       flow.Amount(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("lot_id", flow.LotID).Str("reference", init.Reference).
		Int("spot", init.SpotNumber).Int64("amount", init.Amount).
		Msg("payment initialized")
	return init, nil
}
