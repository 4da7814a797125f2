package history

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

// Service lists a user's or company's bookings and orchestrates
// cancellation of upcoming ones.
type Service struct {
	client *backend.Client
	log    zerolog.Logger
	now    func() time.Time
}

func NewService(client *backend.Client, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		log:    logger.With().Str("component", "history").Logger(),
		now:    time.Now,
	}
}

// UserHistory fetches the caller's bookings and partitions them locally.
// The backend also returns partitions, but re-deriving here keeps the
// tabs consistent with what the ticket view computes.
func (s *Service) UserHistory(ctx context.Context, token string) (Partition, error) {
	bookings, err := s.client.History(ctx, token)
	if err != nil {
		return Partition{}, err
	}
	return PartitionByTime(bookings, s.now()), nil
}

// CompanyHistory fetches the company's bookings with optional
// client-side substring filtering.
func (s *Service) CompanyHistory(ctx context.Context, token, query string) ([]entities.Booking, error) {
	bookings, err := s.client.CompanyHistory(ctx, token)
	if err != nil {
		return nil, err
	}
	return Filter(bookings, query), nil
}

// Cancel cancels one upcoming booking from the given list and returns
// the list without it. Removal happens only after the backend has
// confirmed the cancellation; on any error the original list comes back
// unchanged.
func (s *Service) Cancel(ctx context.Context, token string, bookings []entities.Booking, id string) ([]entities.Booking, error) {
	idx := -1
	for i, b := range bookings {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return bookings, fmt.Errorf("booking %s not found", id)
	}
	if !CanCancel(bookings[idx], s.now()) {
		return bookings, fmt.Errorf("only upcoming bookings can be cancelled")
	}

	if err := s.client.CancelTimeSlot(ctx, token, id); err != nil {
		return bookings, err
	}

	out := make([]entities.Booking, 0, len(bookings)-1)
	out = append(out, bookings[:idx]...)
	out = append(out, bookings[idx+1:]...)
	s.log.Info().Str("booking_id", id).Msg("booking cancelled")
	return out, nil
}
