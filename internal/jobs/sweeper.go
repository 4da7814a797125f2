// Package jobs runs the background maintenance schedule: expired
// sessions (and the booking/checkout state they carry) are swept so
// abandoned attempts do not accumulate.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/session"
)

type Sweeper struct {
	store session.Store
	log   zerolog.Logger
}

func NewSweeper(store session.Store, logger zerolog.Logger) *Sweeper {
	return &Sweeper{
		store: store,
		log:   logger.With().Str("component", "jobs").Logger(),
	}
}

// Run removes expired sessions. No backend call is made for abandoned
// checkouts; the platform expires unpaid initializations itself.
func (s *Sweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.store.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("session sweep failed")
		return
	}
	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("expired sessions swept")
	}
}

// Schedule registers the sweeper on the given cron spec and starts the
// scheduler. The returned cron must be stopped on shutdown.
func Schedule(spec string, sweeper *Sweeper) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddJob(spec, sweeper); err != nil {
		return nil, fmt.Errorf("schedule session sweep: %w", err)
	}
	c.Start()
	return c, nil
}
