package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/analytics"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/booking"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/checkout"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/config"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/history"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/jobs"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/logging"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/metrics"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/paystack"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/session"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/ticket"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	metrics.Register()

	var store session.Store
	if cfg.Session.RedisAddr != "" {
		store = session.NewRedisStore(session.NewRedisClient(
			cfg.Session.RedisAddr, cfg.Session.RedisPassword, cfg.Session.RedisDB))
		logger.Info().Str("addr", cfg.Session.RedisAddr).Msg("using redis session store")
	} else {
		store = session.NewMemoryStore()
		logger.Info().Msg("using in-memory session store")
	}

	client := backend.NewClient(cfg.Backend.BaseURL, logger)
	provider := paystack.NewProvider(paystack.Config{
		PublicKey:   cfg.Paystack.PublicKey,
		CallbackURL: cfg.PublicURL + "/checkout/callback",
		CancelURL:   cfg.PublicURL + "/checkout/cancel",
	}, logger)

	srv := web.NewServer(
		cfg,
		logger,
		store,
		client,
		booking.NewService(client, logger),
		checkout.NewController(client, provider, logger),
		history.NewService(client, logger),
		analytics.NewService(client, logger),
		ticket.NewSharer(ticket.ShareConfig(cfg.Share), logger),
	)

	sweeper, err := jobs.Schedule(cfg.SweepSpec, jobs.NewSweeper(store, logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("could not start session sweeper")
	}
	defer sweeper.Stop()

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown did not complete cleanly")
	}
	logger.Info().Msg("server stopped")
}
