package web

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/analytics"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/booking"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/checkout"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/config"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/history"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/metrics"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/session"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/ticket"
)

// Server glues the workflow services to HTTP. Handlers stay thin:
// decode, delegate, encode.
type Server struct {
	cfg       *config.Config
	log       zerolog.Logger
	store     session.Store
	client    *backend.Client
	booking   *booking.Service
	checkout  *checkout.Controller
	history   *history.Service
	analytics *analytics.Service
	sharer    *ticket.Sharer
	limiter   *rateLimiter
}

func NewServer(
	cfg *config.Config,
	logger zerolog.Logger,
	store session.Store,
	client *backend.Client,
	bookingSvc *booking.Service,
	checkoutCtrl *checkout.Controller,
	historySvc *history.Service,
	analyticsSvc *analytics.Service,
	sharer *ticket.Sharer,
) *Server {
	return &Server{
		cfg:       cfg,
		log:       logger.With().Str("component", "web").Logger(),
		store:     store,
		client:    client,
		booking:   bookingSvc,
		checkout:  checkoutCtrl,
		history:   historySvc,
		analytics: analyticsSvc,
		sharer:    sharer,
		limiter:   newRateLimiter(cfg.RateLimit),
	}
}

func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.metricsMiddleware) // inside mux so the route template resolves

	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Public endpoints
	r.HandleFunc("/api/auth/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/api/auth/login", s.handleLogin).Methods("POST")
	r.HandleFunc("/api/lots", s.handleListLots).Methods("GET")
	r.HandleFunc("/api/lots/search", s.handleSearchLots).Methods("GET")
	r.HandleFunc("/api/lots/{id}", s.handleGetLot).Methods("GET")

	// Authenticated endpoints
	auth := r.NewRoute().Subrouter()
	auth.Use(s.sessionMiddleware)
	auth.HandleFunc("/api/auth/logout", s.handleLogout).Methods("POST")
	auth.HandleFunc("/api/auth/me", s.handleMe).Methods("GET")
	auth.HandleFunc("/api/auth/profile", s.handleUpdateProfile).Methods("PUT")
	auth.HandleFunc("/api/auth/password", s.handleChangePassword).Methods("PUT")

	auth.HandleFunc("/api/lots", s.handleCreateLot).Methods("POST")
	auth.HandleFunc("/api/lots/{id}", s.handleUpdateLot).Methods("PUT")
	auth.HandleFunc("/api/lots/{id}", s.handleDeleteLot).Methods("DELETE")

	auth.HandleFunc("/api/lots/{id}/booking", s.handleStartBooking).Methods("POST")
	auth.HandleFunc("/api/booking", s.handleGetBooking).Methods("GET")
	auth.HandleFunc("/api/booking/times", s.handleSetTimes).Methods("PUT")
	auth.HandleFunc("/api/booking/availability", s.handleCheckAvailability).Methods("POST")
	auth.HandleFunc("/api/booking/car", s.handleSetCar).Methods("PUT")
	auth.HandleFunc("/api/booking/book", s.handleBookSlot).Methods("POST")

	auth.HandleFunc("/checkout", s.handleCheckoutView).Methods("GET")
	auth.HandleFunc("/checkout/pay", s.handlePay).Methods("POST")
	auth.HandleFunc("/checkout/callback", s.handlePaymentCallback).Methods("GET")
	auth.HandleFunc("/checkout/cancel", s.handlePaymentCancel).Methods("GET")
	auth.HandleFunc("/checkout/retry", s.handleRetryPayment).Methods("POST")

	auth.HandleFunc("/api/history", s.handleUserHistory).Methods("GET")
	auth.HandleFunc("/api/bookings/{id}/cancel-notice", s.handleCancelNotice).Methods("GET")
	auth.HandleFunc("/api/bookings/{id}/cancel", s.handleCancelBooking).Methods("POST")

	auth.HandleFunc("/api/company/history", s.handleCompanyHistory).Methods("GET")
	auth.HandleFunc("/api/company/history/export", s.handleExportHistory).Methods("GET")
	auth.HandleFunc("/api/company/summary", s.handleCompanySummary).Methods("GET")
	auth.HandleFunc("/api/company/revenue-chart", s.handleRevenueChart).Methods("GET")

	auth.HandleFunc("/tickets/{id}", s.handleTicketHTML).Methods("GET")
	auth.HandleFunc("/tickets/{id}/qr.png", s.handleTicketQR).Methods("GET")
	auth.HandleFunc("/tickets/{id}/pdf", s.handleTicketPDF).Methods("GET")
	auth.HandleFunc("/api/tickets/{id}/share", s.handleShareTicket).Methods("POST")

	var h http.Handler = r
	h = s.rateLimitMiddleware(h)
	h = s.requestIDMiddleware(h)
	h = handlers.RecoveryHandler()(h)
	h = handlers.CompressHandler(h)
	return h
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
