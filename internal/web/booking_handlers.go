package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/booking"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/checkout"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/metrics"
)

// handleStartBooking begins a fresh booking attempt for one lot. Any
// previous attempt, including a pending checkout, is discarded.
func (s *Server) handleStartBooking(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	lot, err := s.client.GetLot(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeBackendError(w, err)
		return
	}

	sess.Flow = booking.NewFlow(lot)
	sess.Checkout = nil
	s.saveSession(r.Context(), sess)
	metrics.IncBookingTransition(string(sess.Flow.State))
	writeJSON(w, http.StatusCreated, sess.Flow)
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess.Flow == nil {
		writeError(w, http.StatusNotFound, "no booking in progress")
		return
	}
	writeJSON(w, http.StatusOK, sess.Flow)
}

// handleSetTimes records the candidate interval. Every edit drops a
// prior availability confirmation, even when the values are identical.
func (s *Server) handleSetTimes(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess.Flow == nil {
		writeError(w, http.StatusNotFound, "no booking in progress")
		return
	}

	var req entities.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	sess.Flow.SetTimes(req.Date, req.StartTime, req.EndTime)
	s.saveSession(r.Context(), sess)
	metrics.IncBookingTransition(string(sess.Flow.State))
	writeJSON(w, http.StatusOK, sess.Flow)
}

func (s *Server) handleCheckAvailability(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess.Flow == nil {
		writeError(w, http.StatusNotFound, "no booking in progress")
		return
	}

	resp, err := s.booking.CheckAvailability(r.Context(), sess.Token, sess.Flow)
	s.saveSession(r.Context(), sess)
	metrics.IncBookingTransition(string(sess.Flow.State))
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			writeBackendError(w, err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetCar(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess.Flow == nil {
		writeError(w, http.StatusNotFound, "no booking in progress")
		return
	}

	var car entities.CarDetails
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := car.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.Flow.SetCar(car)
	s.saveSession(r.Context(), sess)
	writeJSON(w, http.StatusOK, sess.Flow)
}

// handleBookSlot submits the confirmed attempt for payment
// initialization and carries the result into a fresh checkout.
func (s *Server) handleBookSlot(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if sess.Flow == nil {
		writeError(w, http.StatusNotFound, "no booking in progress")
		return
	}

	init, err := s.booking.BookSlot(r.Context(), sess.Token, sess.Flow)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			writeBackendError(w, err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.Checkout = checkout.New(init, &entities.ParkingLot{
		ID:   sess.Flow.LotID,
		Name: sess.Flow.LotName,
	}, sess.Flow.Car, sess.User.Email)
	s.saveSession(r.Context(), sess)
	writeJSON(w, http.StatusCreated, sess.Checkout)
}
