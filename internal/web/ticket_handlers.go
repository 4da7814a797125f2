package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/ticket"
)

// findBooking locates a booking by ID among the caller's own bookings,
// falling back to the company list for operators. Tickets render only
// from data the caller is already allowed to see.
func (s *Server) findBooking(r *http.Request, id string) (*entities.Booking, error) {
	sess := s.currentSession(r)

	bookings, err := s.client.History(r.Context(), sess.Token)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if b.ID == id {
			return &b, nil
		}
	}

	if company, err := s.client.CompanyHistory(r.Context(), sess.Token); err == nil {
		for _, b := range company {
			if b.ID == id {
				return &b, nil
			}
		}
	}
	return nil, nil
}

func (s *Server) ticketFor(w http.ResponseWriter, r *http.Request) (ticket.Ticket, bool) {
	b, err := s.findBooking(r, mux.Vars(r)["id"])
	if err != nil {
		writeBackendError(w, err)
		return ticket.Ticket{}, false
	}
	if b == nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return ticket.Ticket{}, false
	}
	return ticket.FromBooking(*b, s.cfg.PublicURL), true
}

func (s *Server) handleTicketHTML(w http.ResponseWriter, r *http.Request) {
	t, ok := s.ticketFor(w, r)
	if !ok {
		return
	}
	page, err := t.RenderHTML()
	if err != nil {
		s.log.Error().Err(err).Str("booking_id", t.BookingID).Msg("ticket render failed")
		writeError(w, http.StatusInternalServerError, "could not render ticket")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

func (s *Server) handleTicketQR(w http.ResponseWriter, r *http.Request) {
	t, ok := s.ticketFor(w, r)
	if !ok {
		return
	}

	size := 256
	if v := r.URL.Query().Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 64 && n <= 1024 {
			size = n
		}
	}

	png, err := t.QRPNG(size)
	if err != nil {
		s.log.Error().Err(err).Str("booking_id", t.BookingID).Msg("ticket QR failed")
		writeError(w, http.StatusInternalServerError, "could not render QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (s *Server) handleTicketPDF(w http.ResponseWriter, r *http.Request) {
	t, ok := s.ticketFor(w, r)
	if !ok {
		return
	}
	pdf, err := t.RenderPDF()
	if err != nil {
		s.log.Error().Err(err).Str("booking_id", t.BookingID).Msg("ticket PDF failed")
		writeError(w, http.StatusInternalServerError, "could not render PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`inline; filename="parkaccess-ticket-%s.pdf"`, t.BookingID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

type shareTicketRequest struct {
	Method string `json:"method"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// handleShareTicket delivers the e-ticket on explicit request, by email
// with the PDF attached or by SMS with the lookup link.
func (s *Server) handleShareTicket(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	t, ok := s.ticketFor(w, r)
	if !ok {
		return
	}

	var req shareTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	switch req.Method {
	case "email":
		to := req.Email
		if to == "" {
			to = sess.User.Email
		}
		if err := s.sharer.ShareByEmail(t, to, sess.User.Name); err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "ticket sent to " + to})
	case "sms":
		to := req.Phone
		if to == "" {
			to = sess.User.Phone
		}
		if to == "" {
			writeError(w, http.StatusBadRequest, "a phone number is required")
			return
		}
		if err := s.sharer.ShareBySMS(t, to); err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "ticket sent to " + to})
	default:
		writeError(w, http.StatusBadRequest, "share method must be email or sms")
	}
}
