package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/analytics"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/history"
)

func (s *Server) handleUserHistory(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	partition, err := s.history.UserHistory(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partition)
}

// handleCancelNotice returns the refund policy text for the cancel
// confirmation dialog, along with whether cancelling is possible at all.
func (s *Server) handleCancelNotice(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	id := mux.Vars(r)["id"]

	bookings, err := s.client.History(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}

	now := time.Now()
	for _, b := range bookings {
		if b.ID != id {
			continue
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"can_cancel": history.CanCancel(b, now),
			"notice":     history.RefundNotice(b, now),
		})
		return
	}
	writeError(w, http.StatusNotFound, "booking not found")
}

func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	id := mux.Vars(r)["id"]

	bookings, err := s.client.History(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}

	remaining, err := s.history.Cancel(r.Context(), sess.Token, bookings, id)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			writeBackendError(w, err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, history.PartitionByTime(remaining, time.Now()))
}

func (s *Server) handleCompanyHistory(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	bookings, err := s.history.CompanyHistory(r.Context(), sess.Token, r.URL.Query().Get("q"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// handleExportHistory downloads the company booking list as an Excel
// workbook, honoring the same substring filter as the history view.
func (s *Server) handleExportHistory(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	bookings, err := s.history.CompanyHistory(r.Context(), sess.Token, r.URL.Query().Get("q"))
	if err != nil {
		writeBackendError(w, err)
		return
	}

	data, err := analytics.ExportHistoryXLSX(bookings)
	if err != nil {
		s.log.Error().Err(err).Msg("export workbook failed")
		writeError(w, http.StatusInternalServerError, "could not generate export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleCompanySummary(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	summary, err := s.analytics.Summary(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleRevenueChart(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	series, err := s.analytics.RevenueChart(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}
