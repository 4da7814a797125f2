package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

func (s *Server) handleListLots(w http.ResponseWriter, r *http.Request) {
	lots, err := s.client.ListLots(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lots)
}

func (s *Server) handleSearchLots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lots, err := s.client.SearchLots(r.Context(), entities.LotSearchRequest{
		Location:  q.Get("location"),
		Date:      q.Get("date"),
		StartTime: q.Get("start_time"),
		EndTime:   q.Get("end_time"),
	})
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lots)
}

func (s *Server) handleGetLot(w http.ResponseWriter, r *http.Request) {
	lot, err := s.client.GetLot(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lot)
}

func (s *Server) handleCreateLot(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	var req entities.LotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	lot, err := s.client.CreateLot(r.Context(), sess.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lot)
}

func (s *Server) handleUpdateLot(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	var req entities.LotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	lot, err := s.client.UpdateLot(r.Context(), sess.Token, mux.Vars(r)["id"], req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lot)
}

func (s *Server) handleDeleteLot(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if err := s.client.DeleteLot(r.Context(), sess.Token, mux.Vars(r)["id"]); err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "parking lot deleted"})
}
