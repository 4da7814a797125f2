package web

import (
	"encoding/json"
	"net/http"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/session"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req entities.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	resp, err := s.client.Register(r.Context(), req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	s.startSession(w, r, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req entities.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	resp, err := s.client.Login(r.Context(), req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	s.startSession(w, r, resp)
}

// startSession creates the explicit session context for a signed-in
// user and hands the browser its cookie.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, auth *entities.AuthResponse) {
	sess := session.New(auth.Token, auth.User, s.cfg.Session.TTL)
	if err := s.store.Put(r.Context(), sess); err != nil {
		s.log.Error().Err(err).Msg("failed to create session")
		writeError(w, http.StatusInternalServerError, "could not create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Session.CookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, auth.User)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		s.log.Error().Err(err).Msg("failed to delete session")
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	user, err := s.client.Me(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	var req entities.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	user, err := s.client.UpdateProfile(r.Context(), sess.Token, req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	sess.User = *user
	s.saveSession(r.Context(), sess)
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	var req entities.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := s.client.ChangePassword(r.Context(), sess.Token, req); err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
