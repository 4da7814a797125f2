package web

import (
	"net/http"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/checkout"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/metrics"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/paystack"
)

// handleCheckoutView shows the payment summary. Without complete
// checkout state (lost session, direct navigation) the user is sent
// back to the listing; no payment call is ever attempted from here.
func (s *Server) handleCheckoutView(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if !sess.Checkout.Complete() {
		http.Redirect(w, r, "/api/lots", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, sess.Checkout)
}

// handlePay opens the gateway payment page for the pending checkout and
// returns the URL the browser must follow.
func (s *Server) handlePay(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if !sess.Checkout.Complete() {
		http.Redirect(w, r, "/api/lots", http.StatusSeeOther)
		return
	}

	url, err := s.checkout.Start(r.Context(), sess.Checkout)
	s.saveSession(r.Context(), sess)
	if err != nil {
		if sess.Checkout.State == checkout.StateFailed {
			metrics.IncPaymentOutcome("failed")
			writeError(w, http.StatusBadGateway, sess.Checkout.Message)
			return
		}
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"authorization_url": url})
}

// handlePaymentCallback is the gateway success redirect. The outcome is
// settled only by verifying the reference with the backend.
func (s *Server) handlePaymentCallback(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if !sess.Checkout.Complete() {
		http.Redirect(w, r, "/api/lots", http.StatusSeeOther)
		return
	}

	ref, err := paystack.ReferenceFromCallback(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if ref != sess.Checkout.Reference {
		writeError(w, http.StatusBadRequest, "transaction reference does not match this checkout")
		return
	}

	if err := s.checkout.HandleReturn(r.Context(), sess.Token, sess.Checkout); err != nil {
		s.saveSession(r.Context(), sess)
		metrics.IncPaymentOutcome("failed")
		writeError(w, http.StatusPaymentRequired, sess.Checkout.Message)
		return
	}

	// A settled payment ends the booking attempt.
	sess.Flow = nil
	s.saveSession(r.Context(), sess)
	metrics.IncPaymentOutcome("success")
	writeJSON(w, http.StatusOK, sess.Checkout)
}

// handlePaymentCancel is the gateway cancel redirect. Cancelling is not
// a failure: the checkout returns to pending so the user can pay again.
func (s *Server) handlePaymentCancel(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if !sess.Checkout.Complete() {
		http.Redirect(w, r, "/api/lots", http.StatusSeeOther)
		return
	}

	s.checkout.Cancel(sess.Checkout)
	s.saveSession(r.Context(), sess)
	metrics.IncPaymentOutcome("cancelled")
	writeJSON(w, http.StatusOK, sess.Checkout)
}

func (s *Server) handleRetryPayment(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(r)
	if !sess.Checkout.Complete() {
		http.Redirect(w, r, "/api/lots", http.StatusSeeOther)
		return
	}

	if err := s.checkout.Retry(sess.Checkout); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	s.saveSession(r.Context(), sess)
	writeJSON(w, http.StatusOK, sess.Checkout)
}
