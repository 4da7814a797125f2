// Package session replaces the original client's ambient token storage
// with an explicit session context: created at sign-in, destroyed at
// sign-out, carrying the bearer token and the transient workflow state
// of the current booking attempt.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/booking"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/checkout"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

type Session struct {
	ID        string             `json:"id"`
	Token     string             `json:"token"`
	User      entities.User      `json:"user"`
	CreatedAt time.Time          `json:"created_at"`
	ExpiresAt time.Time          `json:"expires_at"`
	Flow      *booking.Flow      `json:"flow,omitempty"`
	Checkout  *checkout.Checkout `json:"checkout,omitempty"`
}

// New creates a session for a signed-in user. Expiry follows the
// backend token's exp claim when one can be read, else now+fallback.
func New(token string, user entities.User, fallback time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: expiryFromToken(token, now.Add(fallback)),
	}
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// expiryFromToken reads the exp claim without verifying the signature;
// the backend remains the authority on token validity, this only sizes
// the session's lifetime.
func expiryFromToken(token string, fallback time.Time) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fallback
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	return exp.Time
}
