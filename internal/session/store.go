package session

import "context"

// Store persists sessions by ID. Get returns (nil, nil) for missing or
// expired sessions.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes expired sessions and reports how many went.
	// Backends with native TTL may have nothing to do.
	DeleteExpired(ctx context.Context) (int, error)
}
