package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/booking"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1", "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestNewSessionExpiryFromTokenClaims(t *testing.T) {
	exp := time.Now().Add(6 * time.Hour).Truncate(time.Second)
	s := New(signedToken(t, exp), entities.User{ID: "u1"}, time.Hour)
	assert.WithinDuration(t, exp, s.ExpiresAt, time.Second)
	assert.NotEmpty(t, s.ID)
}

func TestNewSessionFallbackExpiry(t *testing.T) {
	s := New("not-a-jwt", entities.User{ID: "u1"}, 2*time.Hour)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), s.ExpiresAt, 5*time.Second)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := New("not-a-jwt", entities.User{ID: "u1", Email: "ada@example.com"}, time.Hour)
	s.Flow = &booking.Flow{LotID: "lot-1", State: booking.StateConfirmed}
	require.NoError(t, store.Put(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada@example.com", got.User.Email)
	require.NotNil(t, got.Flow)
	assert.Equal(t, booking.StateConfirmed, got.Flow.State)

	require.NoError(t, store.Delete(ctx, s.ID))
	got, err = store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	fresh := New("not-a-jwt", entities.User{ID: "u1"}, time.Hour)
	stale := New("not-a-jwt", entities.User{ID: "u2"}, time.Hour)
	stale.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Put(ctx, fresh))
	require.NoError(t, store.Put(ctx, stale))

	got, err := store.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed) // Get already dropped the stale one

	stale2 := New("not-a-jwt", entities.User{ID: "u3"}, time.Hour)
	stale2.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Put(ctx, stale2))
	removed, err = store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(NewRedisClient(mr.Addr(), "", 0))
	ctx := context.Background()

	s := New("not-a-jwt", entities.User{ID: "u1", Role: "company"}, time.Hour)
	require.NoError(t, store.Put(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "company", got.User.Role)

	require.NoError(t, store.Delete(ctx, s.ID))
	got, err = store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(NewRedisClient(mr.Addr(), "", 0))
	ctx := context.Background()

	s := New("not-a-jwt", entities.User{ID: "u1"}, time.Hour)
	require.NoError(t, store.Put(ctx, s))

	mr.FastForward(2 * time.Hour)
	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
