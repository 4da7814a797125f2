package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, zerolog.Nop()), srv
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":"u1","name":"Ada","email":"ada@example.com","role":"user"}`))
	}))
	defer srv.Close()

	user, err := client.Me(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "Ada", user.Name)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := client.ListLots(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientSurfacesServerMessage(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"slot already booked"}`))
	}))
	defer srv.Close()

	_, err := client.CheckAvailability(context.Background(), "tok", "lot-1", time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "slot already booked", apiErr.Message)
}

func TestClientFallbackOnUnparseableBody(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>upstream down</html>`))
	}))
	defer srv.Close()

	_, err := client.Me(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: Bad Gateway", err.Error())
	assert.True(t, IsStatus(err, http.StatusBadGateway))
}

func TestClientSerializesJSONBody(t *testing.T) {
	var gotContentType string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"token":"t","user":{"id":"u1","role":"user"}}`))
	}))
	defer srv.Close()

	resp, err := client.Login(context.Background(), entities.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "t", resp.Token)
}

func TestVerifyPaymentPathEscapesReference(t *testing.T) {
	var gotPath string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":"success","payment":{"status":"paid","amount":150000,"reference":"ref-1"}}`))
	}))
	defer srv.Close()

	resp, err := client.VerifyPayment(context.Background(), "tok", "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "/payments/verify/ref-1", gotPath)
	assert.Equal(t, int64(150000), resp.Payment.Amount)
}
