package booking

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

func testLot() *entities.ParkingLot {
	return &entities.ParkingLot{ID: "lot-1", Name: "Marina Central", HourlyRate: 500}
}

func testCar() entities.CarDetails {
	return entities.CarDetails{Model: "Corolla", Color: "Blue", LicensePlate: "KJA-402-HN"}
}

func newService(t *testing.T, handler http.HandlerFunc) (*Service, *int64) {
	t.Helper()
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewService(backend.NewClient(srv.URL, zerolog.Nop()), zerolog.Nop()), &calls
}

func availableHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"available":true}`))
}

func TestCheckAvailabilityRejectsInvertedIntervalWithoutNetworkCall(t *testing.T) {
	svc, calls := newService(t, availableHandler)

	flow := NewFlow(testLot())
	flow.SetTimes("2025-06-15", "14:00", "12:00")

	_, err := svc.CheckAvailability(context.Background(), "tok", flow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end time must be after start time")
	assert.Equal(t, int64(0), atomic.LoadInt64(calls))
	assert.Equal(t, StateUnconfirmed, flow.State)

	// Equal start and end is just as invalid.
	flow.SetTimes("2025-06-15", "12:00", "12:00")
	_, err = svc.CheckAvailability(context.Background(), "tok", flow)
	require.Error(t, err)
	assert.Equal(t, int64(0), atomic.LoadInt64(calls))
}

func TestCheckAvailabilityConfirmsFlow(t *testing.T) {
	svc, calls := newService(t, availableHandler)

	flow := NewFlow(testLot())
	flow.SetTimes("2025-06-15", "12:00", "14:00")

	resp, err := svc.CheckAvailability(context.Background(), "tok", flow)
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, StateConfirmed, flow.State)
	assert.Equal(t, int64(1), atomic.LoadInt64(calls))
}

func TestEditingTimesResetsConfirmation(t *testing.T) {
	svc, _ := newService(t, availableHandler)

	flow := NewFlow(testLot())
	flow.SetTimes("2025-06-15", "12:00", "14:00")
	_, err := svc.CheckAvailability(context.Background(), "tok", flow)
	require.NoError(t, err)
	require.Equal(t, StateConfirmed, flow.State)

	flow.SetTimes("2025-06-15", "12:00", "15:00")
	assert.Equal(t, StateUnconfirmed, flow.State)

	// Re-entering identical values still resets; the backend must be
	// re-consulted for the exact tuple.
	_, err = svc.CheckAvailability(context.Background(), "tok", flow)
	require.NoError(t, err)
	flow.SetTimes("2025-06-15", "12:00", "15:00")
	assert.Equal(t, StateUnconfirmed, flow.State)
}

func TestCheckAvailabilityFailureClearsConfirmation(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"no spots free for this period"}`))
	})

	flow := NewFlow(testLot())
	flow.SetTimes("2025-06-15", "12:00", "14:00")
	flow.State = StateConfirmed // stale confirmation from an earlier tuple

	_, err := svc.CheckAvailability(context.Background(), "tok", flow)
	require.Error(t, err)
	assert.Equal(t, "no spots free for this period", err.Error())
	assert.Equal(t, StateUnconfirmed, flow.State)
}

func TestCheckAvailabilityUnavailableLeavesUnconfirmed(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"available":false,"message":"fully booked"}`))
	})

	flow := NewFlow(testLot())
	flow.SetTimes("2025-06-15", "12:00", "14:00")

	resp, err := svc.CheckAvailability(context.Background(), "tok", flow)
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, StateUnconfirmed, flow.State)
}

func TestAmountMatchesRateTimesHours(t *testing.T) {
	flow := NewFlow(testLot()) // 500 per hour
	flow.SetTimes("2025-06-15", "12:00", "14:00")
	assert.Equal(t, int64(100000), flow.Amount()) // 2h × 500 × 100

	flow.SetTimes("2025-06-15", "12:00", "13:30")
	assert.InDelta(t, 1.5, flow.Hours(), 1e-9)
	assert.Equal(t, int64(75000), flow.Amount())

	// Inverted interval clamps to zero hours.
	flow.SetTimes("2025-06-15", "14:00", "12:00")
	assert.Equal(t, float64(0), flow.Hours())
	assert.Equal(t, int64(0), flow.Amount())
}

func TestBookSlotRequiresConfirmedState(t *testing.T) {
	svc, calls := newService(t, availableHandler)

	flow := NewFlow(testLot())
	flow.SetTimes("2025-06-15", "12:00", "14:00")
	flow.SetCar(testCar())

	_, err := svc.BookSlot(context.Background(), "tok", flow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "availability must be confirmed")
	assert.Equal(t, int64(0), atomic.LoadInt64(calls))
}

func TestBookSlotRequiresCompleteCarDetails(t *testing.T) {
	svc, _ := newService(t, availableHandler)

	flow := NewFlow(testLot())
	flow.SetTimes("2025-06-15", "12:00", "14:00")
	_, err := svc.CheckAvailability(context.Background(), "tok", flow)
	require.NoError(t, err)

	flow.SetCar(entities.CarDetails{Model: "Corolla", Color: "Blue"})
	_, err = svc.BookSlot(context.Background(), "tok", flow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "license plate")
}

func TestBookSlotSendsComputedAmount(t *testing.T) {
	var gotBody []byte
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/payments/initialize" {
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"reference":"ref-99","amount":100000,"spot_number":7,"time_slot":{"id":"ts-1"}}`))
			return
		}
		availableHandler(w, r)
	})

	flow := NewFlow(testLot())
	flow.SetTimes("2025-06-15", "12:00", "14:00")
	_, err := svc.CheckAvailability(context.Background(), "tok", flow)
	require.NoError(t, err)
	flow.SetCar(testCar())

	init, err := svc.BookSlot(context.Background(), "tok", flow)
	require.NoError(t, err)
	assert.Equal(t, "ref-99", init.Reference)
	assert.Equal(t, 7, init.SpotNumber)
	assert.Contains(t, string(gotBody), `"amount":100000`)
}
