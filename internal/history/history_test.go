package history

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func sampleBookings() []entities.Booking {
	return []entities.Booking{
		{
			ID: "BK-001", CustomerName: "Ada Obi", LotName: "Marina Central",
			Car:       entities.CarDetails{LicensePlate: "KJA-402-HN"},
			StartTime: testNow.Add(3 * time.Hour), EndTime: testNow.Add(5 * time.Hour),
			Status: entities.BookingStatusConfirmed,
		},
		{
			ID: "BK-002", CustomerName: "Bola Ade", LotName: "Lekki Gardens",
			Car:       entities.CarDetails{LicensePlate: "ABC-123-XY"},
			StartTime: testNow.Add(-1 * time.Hour), EndTime: testNow.Add(1 * time.Hour),
			Status: entities.BookingStatusConfirmed,
		},
		{
			ID: "BK-003", CustomerName: "Chidi Eze", LotName: "Marina Central",
			Car:       entities.CarDetails{LicensePlate: "LAG-777-ZZ"},
			StartTime: testNow.Add(-5 * time.Hour), EndTime: testNow.Add(-3 * time.Hour),
			Status: entities.BookingStatusConfirmed,
		},
	}
}

func TestPartitionByTime(t *testing.T) {
	p := PartitionByTime(sampleBookings(), testNow)

	require.Len(t, p.Upcoming, 1)
	require.Len(t, p.Active, 1)
	require.Len(t, p.Past, 1)
	assert.Equal(t, "BK-001", p.Upcoming[0].ID)
	assert.Equal(t, "BK-002", p.Active[0].ID)
	assert.Equal(t, "BK-003", p.Past[0].ID)
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	bookings := sampleBookings()

	assert.Len(t, Filter(bookings, "marina"), 2)
	assert.Len(t, Filter(bookings, "MARINA"), 2)
	assert.Len(t, Filter(bookings, "kja-402"), 1)
	assert.Len(t, Filter(bookings, "bola"), 1)
	assert.Len(t, Filter(bookings, "bk-003"), 1)
	assert.Empty(t, Filter(bookings, "nomatch"))
	assert.Len(t, Filter(bookings, "  "), 3)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	bookings := sampleBookings()
	before := append([]entities.Booking(nil), bookings...)

	out := Filter(bookings, "marina")
	out[0].CustomerName = "changed locally"
	_ = Filter(bookings, "zzz")

	assert.Equal(t, before, bookings)
}

func TestCanCancelOnlyUpcoming(t *testing.T) {
	bookings := sampleBookings()

	assert.True(t, CanCancel(bookings[0], testNow))  // upcoming
	assert.False(t, CanCancel(bookings[1], testNow)) // active
	assert.False(t, CanCancel(bookings[2], testNow)) // past

	cancelled := bookings[0]
	cancelled.Status = entities.BookingStatusCancelled
	assert.False(t, CanCancel(cancelled, testNow))
}

func TestRefundNotice(t *testing.T) {
	b := sampleBookings()[0] // starts in 3h
	assert.Contains(t, RefundNotice(b, testNow), "full refund")

	soon := b
	soon.StartTime = testNow.Add(30 * time.Minute)
	assert.Contains(t, RefundNotice(soon, testNow), "not eligible")
}

func newService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc := NewService(backend.NewClient(srv.URL, zerolog.Nop()), zerolog.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestCancelRemovesOnlyAfterServerConfirmation(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"cancelled"}`))
	})

	bookings := sampleBookings()
	out, err := svc.Cancel(context.Background(), "tok", bookings, "BK-001")
	require.NoError(t, err)
	assert.Len(t, out, 2)
	for _, b := range out {
		assert.NotEqual(t, "BK-001", b.ID)
	}
	assert.Len(t, bookings, 3) // input untouched
}

func TestCancelKeepsListOnServerError(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"booking already started"}`))
	})

	bookings := sampleBookings()
	out, err := svc.Cancel(context.Background(), "tok", bookings, "BK-001")
	require.Error(t, err)
	assert.Equal(t, "booking already started", err.Error())
	assert.Len(t, out, 3)
}

func TestCancelRejectsNonUpcoming(t *testing.T) {
	var called bool
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	bookings := sampleBookings()
	_, err := svc.Cancel(context.Background(), "tok", bookings, "BK-002")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only upcoming")
	assert.False(t, called)

	_, err = svc.Cancel(context.Background(), "tok", bookings, "BK-404")
	require.Error(t, err)
}
