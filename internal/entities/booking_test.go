package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingTimeStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	b := Booking{
		StartTime: now.Add(1 * time.Hour),
		EndTime:   now.Add(3 * time.Hour),
	}

	assert.Equal(t, TimeStatusUpcoming, b.TimeStatus(now))
	assert.Equal(t, TimeStatusActive, b.TimeStatus(now.Add(90*time.Minute)))
	assert.Equal(t, TimeStatusActive, b.TimeStatus(b.StartTime))
	assert.Equal(t, TimeStatusPast, b.TimeStatus(b.EndTime))
	assert.Equal(t, TimeStatusPast, b.TimeStatus(now.Add(5*time.Hour)))
}

func TestFormatKobo(t *testing.T) {
	assert.Equal(t, "₦1500.00", FormatKobo(150000))
	assert.Equal(t, "₦0.50", FormatKobo(50))
	assert.Equal(t, "₦0.00", FormatKobo(0))
	assert.Equal(t, "₦1250.75", FormatKobo(125075))
}

func TestCarDetailsValidate(t *testing.T) {
	valid := CarDetails{Model: "Corolla", Color: "Blue", LicensePlate: "ABC-123"}
	require.NoError(t, valid.Validate())
	assert.True(t, valid.Complete())

	cases := []CarDetails{
		{Model: "C", Color: "Blue", LicensePlate: "ABC-123"},
		{Model: "Corolla", Color: "B", LicensePlate: "ABC-123"},
		{Model: "Corolla", Color: "Blue", LicensePlate: "A"},
		{Model: "  ", Color: "Blue", LicensePlate: "ABC-123"},
		{},
	}
	for _, c := range cases {
		assert.Error(t, c.Validate())
	}

	assert.False(t, CarDetails{Model: "Corolla", Color: "Blue"}.Complete())
}
