package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"scheduled to active", BookingStatusScheduled, BookingStatusActive, true},
		{"scheduled to cancelled", BookingStatusScheduled, BookingStatusCancelled, true},
		{"scheduled to completed", BookingStatusScheduled, BookingStatusCompleted, false},
		{"scheduled to scheduled", BookingStatusScheduled, BookingStatusScheduled, false},
		{"active to completed", BookingStatusActive, BookingStatusCompleted, true},
		{"active to cancelled", BookingStatusActive, BookingStatusCancelled, true},
		{"active to scheduled", BookingStatusActive, BookingStatusScheduled, false},
		{"completed is terminal", BookingStatusCompleted, BookingStatusCancelled, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusActive, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, BookingStatusScheduled.IsTerminal())
	assert.False(t, BookingStatusActive.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
}

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, BookingStatusScheduled.Valid())
	assert.True(t, BookingStatusCancelled.Valid())
	assert.False(t, BookingStatus(-1).Valid())
	assert.False(t, BookingStatus(4).Valid())
}

func TestCalculateTotalPrice(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// 2 hours at 12.50/h
	assert.Equal(t, 25.00, CalculateTotalPrice(start, start.Add(2*time.Hour), 12.50))

	// 90 minutes at 10/h
	assert.Equal(t, 15.00, CalculateTotalPrice(start, start.Add(90*time.Minute), 10))

	// 40 minutes at 13/h rounds to cents: 13 * 2/3 = 8.666... -> 8.67
	assert.Equal(t, 8.67, CalculateTotalPrice(start, start.Add(40*time.Minute), 13))
}

func TestOverlaps_HalfOpenIntervals(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	hour := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

	// [0,2) vs [1,3) intersect
	assert.True(t, Overlaps(hour(0), hour(2), hour(1), hour(3)))

	// [1,3) inside [0,4)
	assert.True(t, Overlaps(hour(0), hour(4), hour(1), hour(3)))

	// Back-to-back [0,2) and [2,4) do not overlap
	assert.False(t, Overlaps(hour(0), hour(2), hour(2), hour(4)))
	assert.False(t, Overlaps(hour(2), hour(4), hour(0), hour(2)))

	// Disjoint
	assert.False(t, Overlaps(hour(0), hour(1), hour(3), hour(4)))
}
