package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKM(t *testing.T) {
	// Moscow to Saint Petersburg, roughly 634 km.
	d := HaversineKM(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634, d, 5)

	// One degree of latitude is about 111 km.
	d = HaversineKM(50, 10, 51, 10)
	assert.InDelta(t, 111.2, d, 0.5)

	// Same point
	assert.Equal(t, 0.0, HaversineKM(48.8566, 2.3522, 48.8566, 2.3522))
}

func TestWithinRadius(t *testing.T) {
	// Inside both radii
	assert.True(t, WithinRadius(5, 10, 20))

	// Outside the search radius
	assert.False(t, WithinRadius(15, 10, 20))

	// Inside the search radius but outside the caregiver's coverage
	assert.False(t, WithinRadius(8, 10, 5))

	// Zero coverage means unlimited
	assert.True(t, WithinRadius(8, 10, 0))

	// Exactly on the boundary counts as reachable
	assert.True(t, WithinRadius(10, 10, 10))
}
