package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// One degree of latitude at the equator.
	d := HaversineDistance(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 100)

	// Zero distance.
	assert.Equal(t, 0.0, HaversineDistance(41, 28, 41, 28))

	// Istanbul to Ankara is roughly 350 km.
	d = HaversineDistance(41.0082, 28.9784, 39.9334, 32.8597)
	assert.InDelta(t, 350000, d, 10000)
}

func TestToRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, ToRadians(180), 1e-12)
	assert.InDelta(t, math.Pi/2, ToRadians(90), 1e-12)
}
