package privacy

import (
	"math/rand"
	"time"

	"github.com/hkaya/timelineheat/internal/geo"
)

// Jitterer adds uniform random noise to coordinates so that individual
// samples cannot be traced back to an exact position.
type Jitterer struct {
	amount float64
	rng    *rand.Rand
}

// NewJitterer creates a jitterer that shifts each coordinate by a uniform
// offset in [-amountDegrees, +amountDegrees]. A zero seed picks a
// time-based one; any other seed makes runs reproducible.
func NewJitterer(amountDegrees float64, seed int64) *Jitterer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Jitterer{
		amount: amountDegrees,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Apply returns p with noise added to both coordinates.
func (j *Jitterer) Apply(p geo.Point) geo.Point {
	if j.amount == 0 {
		return p
	}
	return geo.Point{
		Lat: p.Lat + j.uniform(),
		Lon: p.Lon + j.uniform(),
	}
}

func (j *Jitterer) uniform() float64 {
	return -j.amount + j.rng.Float64()*2*j.amount
}
