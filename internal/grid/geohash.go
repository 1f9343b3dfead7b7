package grid

import (
	"sort"

	"github.com/mmcloughlin/geohash"

	"github.com/hkaya/timelineheat/internal/geo"
)

// GeohashGrid buckets points into geohash cells instead of a metric grid.
// Cell boundaries are then stable across runs and independent of the
// input's bounding box.
type GeohashGrid struct {
	precision uint
	capacity  int
	counts    map[string]int
	capped    int
}

// NewGeohash creates a geohash bucketer at the given character precision.
func NewGeohash(precision, capacity int) *GeohashGrid {
	return &GeohashGrid{
		precision: uint(precision),
		capacity:  capacity,
		counts:    make(map[string]int),
	}
}

// Add buckets one point, honoring the per-cell capacity.
func (g *GeohashGrid) Add(p geo.Point) {
	hash := geohash.EncodeWithPrecision(p.Lat, p.Lon, g.precision)

	if g.counts[hash] >= g.capacity {
		g.capped++
		return
	}
	g.counts[hash]++
}

// Cells returns the populated cells centered on their geohash bounding
// boxes, sorted by hash for deterministic output.
func (g *GeohashGrid) Cells() []Cell {
	hashes := make([]string, 0, len(g.counts))
	for hash := range g.counts {
		hashes = append(hashes, hash)
	}
	sort.Strings(hashes)

	cells := make([]Cell, 0, len(hashes))
	for _, hash := range hashes {
		box := geohash.BoundingBox(hash)
		lat, lon := box.Center()
		cells = append(cells, Cell{
			Lat:    lat,
			Lon:    lon,
			Weight: g.counts[hash],
		})
	}
	return cells
}

// Capped returns the number of points dropped by the per-cell capacity.
func (g *GeohashGrid) Capped() int {
	return g.capped
}
