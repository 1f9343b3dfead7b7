package grid

import (
	"math"
	"sort"

	"github.com/hkaya/timelineheat/internal/geo"
	apperrors "github.com/hkaya/timelineheat/pkg/errors"
)

// metersPerDegreeLat is the approximate length of one degree of latitude.
const metersPerDegreeLat = 111111.0

// cosEpsilon guards the longitude scale factor near the poles.
const cosEpsilon = 1e-6

// Cell is one aggregated heatmap cell: its center coordinate and the
// capacity-capped number of points that landed in it.
type Cell struct {
	Lat    float64
	Lon    float64
	Weight int
}

// Bounds is the bounding box of the input points.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Center returns the midpoint of the bounding box.
func (b Bounds) Center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}

// Span returns the great-circle distance across the box diagonal in meters.
func (b Bounds) Span() float64 {
	return geo.HaversineDistance(b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)
}

// Bucketer aggregates points into weighted cells.
type Bucketer interface {
	Add(p geo.Point)
	Cells() []Cell
	Capped() int
}

// ComputeBounds returns the bounding box of points. Call with at least one
// point.
func ComputeBounds(points []geo.Point) Bounds {
	b := Bounds{
		MinLat: points[0].Lat,
		MaxLat: points[0].Lat,
		MinLon: points[0].Lon,
		MaxLon: points[0].Lon,
	}
	for _, p := range points[1:] {
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
		b.MinLon = math.Min(b.MinLon, p.Lon)
		b.MaxLon = math.Max(b.MaxLon, p.Lon)
	}
	return b
}

// AverageLatitude returns the mean latitude of points.
func AverageLatitude(points []geo.Point) float64 {
	var sum float64
	for _, p := range points {
		sum += p.Lat
	}
	return sum / float64(len(points))
}

type cellKey struct {
	i int
	j int
}

// Grid buckets points into rectangular cells of a fixed size in meters.
// The cell size is converted to degrees once, with the longitude step
// scaled by the cosine of the average input latitude.
type Grid struct {
	bounds   Bounds
	latStep  float64
	lonStep  float64
	capacity int
	counts   map[cellKey]int
	capped   int
}

// New sizes a grid for the given points. Bounds and the average latitude
// are taken from the points as passed in, so build the grid before
// applying jitter.
func New(points []geo.Point, sizeMeters, capacity int) (*Grid, error) {
	if len(points) == 0 {
		return nil, apperrors.ErrNoPoints
	}

	avgLat := AverageLatitude(points)
	cosLat := math.Cos(geo.ToRadians(avgLat))
	if math.Abs(cosLat) < cosEpsilon {
		return nil, apperrors.ErrPolarLatitude
	}

	return &Grid{
		bounds:   ComputeBounds(points),
		latStep:  float64(sizeMeters) / metersPerDegreeLat,
		lonStep:  float64(sizeMeters) / (metersPerDegreeLat * cosLat),
		capacity: capacity,
		counts:   make(map[cellKey]int),
	}, nil
}

// Add buckets one point. Increments beyond the cell capacity are dropped
// and counted.
func (g *Grid) Add(p geo.Point) {
	key := cellKey{
		i: int(math.Floor((p.Lat - g.bounds.MinLat) / g.latStep)),
		j: int(math.Floor((p.Lon - g.bounds.MinLon) / g.lonStep)),
	}

	if g.counts[key] >= g.capacity {
		g.capped++
		return
	}
	g.counts[key]++
}

// Cells returns the populated cells, each represented by its center
// coordinate, in deterministic order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g.counts))
	for key, count := range g.counts {
		cells = append(cells, Cell{
			Lat:    g.bounds.MinLat + (float64(key.i)+0.5)*g.latStep,
			Lon:    g.bounds.MinLon + (float64(key.j)+0.5)*g.lonStep,
			Weight: count,
		})
	}
	sort.Slice(cells, func(a, b int) bool {
		if cells[a].Lat != cells[b].Lat {
			return cells[a].Lat < cells[b].Lat
		}
		return cells[a].Lon < cells[b].Lon
	})
	return cells
}

// Capped returns the number of points dropped by the per-cell capacity.
func (g *Grid) Capped() int {
	return g.capped
}

// Bounds returns the bounding box the grid was sized from.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// LatStep returns the cell height in degrees.
func (g *Grid) LatStep() float64 {
	return g.latStep
}

// LonStep returns the cell width in degrees.
func (g *Grid) LonStep() float64 {
	return g.lonStep
}
