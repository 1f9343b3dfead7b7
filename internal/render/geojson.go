package render

import (
	"encoding/json"
	"io"

	"github.com/hkaya/timelineheat/internal/grid"
	apperrors "github.com/hkaya/timelineheat/pkg/errors"
)

// FeatureCollection represents a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a GeoJSON Feature.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry represents a GeoJSON Point geometry; coordinates are
// [longitude, latitude].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// ToFeatureCollection converts aggregated cells into a FeatureCollection
// of Points weighted by cell count.
func ToFeatureCollection(cells []grid.Cell) *FeatureCollection {
	features := make([]Feature, 0, len(cells))
	for _, cell := range cells {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: [2]float64{cell.Lon, cell.Lat},
			},
			Properties: map[string]interface{}{
				"weight": cell.Weight,
			},
		})
	}
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// WriteGeoJSON writes the cells as indented GeoJSON.
func WriteGeoJSON(w io.Writer, cells []grid.Cell) error {
	if len(cells) == 0 {
		return apperrors.ErrNoCells
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToFeatureCollection(cells))
}
