package timeline

// Export is the root of a Google Maps Timeline JSON export. The format has
// changed several times; all known shapes are represented here and every
// populated section contributes points.
type Export struct {
	// Current on-device export format.
	SemanticSegments []Segment `json:"semanticSegments"`

	// Newer Android export with raw position signals.
	RawSignals []RawSignal `json:"rawSignals"`

	// Legacy Takeout "Semantic Location History" format with E7 coordinates.
	TimelineObjects []TimelineObject `json:"timelineObjects"`
}

// Segment is a single semantic segment: a travelled path, a visit, or both.
type Segment struct {
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime"`
	TimelinePath []PathPoint `json:"timelinePath"`
	Visit        *Visit      `json:"visit"`
}

// PathPoint is one sample along a timelinePath.
type PathPoint struct {
	Point string `json:"point"` // "41.0080692°, 28.6558817°"
	Time  string `json:"time"`
}

// Visit is a stay at a place, with ranked place candidates.
type Visit struct {
	TopCandidate TopCandidate `json:"topCandidate"`
	Probability  float64      `json:"probability"`
}

type TopCandidate struct {
	PlaceLocation PlaceLocation `json:"placeLocation"`
	PlaceID       string        `json:"placeId"`
}

type PlaceLocation struct {
	LatLng string `json:"latLng"`
}

// RawSignal is a single signal entry in the newer Android timeline format.
type RawSignal struct {
	Position *Position `json:"position,omitempty"`
}

// Position is a raw position reading.
type Position struct {
	LatLng    string  `json:"LatLng"` // "37.422°, -122.084°"
	AccuracyM float64 `json:"accuracyMeters"`
	Source    string  `json:"source"`
	Timestamp string  `json:"timestamp"`
}

// TimelineObject wraps a legacy activity segment.
type TimelineObject struct {
	ActivitySegment *ActivitySegment `json:"activitySegment,omitempty"`
}

// ActivitySegment is a legacy movement record with E7 integer coordinates.
type ActivitySegment struct {
	StartLocation E7Location `json:"startLocation"`
	EndLocation   E7Location `json:"endLocation"`
}

type E7Location struct {
	LatitudeE7  int64 `json:"latitudeE7"`
	LongitudeE7 int64 `json:"longitudeE7"`
}

// FromE7 converts an E7 fixed-point coordinate to decimal degrees.
func FromE7(coordE7 int64) float64 {
	return float64(coordE7) / 1e7
}
