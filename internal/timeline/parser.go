package timeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hkaya/timelineheat/internal/geo"
	apperrors "github.com/hkaya/timelineheat/pkg/errors"
	"github.com/hkaya/timelineheat/pkg/validator"
)

// ParseLatLng extracts latitude and longitude from a string like
// "41.0080692°, 28.6558817°".
func ParseLatLng(s string) (lat, lon float64, err error) {
	cleaned := strings.ReplaceAll(s, "°", "")
	parts := strings.Split(cleaned, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidLatLng, s)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid latitude in %q", apperrors.ErrInvalidLatLng, s)
	}

	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid longitude in %q", apperrors.ErrInvalidLatLng, s)
	}

	return lat, lon, nil
}

// Parse decodes a timeline export from r.
func Parse(r io.Reader) (*Export, error) {
	var export Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidJSON, err)
	}
	return &export, nil
}

// Extract collects every coordinate in the export in document order.
// Malformed or out-of-range points are skipped and reported as PointErrors,
// never fatal. An export with no recognizable sections at all is
// ErrNoSegments; sections present but nothing usable is ErrNoPoints.
func Extract(export *Export, val validator.Validator) ([]geo.Point, []error, error) {
	if len(export.SemanticSegments) == 0 && len(export.RawSignals) == 0 && len(export.TimelineObjects) == 0 {
		return nil, nil, apperrors.ErrNoSegments
	}

	var points []geo.Point
	var pointErrs []error

	add := func(segment int, source string, lat, lon float64) {
		if err := val.ValidateCoordinates(lat, lon); err != nil {
			pointErrs = append(pointErrs, apperrors.NewPointError(segment, source, err))
			return
		}
		points = append(points, geo.Point{Lat: lat, Lon: lon})
	}

	for i, segment := range export.SemanticSegments {
		for _, pathPoint := range segment.TimelinePath {
			if pathPoint.Point == "" {
				continue
			}
			lat, lon, err := ParseLatLng(pathPoint.Point)
			if err != nil {
				pointErrs = append(pointErrs, apperrors.NewPointError(i, "timelinePath", err))
				continue
			}
			add(i, "timelinePath", lat, lon)
		}

		if segment.Visit != nil {
			latLng := segment.Visit.TopCandidate.PlaceLocation.LatLng
			if latLng == "" {
				continue
			}
			lat, lon, err := ParseLatLng(latLng)
			if err != nil {
				pointErrs = append(pointErrs, apperrors.NewPointError(i, "visit", err))
				continue
			}
			add(i, "visit", lat, lon)
		}
	}

	for i, signal := range export.RawSignals {
		if signal.Position == nil || signal.Position.LatLng == "" {
			continue
		}
		lat, lon, err := ParseLatLng(signal.Position.LatLng)
		if err != nil {
			pointErrs = append(pointErrs, apperrors.NewPointError(i, "rawSignal", err))
			continue
		}
		add(i, "rawSignal", lat, lon)
	}

	for i, obj := range export.TimelineObjects {
		if obj.ActivitySegment == nil {
			continue
		}
		seg := obj.ActivitySegment
		for _, loc := range []E7Location{seg.StartLocation, seg.EndLocation} {
			// 0,0 is the zero value for a missing legacy location, not a fix.
			if loc.LatitudeE7 == 0 && loc.LongitudeE7 == 0 {
				continue
			}
			add(i, "activitySegment", FromE7(loc.LatitudeE7), FromE7(loc.LongitudeE7))
		}
	}

	if len(points) == 0 {
		return nil, pointErrs, apperrors.ErrNoPoints
	}

	return points, pointErrs, nil
}
