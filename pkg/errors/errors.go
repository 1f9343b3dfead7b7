package errors

import (
	"errors"
	"fmt"
)

var (
	// Input errors
	ErrInputNotFound = errors.New("input file not found")
	ErrInvalidJSON   = errors.New("invalid JSON input")
	ErrNoSegments    = errors.New("no timeline segments found in input")
	ErrNoPoints      = errors.New("no valid points extracted from input")
	ErrInvalidLatLng = errors.New("invalid latlng string")

	// Validation errors
	ErrInvalidLatitude      = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude     = errors.New("longitude must be between -180 and 180")
	ErrInvalidGridSize      = errors.New("grid size must be a positive number of meters")
	ErrInvalidGridCapacity  = errors.New("grid capacity must be at least 1")
	ErrInvalidZoomRange     = errors.New("zoom levels must satisfy 0 <= min <= max <= 22")
	ErrInvalidJitter        = errors.New("jitter must be a non-negative number of degrees")
	ErrInvalidColormapMax   = errors.New("colormap max must be between 0 and 1")
	ErrInvalidGeohashLength = errors.New("geohash precision must be between 1 and 12 characters")

	// Aggregation errors
	ErrPolarLatitude = errors.New("average latitude too close to a pole for longitude scaling")

	// Render errors
	ErrUnknownColormap = errors.New("unknown colormap")
	ErrNoCells         = errors.New("no grid cells to render")
)

// PointError records a coordinate that could not be used, along with
// where in the export it came from.
type PointError struct {
	Segment int
	Source  string
	Err     error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("segment %d (%s): %v", e.Segment, e.Source, e.Err)
}

func (e *PointError) Unwrap() error {
	return e.Err
}

func NewPointError(segment int, source string, err error) *PointError {
	return &PointError{
		Segment: segment,
		Source:  source,
		Err:     err,
	}
}
