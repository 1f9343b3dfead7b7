package validator

import (
	"math"

	apperrors "github.com/hkaya/timelineheat/pkg/errors"
)

type Validator interface {
	ValidateCoordinates(lat, lon float64) error
	ValidateGridSize(sizeMeters int) error
	ValidateGridCapacity(capacity int) error
	ValidateZoomRange(minZoom, maxZoom int) error
	ValidateJitter(jitter float64) error
	ValidateColormapMax(max float64) error
	ValidateGeohashPrecision(chars int) error
}

type validator struct{}

func NewValidator() Validator {
	return &validator{}
}

func (v *validator) ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return apperrors.ErrInvalidLatitude
	}

	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return apperrors.ErrInvalidLongitude
	}

	return nil
}

func (v *validator) ValidateGridSize(sizeMeters int) error {
	if sizeMeters <= 0 {
		return apperrors.ErrInvalidGridSize
	}

	return nil
}

func (v *validator) ValidateGridCapacity(capacity int) error {
	if capacity < 1 {
		return apperrors.ErrInvalidGridCapacity
	}

	return nil
}

func (v *validator) ValidateZoomRange(minZoom, maxZoom int) error {
	if minZoom < 0 || maxZoom > 22 || minZoom > maxZoom {
		return apperrors.ErrInvalidZoomRange
	}

	return nil
}

func (v *validator) ValidateJitter(jitter float64) error {
	if math.IsNaN(jitter) || jitter < 0 {
		return apperrors.ErrInvalidJitter
	}

	return nil
}

func (v *validator) ValidateColormapMax(max float64) error {
	if math.IsNaN(max) || max <= 0 || max > 1 {
		return apperrors.ErrInvalidColormapMax
	}

	return nil
}

// ValidateGeohashPrecision checks a geohash character count. Zero is
// allowed and means geohash bucketing is disabled.
func (v *validator) ValidateGeohashPrecision(chars int) error {
	if chars == 0 {
		return nil
	}

	if chars < 1 || chars > 12 {
		return apperrors.ErrInvalidGeohashLength
	}

	return nil
}
