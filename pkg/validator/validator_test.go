package validator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/hkaya/timelineheat/pkg/errors"
)

func TestValidateCoordinates(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateCoordinates(41.0, 28.65))
	assert.NoError(t, v.ValidateCoordinates(-90, 180))
	assert.ErrorIs(t, v.ValidateCoordinates(90.5, 0), apperrors.ErrInvalidLatitude)
	assert.ErrorIs(t, v.ValidateCoordinates(math.NaN(), 0), apperrors.ErrInvalidLatitude)
	assert.ErrorIs(t, v.ValidateCoordinates(0, -180.5), apperrors.ErrInvalidLongitude)
	assert.ErrorIs(t, v.ValidateCoordinates(0, math.Inf(1)), apperrors.ErrInvalidLongitude)
}

func TestValidateGridSize(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateGridSize(500))
	assert.NoError(t, v.ValidateGridSize(1))
	assert.ErrorIs(t, v.ValidateGridSize(0), apperrors.ErrInvalidGridSize)
	assert.ErrorIs(t, v.ValidateGridSize(-100), apperrors.ErrInvalidGridSize)
}

func TestValidateGridCapacity(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateGridCapacity(10))
	assert.NoError(t, v.ValidateGridCapacity(1))
	assert.ErrorIs(t, v.ValidateGridCapacity(0), apperrors.ErrInvalidGridCapacity)
}

func TestValidateZoomRange(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateZoomRange(3, 12))
	assert.NoError(t, v.ValidateZoomRange(0, 22))
	assert.NoError(t, v.ValidateZoomRange(5, 5))
	assert.ErrorIs(t, v.ValidateZoomRange(12, 3), apperrors.ErrInvalidZoomRange)
	assert.ErrorIs(t, v.ValidateZoomRange(-1, 12), apperrors.ErrInvalidZoomRange)
	assert.ErrorIs(t, v.ValidateZoomRange(3, 23), apperrors.ErrInvalidZoomRange)
}

func TestValidateJitter(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateJitter(0.001))
	assert.NoError(t, v.ValidateJitter(0))
	assert.ErrorIs(t, v.ValidateJitter(-0.001), apperrors.ErrInvalidJitter)
	assert.ErrorIs(t, v.ValidateJitter(math.NaN()), apperrors.ErrInvalidJitter)
}

func TestValidateColormapMax(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateColormapMax(1.0))
	assert.NoError(t, v.ValidateColormapMax(0.7))
	assert.ErrorIs(t, v.ValidateColormapMax(0), apperrors.ErrInvalidColormapMax)
	assert.ErrorIs(t, v.ValidateColormapMax(1.5), apperrors.ErrInvalidColormapMax)
}

func TestValidateGeohashPrecision(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateGeohashPrecision(0)) // disabled
	assert.NoError(t, v.ValidateGeohashPrecision(6))
	assert.NoError(t, v.ValidateGeohashPrecision(12))
	assert.ErrorIs(t, v.ValidateGeohashPrecision(13), apperrors.ErrInvalidGeohashLength)
	assert.ErrorIs(t, v.ValidateGeohashPrecision(-1), apperrors.ErrInvalidGeohashLength)
}
