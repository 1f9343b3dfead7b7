package timeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hkaya/timelineheat/pkg/errors"
	"github.com/hkaya/timelineheat/pkg/validator"
)

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{name: "degree symbols", input: "41.0080692°, 28.6558817°", lat: 41.0080692, lon: 28.6558817},
		{name: "negative longitude", input: "37.422°, -122.084°", lat: 37.422, lon: -122.084},
		{name: "no degree symbols", input: "54.5260, 15.2551", lat: 54.5260, lon: 15.2551},
		{name: "extra whitespace", input: "  10.5° ,  20.25°  ", lat: 10.5, lon: 20.25},
		{name: "missing comma", input: "41.0080692° 28.6558817°", wantErr: true},
		{name: "too many parts", input: "1, 2, 3", wantErr: true},
		{name: "non-numeric latitude", input: "abc°, 28.65°", wantErr: true},
		{name: "non-numeric longitude", input: "41.0°, xyz°", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, err := ParseLatLng(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidLatLng)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.lat, lat, 1e-9)
			assert.InDelta(t, tt.lon, lon, 1e-9)
		})
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse(strings.NewReader("{not json"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidJSON)
}

func TestExtract_SemanticSegments(t *testing.T) {
	input := `{
		"semanticSegments": [
			{
				"timelinePath": [
					{"point": "41.0080692°, 28.6558817°"},
					{"point": "41.0100000°, 28.6600000°"}
				]
			},
			{
				"visit": {
					"topCandidate": {
						"placeLocation": {"latLng": "41.0200000°, 28.6700000°"}
					}
				}
			}
		]
	}`

	export, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	points, pointErrs, err := Extract(export, validator.NewValidator())
	require.NoError(t, err)
	assert.Empty(t, pointErrs)
	require.Len(t, points, 3)
	assert.InDelta(t, 41.0080692, points[0].Lat, 1e-9)
	assert.InDelta(t, 28.6558817, points[0].Lon, 1e-9)
	assert.InDelta(t, 41.02, points[2].Lat, 1e-9)
}

func TestExtract_SegmentWithPathAndVisit(t *testing.T) {
	input := `{
		"semanticSegments": [
			{
				"timelinePath": [{"point": "1.0°, 2.0°"}],
				"visit": {
					"topCandidate": {"placeLocation": {"latLng": "3.0°, 4.0°"}}
				}
			}
		]
	}`

	export, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	points, pointErrs, err := Extract(export, validator.NewValidator())
	require.NoError(t, err)
	assert.Empty(t, pointErrs)
	require.Len(t, points, 2)
	assert.Equal(t, 1.0, points[0].Lat)
	assert.Equal(t, 3.0, points[1].Lat)
}

func TestExtract_RawSignals(t *testing.T) {
	input := `{
		"rawSignals": [
			{"position": {"LatLng": "37.422°, -122.084°"}},
			{},
			{"position": {"LatLng": ""}}
		]
	}`

	export, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	points, pointErrs, err := Extract(export, validator.NewValidator())
	require.NoError(t, err)
	assert.Empty(t, pointErrs)
	require.Len(t, points, 1)
	assert.InDelta(t, 37.422, points[0].Lat, 1e-9)
	assert.InDelta(t, -122.084, points[0].Lon, 1e-9)
}

func TestExtract_LegacyTimelineObjects(t *testing.T) {
	input := `{
		"timelineObjects": [
			{
				"activitySegment": {
					"startLocation": {"latitudeE7": 410080692, "longitudeE7": 286558817},
					"endLocation": {"latitudeE7": 0, "longitudeE7": 0}
				}
			},
			{}
		]
	}`

	export, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	points, pointErrs, err := Extract(export, validator.NewValidator())
	require.NoError(t, err)
	assert.Empty(t, pointErrs)
	// The 0,0 end location is a missing value, not a coordinate.
	require.Len(t, points, 1)
	assert.InDelta(t, 41.0080692, points[0].Lat, 1e-9)
	assert.InDelta(t, 28.6558817, points[0].Lon, 1e-9)
}

func TestExtract_MalformedPointsSkipped(t *testing.T) {
	input := `{
		"semanticSegments": [
			{"timelinePath": [
				{"point": "not a coordinate"},
				{"point": "41.0°, 28.65°"},
				{"point": "95.0°, 28.65°"}
			]}
		]
	}`

	export, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	points, pointErrs, err := Extract(export, validator.NewValidator())
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Len(t, pointErrs, 2)

	var perr *apperrors.PointError
	require.ErrorAs(t, pointErrs[0], &perr)
	assert.Equal(t, 0, perr.Segment)
	assert.Equal(t, "timelinePath", perr.Source)

	// The out-of-range point goes through coordinate validation.
	assert.ErrorIs(t, pointErrs[1], apperrors.ErrInvalidLatitude)
}

func TestExtract_NoSections(t *testing.T) {
	export, err := Parse(strings.NewReader(`{}`))
	require.NoError(t, err)

	_, _, err = Extract(export, validator.NewValidator())
	assert.ErrorIs(t, err, apperrors.ErrNoSegments)
}

func TestExtract_NoUsablePoints(t *testing.T) {
	input := `{
		"semanticSegments": [
			{"timelinePath": [{"point": "garbage"}]}
		]
	}`

	export, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	_, pointErrs, err := Extract(export, validator.NewValidator())
	assert.ErrorIs(t, err, apperrors.ErrNoPoints)
	assert.Len(t, pointErrs, 1)
}

func TestFromE7(t *testing.T) {
	assert.InDelta(t, 41.0080692, FromE7(410080692), 1e-9)
	assert.InDelta(t, -122.084, FromE7(-1220840000), 1e-9)
}
