package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/hkaya/timelineheat/internal/grid"
	apperrors "github.com/hkaya/timelineheat/pkg/errors"
)

// Initial view: Europe, matching the converter's historical default.
const (
	DefaultCenterLat = 54.5260
	DefaultCenterLon = 15.2551
)

// Heat layer constants tuned for smooth blending.
const (
	heatRadius = 15
	heatBlur   = 20
)

// MapOptions controls the rendered Leaflet page.
type MapOptions struct {
	MinZoom   int
	MaxZoom   int
	Gradient  map[string]string
	FitBounds bool
}

type mapData struct {
	MapID     string
	MinZoom   int
	MaxZoom   int
	CenterLat float64
	CenterLon float64
	Radius    int
	Blur      int
	HeatData  template.JS
	Gradient  template.JS
	FitBounds bool
}

var mapTemplate = template.Must(template.New("heatmap").Parse(mapHTML))

// marshalJS marshals a value for embedding in the page's script block.
func marshalJS(value interface{}) (template.JS, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return template.JS(""), err
	}
	return template.JS(payload), nil
}

// WriteHTML renders the cells into a self-contained Leaflet heatmap page.
func WriteHTML(w io.Writer, cells []grid.Cell, opts MapOptions) error {
	if len(cells) == 0 {
		return apperrors.ErrNoCells
	}

	heat := make([][3]float64, 0, len(cells))
	for _, cell := range cells {
		heat = append(heat, [3]float64{cell.Lat, cell.Lon, float64(cell.Weight)})
	}

	heatJS, err := marshalJS(heat)
	if err != nil {
		return fmt.Errorf("failed to marshal heat data: %w", err)
	}

	gradientJS, err := marshalJS(opts.Gradient)
	if err != nil {
		return fmt.Errorf("failed to marshal gradient: %w", err)
	}

	data := mapData{
		MapID:     "map_" + strings.ReplaceAll(uuid.New().String(), "-", ""),
		MinZoom:   opts.MinZoom,
		MaxZoom:   opts.MaxZoom,
		CenterLat: DefaultCenterLat,
		CenterLon: DefaultCenterLon,
		Radius:    heatRadius,
		Blur:      heatBlur,
		HeatData:  heatJS,
		Gradient:  gradientJS,
		FitBounds: opts.FitBounds,
	}

	if err := mapTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render map template: %w", err)
	}
	return nil
}

const mapHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Timeline Heatmap</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
    <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
    <script src="https://unpkg.com/leaflet.heat@0.2.0/dist/leaflet-heat.js"></script>
    <style>
        html, body, #{{.MapID}} { height: 100%; margin: 0; padding: 0; }
    </style>
</head>
<body>
    <div id="{{.MapID}}"></div>
    <script>
        var map = L.map("{{.MapID}}", {
            minZoom: {{.MinZoom}},
            maxZoom: {{.MaxZoom}}
        }).setView([{{.CenterLat}}, {{.CenterLon}}], {{.MinZoom}});

        L.control.scale().addTo(map);

        L.tileLayer("https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png", {
            attribution: '&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>',
            subdomains: "abcd",
            maxZoom: {{.MaxZoom}}
        }).addTo(map);

        var heatData = {{.HeatData}};

        L.heatLayer(heatData, {
            radius: {{.Radius}},
            blur: {{.Blur}},
            gradient: {{.Gradient}}
        }).addTo(map);
{{if .FitBounds}}
        map.fitBounds(L.latLngBounds(heatData.map(function (p) {
            return [p[0], p[1]];
        })));
{{end}}
    </script>
</body>
</html>
`
