package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hkaya/timelineheat/internal/grid"
	"github.com/hkaya/timelineheat/internal/privacy"
	"github.com/hkaya/timelineheat/internal/render"
	"github.com/hkaya/timelineheat/internal/timeline"
	apperrors "github.com/hkaya/timelineheat/pkg/errors"
)

const gradientStops = 10

// Gradient keys cover the upper part of the heat intensity range so that
// sparse cells stay visible against the light basemap.
const (
	gradientLowerBound = 0.4
	gradientUpperBound = 1.0
)

var (
	outputPath       string
	geojsonPath      string
	minZoom          int
	maxZoom          int
	gridSizeMeters   int
	gridCapacity     int
	colormap         string
	colormapMax      float64
	jitterDegrees    float64
	jitterSeed       int64
	geohashPrecision int
	fitBounds        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a heatmap HTML file from a timeline JSON export",
	Long: `Reads a Google Maps Timeline JSON export and writes an interactive
heatmap as a standalone HTML file.

Points are jittered for privacy, then aggregated into grid cells of a
configurable size, with each cell's weight capped at a configurable
capacity so that frequently visited places do not dominate the map.

Example:
  timelineheat generate Timeline.json -o heatmap.html --grid-size 500 --grid-capacity 10`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func setupGenerateFlags() {
	flags := generateCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", cfg.Output.HTMLPath, "output HTML file for the heatmap")
	flags.StringVar(&geojsonPath, "geojson", cfg.Output.GeoJSONPath, "also write aggregated cells as GeoJSON to this file")
	flags.IntVar(&minZoom, "min-zoom", cfg.Map.MinZoom, "minimum zoom level allowed")
	flags.IntVar(&maxZoom, "max-zoom", cfg.Map.MaxZoom, "maximum zoom level allowed")
	flags.IntVar(&gridSizeMeters, "grid-size", cfg.Grid.SizeMeters, "grid size in meters")
	flags.IntVar(&gridCapacity, "grid-capacity", cfg.Grid.Capacity, "maximum capacity for each grid cell")
	flags.StringVar(&colormap, "colormap", cfg.Map.Colormap, "colormap name for the heatmap gradient")
	flags.Float64Var(&colormapMax, "colormap-max", cfg.Map.ColormapMax, "maximum normalized value for the colormap (e.g. 0.7 to limit the hot end)")
	flags.Float64Var(&jitterDegrees, "jitter", cfg.Privacy.JitterDegrees, "uniform jitter in degrees added to each point")
	flags.Int64Var(&jitterSeed, "seed", cfg.Privacy.Seed, "random seed for jitter (0 = time-based)")
	flags.IntVar(&geohashPrecision, "geohash-precision", cfg.Grid.GeohashPrecision, "bucket into geohash cells of this many characters instead of a metric grid (0 = off)")
	flags.BoolVar(&fitBounds, "fit-bounds", cfg.Map.FitBounds, "fit the initial view to the data instead of the default view")
}

func validateGenerateFlags() error {
	if err := val.ValidateGridSize(gridSizeMeters); err != nil {
		return err
	}
	if err := val.ValidateGridCapacity(gridCapacity); err != nil {
		return err
	}
	if err := val.ValidateZoomRange(minZoom, maxZoom); err != nil {
		return err
	}
	if err := val.ValidateJitter(jitterDegrees); err != nil {
		return err
	}
	if err := val.ValidateColormapMax(colormapMax); err != nil {
		return err
	}
	return val.ValidateGeohashPrecision(geohashPrecision)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if err := validateGenerateFlags(); err != nil {
		return err
	}

	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInputNotFound, filename)
	}

	appLogger.Info("Loading timeline export", "file", filename)

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	export, err := timeline.Parse(f)
	if err != nil {
		return err
	}

	points, pointErrs, err := timeline.Extract(export, val)
	if err != nil {
		return err
	}
	for _, perr := range pointErrs {
		appLogger.Warn("Skipping point", "error", perr)
	}
	appLogger.Info("Extracted points", "total", len(points), "skipped", len(pointErrs))

	var bucketer grid.Bucketer
	if geohashPrecision > 0 {
		bucketer = grid.NewGeohash(geohashPrecision, gridCapacity)
	} else {
		g, err := grid.New(points, gridSizeMeters, gridCapacity)
		if err != nil {
			return err
		}
		bounds := g.Bounds()
		appLogger.Debug("Grid sized",
			"lat_step", g.LatStep(),
			"lon_step", g.LonStep(),
			"span_km", bounds.Span()/1000,
		)
		bucketer = g
	}

	jitterer := privacy.NewJitterer(jitterDegrees, jitterSeed)
	for _, p := range points {
		bucketer.Add(jitterer.Apply(p))
	}

	cells := bucketer.Cells()
	appLogger.Info("Aggregated points",
		"cells", len(cells),
		"capped", bucketer.Capped(),
	)

	gradient, err := render.Gradient(colormap, gradientStops, gradientLowerBound, gradientUpperBound, colormapMax)
	if errors.Is(err, apperrors.ErrUnknownColormap) {
		appLogger.Warn("Unknown colormap, falling back", "colormap", colormap, "fallback", render.DefaultColormap)
		gradient, err = render.Gradient(render.DefaultColormap, gradientStops, gradientLowerBound, gradientUpperBound, colormapMax)
	}
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer out.Close()

	opts := render.MapOptions{
		MinZoom:   minZoom,
		MaxZoom:   maxZoom,
		Gradient:  gradient,
		FitBounds: fitBounds,
	}
	if err := render.WriteHTML(out, cells, opts); err != nil {
		return err
	}
	appLogger.Info("Heatmap saved", "output", outputPath)

	if geojsonPath != "" {
		gj, err := os.Create(geojsonPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", geojsonPath, err)
		}
		defer gj.Close()

		if err := render.WriteGeoJSON(gj, cells); err != nil {
			return err
		}
		appLogger.Info("GeoJSON saved", "output", geojsonPath)
	}

	return nil
}
