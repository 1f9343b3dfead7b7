package render

import (
	"fmt"

	"github.com/mazznoer/colorgrad"

	apperrors "github.com/hkaya/timelineheat/pkg/errors"
)

// DefaultColormap matches the converter's historical default. It is not a
// colorgrad preset, so it is rebuilt from anchor colors below.
const DefaultColormap = "gist_ncar"

// gistNcarColors approximates the NCAR rainbow colormap.
var gistNcarColors = []string{
	"#000080", "#0040ff", "#00ffff", "#00ff00", "#80ff00",
	"#ffff00", "#ffb000", "#ff0000", "#ff00a0", "#ff00ff", "#ffc8ff",
}

var presets = map[string]func() colorgrad.Gradient{
	"viridis":  colorgrad.Viridis,
	"inferno":  colorgrad.Inferno,
	"magma":    colorgrad.Magma,
	"plasma":   colorgrad.Plasma,
	"turbo":    colorgrad.Turbo,
	"cividis":  colorgrad.Cividis,
	"spectral": colorgrad.Spectral,
	"rainbow":  colorgrad.Rainbow,
	"sinebow":  colorgrad.Sinebow,
	"warm":     colorgrad.Warm,
	"cool":     colorgrad.Cool,
	"greys":    colorgrad.Greys,
}

// Colormaps lists the supported colormap names.
func Colormaps() []string {
	names := []string{DefaultColormap}
	for name := range presets {
		names = append(names, name)
	}
	return names
}

func lookupColormap(name string) (colorgrad.Gradient, error) {
	if name == DefaultColormap {
		grad, err := colorgrad.NewGradient().HtmlColors(gistNcarColors...).Build()
		if err != nil {
			return colorgrad.Gradient{}, fmt.Errorf("building %s gradient: %w", DefaultColormap, err)
		}
		return grad, nil
	}

	preset, ok := presets[name]
	if !ok {
		return colorgrad.Gradient{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownColormap, name)
	}
	return preset(), nil
}

// Gradient samples a named colormap into heat-layer gradient stops. Keys
// are formatted to two decimals and span [lowerBound, upperBound]; colors
// are sampled over [0, sampleMax] of the colormap, so sampleMax below 1
// cuts off the hot end. Unknown colormap names return ErrUnknownColormap;
// callers fall back to DefaultColormap.
func Gradient(name string, stops int, lowerBound, upperBound, sampleMax float64) (map[string]string, error) {
	grad, err := lookupColormap(name)
	if err != nil {
		return nil, err
	}

	gradient := make(map[string]string, stops)
	for i := 0; i < stops; i++ {
		t := float64(i) / float64(stops-1)
		key := fmt.Sprintf("%.2f", lowerBound+(upperBound-lowerBound)*t)
		gradient[key] = grad.At(t * sampleMax).Hex()
	}
	return gradient, nil
}
