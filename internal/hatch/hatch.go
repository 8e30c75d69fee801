package hatch

import (
	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
)

// Generate dispatches to the generator matching style, producing the hatch
// strokes for one mask/intensity level. baseSpacing and angleDeg come from
// the caller's hatching options; intensity is the normalized tone value
// (1.0 = darkest) that the orchestrating extractor computed for this
// level. prng drives the cross-hatch length variation and the stippling
// point set; both are expected to share the pipeline's seeded generator so
// the whole run stays reproducible.
func Generate(m *raster.Mask, style Style, baseSpacing, angleDeg, intensity float64, prng *raster.PRNG) []geometry.Polyline {
	switch style {
	case Contour:
		return contourHatch(m, baseSpacing, intensity)
	case Cross:
		return crossHatch(m, baseSpacing, angleDeg, intensity, prng)
	case Stippling:
		return stippling(m, baseSpacing, intensity, prng)
	default:
		return parallelLines(m, baseSpacing, angleDeg, intensity)
	}
}
