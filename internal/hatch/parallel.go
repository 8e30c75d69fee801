package hatch

import (
	"math"

	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
)

// effectiveSpacing computes the parallel-family stroke spacing: denser
// strokes for higher intensity, floored so near-zero intensity doesn't blow
// the spacing up without bound.
func effectiveSpacing(baseSpacing, intensity float64) float64 {
	return baseSpacing / math.Max(0.3, intensity)
}

// parallelLines generates the Parallel hatching style: strokes along an
// axis rotated by angleDeg, spaced by the intensity-scaled spacing, each
// clipped to the mask's maximal contiguous in-mask runs.
func parallelLines(m *raster.Mask, baseSpacing, angleDeg, intensity float64) []geometry.Polyline {
	spacing := effectiveSpacing(baseSpacing, intensity)
	return scanLines(m, spacing, angleDeg)
}

// scanLines sweeps a family of parallel lines, rotated by angleDeg, across
// the mask's bounding square, step spacing apart, and emits the maximal
// contiguous in-mask sample runs of each line as polylines.
//
// Each line is parameterized through the mask's center: direction d =
// (cos angle, sin angle), offset along the perpendicular p = (-sin angle,
// cos angle). Sampling 2*diag points along each line's 2*diag length keeps
// the sample spacing at roughly one pixel regardless of rotation.
func scanLines(m *raster.Mask, spacing, angleDeg float64) []geometry.Polyline {
	if spacing <= 0 {
		return nil
	}
	width, height := float64(m.Width), float64(m.Height)
	diag := math.Hypot(width, height)
	cx, cy := width/2, height/2

	rad := angleDeg * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	px, py := -dy, dx

	sampleCount := int(2 * diag)
	if sampleCount < 2 {
		sampleCount = 2
	}

	var out []geometry.Polyline
	for offset := -diag; offset <= diag; offset += spacing {
		ox, oy := cx+offset*px, cy+offset*py

		var run geometry.Polyline
		for i := 0; i < sampleCount; i++ {
			t := -diag + float64(i)*(2*diag)/float64(sampleCount-1)
			p := geometry.Point{X: ox + t*dx, Y: oy + t*dy}
			if m.AtPoint(p.X, p.Y) {
				run = append(run, p)
				continue
			}
			if len(run) >= 2 {
				out = append(out, run)
			}
			run = nil
		}
		if len(run) >= 2 {
			out = append(out, run)
		}
	}
	return out
}
