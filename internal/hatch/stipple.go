package hatch

import (
	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
)

// stipplingK is Bridson's algorithm candidate-attempt limit per active
// sample.
const stipplingK = 30

// stippling generates the Stippling hatching style: Poisson-disk samples
// across the mask's full bounding rectangle, filtered to the ones that
// fall inside the mask, each emitted as a short 2-point "dot" polyline.
func stippling(m *raster.Mask, baseSpacing, intensity float64, prng *raster.PRNG) []geometry.Polyline {
	minDist := baseSpacing * 0.5
	maxDist := baseSpacing * 2
	if minDist <= 0 {
		return nil
	}

	area := float64(m.Width * m.Height)
	targetCount := int(area * (intensity * 0.3) / (minDist * minDist))
	if targetCount < 1 {
		return nil
	}

	samples := raster.PoissonDiskSample(float64(m.Width), float64(m.Height), minDist, maxDist, stipplingK, targetCount, prng)

	var out []geometry.Polyline
	for _, p := range samples {
		// A sample belongs to the pixel whose unit square contains it
		// (samples are never negative, so truncation is the floor).
		if !m.At(int(p.X), int(p.Y)) {
			continue
		}
		dx := 0.5 + prng.Float64()
		out = append(out, geometry.Polyline{p, geometry.Point{X: p.X + dx, Y: p.Y}})
	}
	return out
}
