package hatch

import (
	"math"

	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
)

// crossAngleOffsets is the fixed cycle of angle offsets cross-hatch layers
// rotate through.
var crossAngleOffsets = [4]float64{0, 90, 45, 135}

// crossHatch generates the Cross hatching style: layers = ceil(intensity*4)
// parallel passes, each at angleDeg plus the next offset in
// crossAngleOffsets, each pass using spacing*(1+0.3*layer) and full
// intensity (1.0, i.e. the un-scaled base spacing). Layers after the first
// are length-varied by trimming each run symmetrically by a random factor.
//
// A trim factor above 1.0 cannot extend a sub-segment beyond its source
// run, so it is clamped to min(1, factor) and trimmed symmetrically from
// both ends.
func crossHatch(m *raster.Mask, baseSpacing, angleDeg, intensity float64, prng *raster.PRNG) []geometry.Polyline {
	layers := int(math.Ceil(intensity * 4))
	if layers < 1 {
		layers = 1
	}

	var out []geometry.Polyline
	for layer := 0; layer < layers; layer++ {
		layerAngle := angleDeg + crossAngleOffsets[layer%len(crossAngleOffsets)]
		layerSpacing := baseSpacing * (1 + 0.3*float64(layer))
		runs := scanLines(m, effectiveSpacing(layerSpacing, 1.0), layerAngle)

		if layer == 0 {
			out = append(out, runs...)
			continue
		}
		for _, run := range runs {
			if trimmed := trimSymmetric(run, prng); len(trimmed) >= 2 {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

// trimSymmetric shortens run by a random factor in [0.8, 1.2] clamped to
// [0.8, 1.0], removing the trimmed fraction evenly from both ends.
func trimSymmetric(run geometry.Polyline, prng *raster.PRNG) geometry.Polyline {
	factor := 0.8 + prng.Float64()*0.4
	if factor > 1.0 {
		factor = 1.0
	}
	if factor >= 0.999 {
		return run
	}

	n := len(run)
	keep := int(math.Round(float64(n) * factor))
	if keep < 2 {
		keep = 2
	}
	if keep >= n {
		return run
	}
	drop := n - keep
	left := drop / 2
	right := drop - left
	return run[left : n-right]
}
