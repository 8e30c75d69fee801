// Package extract implements the three path-extraction strategies: color
// region contour tracing, centerline stitching, and tonal hatching.
package extract

import (
	"log"

	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
)

const (
	colorRegionMinContourPoints  = 10
	colorRegionSimplifyEpsilon   = 2.0
	colorRegionMinSimplifiedPts  = 3
	colorRegionKMeansRestarts    = 10
	colorRegionFallbackThreshold = 128
)

// ColorRegions clusters r into numColors colors via k-means and traces the
// external contour of every cluster's mask, simplifying each with
// Douglas-Peucker. If k-means fails (an empty raster, which New already
// rejects, or numColors < 1) it falls back to a single fixed-threshold
// mask, logging and continuing with possibly-empty output rather than
// surfacing the failure to the caller.
func ColorRegions(r *raster.Raster, numColors int, prng *raster.PRNG) []geometry.Polyline {
	result, err := raster.KMeans(r, numColors, prng)
	if err != nil {
		log.Printf("extract: k-means failed (%v), falling back to fixed threshold", err)
		return fallbackThresholdContours(r)
	}

	var paths []geometry.Polyline
	for k := 0; k < numColors; k++ {
		mask := raster.MaskFromThreshold(r.Width, r.Height, func(x, y int) bool {
			return result.Labels[y*r.Width+x] == k
		})
		paths = append(paths, contoursFromMask(mask)...)
	}
	return paths
}

// fallbackThresholdContours extracts contours from a single global
// fixed-128 threshold mask, the extractor's last-resort path when k-means
// is unavailable.
func fallbackThresholdContours(r *raster.Raster) []geometry.Polyline {
	mask := raster.MaskFromThreshold(r.Width, r.Height, func(x, y int) bool {
		return r.LumaAt(x, y) < colorRegionFallbackThreshold
	})
	return contoursFromMask(mask)
}

// contoursFromMask traces every external contour of mask, discarding short
// contours both before and after Douglas-Peucker simplification.
func contoursFromMask(mask *raster.Mask) []geometry.Polyline {
	var out []geometry.Polyline
	for _, contour := range raster.ExternalContours(mask) {
		if len(contour) < colorRegionMinContourPoints {
			continue
		}
		simplified := geometry.SimplifyDouglasPeucker(contour, colorRegionSimplifyEpsilon)
		if len(simplified) < colorRegionMinSimplifiedPts {
			continue
		}
		out = append(out, simplified)
	}
	return out
}
