package hatch

import (
	"math"

	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
)

// contourSmoothPasses is the fixed number of (1,2,1)/4 smoothing passes
// applied to each offset contour layer.
const contourSmoothPasses = 2

// contourHatch generates the Contour hatching style: every external
// contour of the mask is offset inward layer by layer (layers =
// ceil(intensity*8)), each offset contour smoothed twice, and kept if it
// still has at least 3 points.
//
// The per-vertex normal offset used here can self-intersect on concave
// regions; this is accepted as a known limitation of the artistic output
// rather than corrected with full polygon clipping.
func contourHatch(m *raster.Mask, baseSpacing, intensity float64) []geometry.Polyline {
	spacing := baseSpacing / (0.3 + 0.7*intensity)
	layers := int(math.Ceil(intensity * 8))
	if layers < 1 {
		layers = 1
	}

	contours := raster.ExternalContours(m)

	var out []geometry.Polyline
	for _, contour := range contours {
		for layer := 0; layer < layers; layer++ {
			// Traced contours run clockwise in screen space, so the edge
			// normals point into the region: a positive offset moves inward.
			offset := float64(layer) * spacing
			shifted := offsetClosed(contour, offset)
			for i := 0; i < contourSmoothPasses; i++ {
				shifted = smoothClosed(shifted)
			}
			if len(shifted) >= 3 {
				out = append(out, shifted)
			}
		}
	}
	return out
}

// offsetClosed translates every vertex of a closed polygon (stored without
// a duplicated first/last point) along its bisected vertex normal by
// offset. Unlike geometry.OffsetPolyline, neighbors wrap around: vertex 0's
// predecessor is the last vertex and vice versa.
func offsetClosed(p geometry.Polyline, offset float64) geometry.Polyline {
	n := len(p)
	if n < 3 || offset == 0 {
		out := make(geometry.Polyline, n)
		copy(out, p)
		return out
	}

	out := make(geometry.Polyline, n)
	for i := 0; i < n; i++ {
		prev := p[(i-1+n)%n]
		cur := p[i]
		next := p[(i+1)%n]

		n1 := geometry.Normal(prev, cur)
		n2 := geometry.Normal(cur, next)
		avg := geometry.Point{X: n1.X + n2.X, Y: n1.Y + n2.Y}
		length := math.Sqrt(avg.X*avg.X + avg.Y*avg.Y)
		if length == 0 {
			avg = n1
		} else {
			avg = geometry.Point{X: avg.X / length, Y: avg.Y / length}
		}

		out[i] = geometry.Point{X: cur.X + offset*avg.X, Y: cur.Y + offset*avg.Y}
	}
	return out
}

// smoothClosed applies one (1,2,1)/4 weighted-mean smoothing pass to a
// cyclic point sequence.
func smoothClosed(p geometry.Polyline) geometry.Polyline {
	n := len(p)
	if n < 3 {
		out := make(geometry.Polyline, n)
		copy(out, p)
		return out
	}
	out := make(geometry.Polyline, n)
	for i := 0; i < n; i++ {
		prev := p[(i-1+n)%n]
		cur := p[i]
		next := p[(i+1)%n]
		out[i] = geometry.Point{
			X: (prev.X + 2*cur.X + next.X) / 4,
			Y: (prev.Y + 2*cur.Y + next.Y) / 4,
		}
	}
	return out
}
