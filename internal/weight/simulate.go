package weight

import (
	"math"

	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
)

// Simulate expands a WeightedPath into the ordered set of polylines that
// together render its simulated pen weight, dispatching on p.Style.
// centerline-neutral paths (weight ~= 1.0, i.e. thickness ~= 0) still
// dispatch through the style so callers get consistent behavior, but every
// style degenerates to (approximately) the bare centerline at thickness 0.
func Simulate(p Path, lcgSeed uint32) []geometry.Polyline {
	if len(p.Centerline) < 2 {
		return nil
	}
	t := thickness(p.Weight)
	switch p.Style {
	case StyleOutline:
		return outline(p.Centerline, t)
	case StyleScribble:
		return scribble(p.Centerline, t, lcgSeed)
	case StyleZigzag:
		return zigzag(p.Centerline, t)
	default:
		return parallel(p.Centerline, p.Weight, t)
	}
}

// parallel emits lines = max(1, ceil(weight*2)) copies, their offsets
// evenly distributed across [-thickness/2, +thickness/2].
func parallel(c geometry.Polyline, weight, t float64) []geometry.Polyline {
	lines := int(math.Ceil(weight * 2))
	if lines < 1 {
		lines = 1
	}
	half := t / 2
	out := make([]geometry.Polyline, 0, lines)
	for i := 0; i < lines; i++ {
		offset := -half
		if lines > 1 {
			offset = -half + float64(i)*(2*half)/float64(lines-1)
		}
		out = append(out, geometry.OffsetPolyline(c, offset))
	}
	return out
}

// outline emits the two edge copies at +-thickness/2, plus interior fill
// copies spaced by max(0.5, thickness/8) between them, each trimmed 10% on
// both ends.
func outline(c geometry.Polyline, t float64) []geometry.Polyline {
	half := t / 2
	out := []geometry.Polyline{
		geometry.OffsetPolyline(c, half),
		geometry.OffsetPolyline(c, -half),
	}

	spacing := math.Max(0.5, t/8)
	if spacing <= 0 {
		return out
	}
	for offset := -half + spacing; offset < half; offset += spacing {
		out = append(out, trimEnds(geometry.OffsetPolyline(c, offset), 0.10))
	}
	return out
}

// trimEnds removes fraction from both ends of p (by point count), keeping
// at least 2 points.
func trimEnds(p geometry.Polyline, fraction float64) geometry.Polyline {
	n := len(p)
	drop := int(float64(n) * fraction)
	if n-2*drop < 2 {
		return p
	}
	return p[drop : n-drop]
}

// scribble emits the centerline plus ceil(min(thickness,4)*3) jittered
// copies. Copy i's vertices are perturbed by a seeded LCG (seed =
// lcgSeed + i) by up
// to +-thickness/4, and with probability 0.3 an extra midpoint is spliced
// between consecutive vertices.
func scribble(c geometry.Polyline, t float64, lcgSeed uint32) []geometry.Polyline {
	out := []geometry.Polyline{append(geometry.Polyline{}, c...)}

	copies := int(math.Ceil(math.Min(t, 4) * 3))
	if copies < 0 {
		copies = 0
	}
	for i := 0; i < copies; i++ {
		lcg := raster.NewLCG(lcgSeed + uint32(i))
		out = append(out, jitter(c, t, lcg))
	}
	return out
}

func jitter(c geometry.Polyline, t float64, lcg *raster.LCG) geometry.Polyline {
	var out geometry.Polyline
	amp := t / 4
	for i, p := range c {
		n := geometry.VertexNormal(c, i)
		j := amp * lcg.SignedUnit()
		out = append(out, geometry.Point{X: p.X + j*n.X, Y: p.Y + j*n.Y})

		if i < len(c)-1 && lcg.Float64() < 0.3 {
			mid := geometry.Midpoint(p, c[i+1])
			midN := geometry.VertexNormal(c, i)
			mj := amp * lcg.SignedUnit()
			out = append(out, geometry.Point{X: mid.X + mj*midN.X, Y: mid.Y + mj*midN.Y})
		}
	}
	return out
}

// zigzag emits a sawtooth alternating perpendicular offset +-thickness/2
// across each input segment, subdivided into
// max(1, floor(segLen / max(2, thickness))) steps, plus both outline
// offsets.
func zigzag(c geometry.Polyline, t float64) []geometry.Polyline {
	half := t / 2
	var saw geometry.Polyline
	saw = append(saw, c[0])

	sign := 1.0
	for i := 0; i < len(c)-1; i++ {
		a, b := c[i], c[i+1]
		segLen := geometry.Distance(a, b)
		divisor := math.Max(2, t)
		steps := int(math.Floor(segLen / divisor))
		if steps < 1 {
			steps = 1
		}
		n := geometry.Normal(a, b)
		for s := 1; s <= steps; s++ {
			frac := float64(s) / float64(steps)
			base := geometry.Point{X: a.X + (b.X-a.X)*frac, Y: a.Y + (b.Y-a.Y)*frac}
			saw = append(saw, geometry.Point{X: base.X + sign*half*n.X, Y: base.Y + sign*half*n.Y})
			sign = -sign
		}
	}

	return []geometry.Polyline{
		saw,
		geometry.OffsetPolyline(c, half),
		geometry.OffsetPolyline(c, -half),
	}
}
