package geometry

import "math"

// OffsetPolyline translates every vertex of p along its local normal by the
// given signed offset. End vertices use the adjacent edge's normal;
// interior vertices average the normals of their two incident edges and
// renormalize. Offsets with |offset| < 0.1 return the input unchanged
// (copied), matching the line-weight simulator's "offset is a no-op below
// this magnitude" contract.
func OffsetPolyline(p Polyline, offset float64) Polyline {
	if math.Abs(offset) < 0.1 || len(p) == 0 {
		out := make(Polyline, len(p))
		copy(out, p)
		return out
	}

	out := make(Polyline, len(p))
	for i, pt := range p {
		n := VertexNormal(p, i)
		out[i] = Point{X: pt.X + offset*n.X, Y: pt.Y + offset*n.Y}
	}
	return out
}

// VertexNormal returns the offset normal to use at vertex i of polyline p.
// End vertices (i == 0 or i == len(p)-1) use the adjacent edge's normal.
// Interior vertices average the normals of the two incident edges and
// renormalize the result, falling back to (0,1) if the average cancels to
// zero length.
func VertexNormal(p Polyline, i int) Point {
	n := len(p)
	if n < 2 {
		return Point{X: 0, Y: 1}
	}
	if i == 0 {
		return Normal(p[0], p[1])
	}
	if i == n-1 {
		return Normal(p[n-2], p[n-1])
	}

	n1 := Normal(p[i-1], p[i])
	n2 := Normal(p[i], p[i+1])
	avg := Point{X: n1.X + n2.X, Y: n1.Y + n2.Y}
	length := math.Sqrt(avg.X*avg.X + avg.Y*avg.Y)
	if length == 0 {
		return Point{X: 0, Y: 1}
	}
	return Point{X: avg.X / length, Y: avg.Y / length}
}
