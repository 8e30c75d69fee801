package geometry

// SimplifyDouglasPeucker reduces a polyline to the subset of points needed
// to stay within epsilon of the original shape.
//
// The algorithm is the classic recursive Douglas-Peucker simplification: it
// finds the point of maximum perpendicular distance to the chord
// (points[0], points[len-1]). If that maximum exceeds epsilon, it recurses
// on both halves (split at the far point) and splices the results;
// otherwise it collapses the run to just the two endpoints.
//
// Input of two points or fewer is returned unchanged (copied). Output
// length is always >= 2 when the input has >= 2 points.
func SimplifyDouglasPeucker(points Polyline, epsilon float64) Polyline {
	if len(points) <= 2 {
		out := make(Polyline, len(points))
		copy(out, points)
		return out
	}

	start := points[0]
	end := points[len(points)-1]

	maxDist := -1.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		d := PerpendicularDistance(points[i], start, end)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= epsilon {
		return Polyline{start, end}
	}

	left := SimplifyDouglasPeucker(points[:maxIdx+1], epsilon)
	right := SimplifyDouglasPeucker(points[maxIdx:], epsilon)

	// Splice, dropping the duplicated point at the join.
	out := make(Polyline, 0, len(left)+len(right)-1)
	out = append(out, left...)
	out = append(out, right[1:]...)
	return out
}
