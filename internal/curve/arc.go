package curve

import (
	"math"

	"github.com/inkplot/vectorize/internal/geometry"
)

// arcSampleCount is the number of points sampled along each Bezier before
// attempting a circle fit.
const arcSampleCount = 11

// ConvertArcs attempts to replace every Bezier segment with an equivalent
// circular Arc, keeping the Bezier wherever the fit is degenerate or
// exceeds tolerance. Arc segments are passed through unchanged.
func ConvertArcs(segments []Segment, tolerance float64) []Segment {
	out := make([]Segment, len(segments))
	for i, s := range segments {
		if s.Kind != KindBezier {
			out[i] = s
			continue
		}
		if arc, ok := tryArc(s, tolerance); ok {
			out[i] = arc
		} else {
			out[i] = s
		}
	}
	return out
}

func tryArc(s Segment, tolerance float64) (Segment, bool) {
	samples := make(geometry.Polyline, arcSampleCount)
	for i := 0; i < arcSampleCount; i++ {
		t := float64(i) / float64(arcSampleCount-1)
		samples[i] = s.Evaluate(t)
	}

	cx, cy, r, ok := fitCircle(samples)
	if !ok {
		return Segment{}, false
	}

	maxDev := 0.0
	for _, p := range samples {
		d := math.Abs(geometry.Distance(p, geometry.Point{X: cx, Y: cy}) - r)
		if d > maxDev {
			maxDev = d
		}
	}
	if maxDev > tolerance {
		return Segment{}, false
	}

	mid := s.Evaluate(0.5)
	clockwise := geometry.Cross2D(s.Start, mid, s.End) < 0

	return Arc(s.Start, s.End, geometry.Point{X: cx, Y: cy}, r, clockwise), true
}

// fitCircle performs an algebraic (Kasa) least-squares circle fit: solving
// the linear system A*x + B*y + C = x^2+y^2 for (A, B, C) in the normal-
// equations sense, then recovering center (A/2, B/2) and radius from C. A
// near-singular 3x3 system (|det| < 1e-10) is reported as a failed fit, and
// the caller keeps the original Bezier in that case.
func fitCircle(points geometry.Polyline) (cx, cy, r float64, ok bool) {
	var sumX, sumY, sumXX, sumYY, sumXY, sumXZ, sumYZ, sumZ float64
	n := float64(len(points))

	for _, p := range points {
		z := p.X*p.X + p.Y*p.Y
		sumX += p.X
		sumY += p.Y
		sumXX += p.X * p.X
		sumYY += p.Y * p.Y
		sumXY += p.X * p.Y
		sumXZ += p.X * z
		sumYZ += p.Y * z
		sumZ += z
	}

	// Normal-equation matrix for [A B C]^T = [sumXZ sumYZ sumZ]^T.
	m := [3][3]float64{
		{sumXX, sumXY, sumX},
		{sumXY, sumYY, sumY},
		{sumX, sumY, n},
	}
	rhs := [3]float64{sumXZ, sumYZ, sumZ}

	det := det3(m)
	if math.Abs(det) < 1e-10 {
		return 0, 0, 0, false
	}

	A := det3(substCol(m, 0, rhs)) / det
	B := det3(substCol(m, 1, rhs)) / det
	C := det3(substCol(m, 2, rhs)) / det

	cx = A / 2
	cy = B / 2
	r2 := C + cx*cx + cy*cy
	if r2 < 0 {
		return 0, 0, 0, false
	}
	return cx, cy, math.Sqrt(r2), true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func substCol(m [3][3]float64, col int, rhs [3]float64) [3][3]float64 {
	out := m
	for row := 0; row < 3; row++ {
		out[row][col] = rhs[row]
	}
	return out
}
