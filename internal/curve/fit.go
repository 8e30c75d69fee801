package curve

import (
	"math"

	"github.com/inkplot/vectorize/internal/geometry"
)

// maxWindow is the longest sub-segment the greedy fitter will try in one
// step.
const maxWindow = 20

// refinementIterations and refinementStep control the exhaustive 3x3
// control-point perturbation search run on every accepted candidate.
const (
	refinementIterations = 5
	refinementStep       = 0.5
)

// FitBeziers converts a polyline into a sequence of cubic Bezier segments
// whose RMS sampling error stays within tolerance.
//
// The algorithm is a greedy sliding window: starting at index i, it tries
// the longest sub-segment (up to maxWindow points, capped by what remains),
// shrinking the window until the candidate curve's RMS error is within
// tolerance, refining the accepted candidate's control points by local
// perturbation search, and then advancing i to the end of the accepted
// window (shared endpoint with the next segment). If even a 2-point window
// fails to fit (tolerance is smaller than achievable), a 3-point simple
// cubic is emitted instead and i advances by 2.
//
// Emission order follows input order left-to-right, so the same polyline
// always fits to the same sequence of segments.
func FitBeziers(points geometry.Polyline, tolerance float64) []Segment {
	if len(points) < 2 {
		return nil
	}

	var segments []Segment
	i := 0
	for i < len(points)-1 {
		remaining := len(points) - i
		maxLen := remaining
		if maxLen > maxWindow {
			maxLen = maxWindow
		}

		fitted := false
		for windowLen := maxLen; windowLen >= 2; windowLen-- {
			window := points[i : i+windowLen]
			candidate := fitWindow(window)
			if rmsError(candidate, window) <= tolerance {
				candidate = refine(candidate, window)
				segments = append(segments, candidate)
				i += windowLen - 1
				fitted = true
				break
			}
		}

		if !fitted {
			segments = append(segments, simpleCubic(points, i))
			i += 2
			if i > len(points)-1 {
				i = len(points) - 1
			}
		}
	}

	return segments
}

// fitWindow builds a candidate cubic Bezier over window using chord-length
// endpoint tangents: forward difference at the start, backward difference
// at the end, with control points placed 0.3 * chord length along each
// tangent.
func fitWindow(window geometry.Polyline) Segment {
	start := window[0]
	end := window[len(window)-1]
	chord := geometry.Distance(start, end)

	startTangent := tangentAt(window, 0)
	endTangent := tangentAt(window, len(window)-1)

	d := 0.3 * chord
	c1 := geometry.Point{X: start.X + startTangent.X*d, Y: start.Y + startTangent.Y*d}
	c2 := geometry.Point{X: end.X - endTangent.X*d, Y: end.Y - endTangent.Y*d}

	return Bezier(start, c1, c2, end)
}

// tangentAt estimates the unit tangent direction at index idx of points:
// forward difference at the first point, backward difference at the last,
// and a central difference for every interior index.
func tangentAt(points geometry.Polyline, idx int) geometry.Point {
	n := len(points)
	var v geometry.Point
	switch {
	case n < 2:
		return geometry.Point{X: 1, Y: 0}
	case idx == 0:
		v = geometry.Point{X: points[1].X - points[0].X, Y: points[1].Y - points[0].Y}
	case idx == n-1:
		v = geometry.Point{X: points[n-1].X - points[n-2].X, Y: points[n-1].Y - points[n-2].Y}
	default:
		v = geometry.Point{X: points[idx+1].X - points[idx-1].X, Y: points[idx+1].Y - points[idx-1].Y}
	}

	length := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if length == 0 {
		return geometry.Point{X: 1, Y: 0}
	}
	return geometry.Point{X: v.X / length, Y: v.Y / length}
}

// chordParameters assigns each point in window a parameter in [0,1] by
// cumulative chord length, falling back to a uniform spacing when the
// window's total length is zero (every point coincident).
func chordParameters(window geometry.Polyline) []float64 {
	params := make([]float64, len(window))
	total := 0.0
	for i := 1; i < len(window); i++ {
		total += geometry.Distance(window[i-1], window[i])
		params[i] = total
	}
	if total == 0 {
		for i := range params {
			if len(params) > 1 {
				params[i] = float64(i) / float64(len(params)-1)
			}
		}
		return params
	}
	for i := range params {
		params[i] /= total
	}
	return params
}

// rmsError returns the root-mean-square distance between window's points
// and the candidate curve sampled at each point's chord-length parameter.
func rmsError(candidate Segment, window geometry.Polyline) float64 {
	params := chordParameters(window)
	sum := 0.0
	for i, p := range window {
		sample := candidate.Evaluate(params[i])
		d := geometry.Distance(p, sample)
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(window)))
}

// refine performs a bounded local search: for refinementIterations rounds,
// each control point is perturbed across a 3x3
// grid (step refinementStep in X and Y, independently) and the perturbation
// minimizing RMS error against window is kept if it improves on the
// current best.
func refine(candidate Segment, window geometry.Polyline) Segment {
	best := candidate
	bestErr := rmsError(best, window)

	offsets := []float64{-refinementStep, 0, refinementStep}

	for iter := 0; iter < refinementIterations; iter++ {
		improved := false

		for _, dx := range offsets {
			for _, dy := range offsets {
				if dx == 0 && dy == 0 {
					continue
				}
				trial := best
				trial.Control1 = geometry.Point{X: best.Control1.X + dx, Y: best.Control1.Y + dy}
				if e := rmsError(trial, window); e < bestErr {
					best, bestErr = trial, e
					improved = true
				}
			}
		}

		for _, dx := range offsets {
			for _, dy := range offsets {
				if dx == 0 && dy == 0 {
					continue
				}
				trial := best
				trial.Control2 = geometry.Point{X: best.Control2.X + dx, Y: best.Control2.Y + dy}
				if e := rmsError(trial, window); e < bestErr {
					best, bestErr = trial, e
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	return best
}

// simpleCubic emits a three-point simple cubic fallback when no window
// (down to 2 points) fits within tolerance: control points sit at the 50%
// chord midpoints.
func simpleCubic(points geometry.Polyline, i int) Segment {
	end := i + 2
	if end > len(points)-1 {
		end = len(points) - 1
	}
	start := points[i]
	stop := points[end]
	c1 := geometry.Midpoint(start, stop)
	c2 := c1
	return Bezier(start, c1, c2, stop)
}
