// Package curve converts polylines into Bezier curves, and optionally
// further into circular arcs, via least-squares fitting.
package curve

import (
	"math"

	"github.com/inkplot/vectorize/internal/geometry"
)

// Kind discriminates the two shapes a Segment can take. This tagged-variant
// design replaces runtime-typed curve discrimination: every consumer
// switches on Kind exhaustively instead of type-asserting.
type Kind int

const (
	// KindBezier is a cubic Bezier: {Start, Control1, Control2, End}.
	KindBezier Kind = iota
	// KindArc is a circular arc: {Start, End, Center, Radius, Clockwise}.
	KindArc
)

// Segment is a tagged union of a cubic Bezier curve and a circular arc.
// Only the fields relevant to Kind are meaningful.
type Segment struct {
	Kind Kind

	Start, End geometry.Point

	// Bezier-only fields.
	Control1, Control2 geometry.Point

	// Arc-only fields.
	Center    geometry.Point
	Radius    float64
	Clockwise bool
}

// Bezier constructs a cubic Bezier segment.
func Bezier(start, c1, c2, end geometry.Point) Segment {
	return Segment{Kind: KindBezier, Start: start, Control1: c1, Control2: c2, End: end}
}

// Arc constructs a circular arc segment.
func Arc(start, end, center geometry.Point, radius float64, clockwise bool) Segment {
	return Segment{Kind: KindArc, Start: start, End: end, Center: center, Radius: radius, Clockwise: clockwise}
}

// Evaluate samples the segment at parameter t in [0,1]. For a Bezier this
// is the standard cubic Bernstein-basis evaluation; for an Arc it
// interpolates the angle swept from Start to End around Center, honoring
// Clockwise, and guarantees evaluate(0) == Start, evaluate(1) == End
// exactly (to the bit, since t=0 and t=1 short-circuit to the endpoints).
func (s Segment) Evaluate(t float64) geometry.Point {
	if t <= 0 {
		return s.Start
	}
	if t >= 1 {
		return s.End
	}
	switch s.Kind {
	case KindBezier:
		return evaluateBezier(s.Start, s.Control1, s.Control2, s.End, t)
	case KindArc:
		return evaluateArc(s, t)
	default:
		return s.Start
	}
}

func evaluateBezier(p0, p1, p2, p3 geometry.Point, t float64) geometry.Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	a := mt2 * mt
	b := 3 * mt2 * t
	c := 3 * mt * t2
	d := t2 * t
	return geometry.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func evaluateArc(s Segment, t float64) geometry.Point {
	startAngle := math.Atan2(s.Start.Y-s.Center.Y, s.Start.X-s.Center.X)
	endAngle := math.Atan2(s.End.Y-s.Center.Y, s.End.X-s.Center.X)

	delta := endAngle - startAngle
	if s.Clockwise {
		for delta > 0 {
			delta -= 2 * math.Pi
		}
	} else {
		for delta < 0 {
			delta += 2 * math.Pi
		}
	}

	angle := startAngle + delta*t
	return geometry.Point{
		X: s.Center.X + s.Radius*math.Cos(angle),
		Y: s.Center.Y + s.Radius*math.Sin(angle),
	}
}
