// Package weight implements the variable line-weight simulator: given a
// centerline and a target weight, it emits the multiple offset copies that
// simulate a thicker or thinner pen stroke, plus the contrast-based weight
// analysis used when a caller doesn't supply an explicit weight.
package weight

import "github.com/inkplot/vectorize/internal/geometry"

// Style discriminates the four line-weight simulation strategies. Dispatch
// is a switch on this enum, not virtual calls.
type Style int

const (
	// StyleParallel draws evenly-spaced parallel offset copies.
	StyleParallel Style = iota
	// StyleOutline draws two edge copies plus evenly-spaced interior fill
	// copies, each trimmed at both ends.
	StyleOutline
	// StyleScribble draws the centerline plus several randomly jittered
	// copies.
	StyleScribble
	// StyleZigzag draws a sawtooth alternating across each segment, plus
	// both outline edges.
	StyleZigzag
)

// Path is a centerline annotated with a target weight and a rendering
// style. Weight == 1.0 is neutral; > 1 means thick, < 1 means thin.
type Path struct {
	Centerline geometry.Polyline
	Weight     float64
	Style      Style
}

// thickness converts a Path's weight into the simulator's working
// thickness unit: thickness = (weight-1)*2.
func thickness(weight float64) float64 {
	return (weight - 1) * 2
}
