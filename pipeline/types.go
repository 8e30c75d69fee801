// Package pipeline implements the top-level Process/ProcessWithCurves
// entry points: it wires the extraction strategies, the line-weight
// simulator, the path optimizer, and the curve fitter into a single call
// an external consumer (a G-code emitter, a preview renderer) can make.
package pipeline

import (
	"github.com/inkplot/vectorize/internal/hatch"
	"github.com/inkplot/vectorize/internal/weight"
)

// Mode selects which of the three extraction strategies Process runs.
type Mode int

const (
	ColorRegions Mode = iota
	Centerline
	Hatching
)

// HatchingStyle selects the tonal hatching pattern. It is kept as a
// distinct exported type from internal/hatch.Style so pipeline callers
// never need to import an internal package.
type HatchingStyle int

const (
	HatchParallel HatchingStyle = iota
	HatchContour
	HatchCross
	HatchStippling
)

func (s HatchingStyle) toHatch() hatch.Style {
	switch s {
	case HatchContour:
		return hatch.Contour
	case HatchCross:
		return hatch.Cross
	case HatchStippling:
		return hatch.Stippling
	default:
		return hatch.Parallel
	}
}

// WeightStyle selects how a variable-weight line is simulated as offset
// copies of its centerline.
type WeightStyle int

const (
	WeightParallel WeightStyle = iota
	WeightOutline
	WeightScribble
	WeightZigzag
)

func (s WeightStyle) toWeight() weight.Style {
	switch s {
	case WeightOutline:
		return weight.StyleOutline
	case WeightScribble:
		return weight.StyleScribble
	case WeightZigzag:
		return weight.StyleZigzag
	default:
		return weight.StyleParallel
	}
}

// Options holds the per-mode extraction parameters.
type Options struct {
	NumColors    int     // [2, 32]
	Threshold    int     // [0, 255]
	Proximity    float64 // [0, 50]
	HatchSpacing float64 // [1, 20]
	HatchAngle   float64 // [0, 180]
}

// DefaultOptions returns representative mid-range values for every field,
// since the zero value of each would fail validation.
func DefaultOptions() Options {
	return Options{
		NumColors:    8,
		Threshold:    128,
		Proximity:    4,
		HatchSpacing: 4,
		HatchAngle:   45,
	}
}

// AdvancedOptions holds the optional-feature toggles for curve fitting,
// arc conversion, variable line weight, and path optimization. Merge
// threshold and 2-opt iteration cap are fixed at the top-level entry point
// and not exposed here.
type AdvancedOptions struct {
	EnableCurveFitting bool
	CurveTolerance     float64

	EnableArcConversion bool

	HatchingStyle HatchingStyle

	// EnableVariableWeight is ignored in Hatching mode: hatch fills
	// already vary density through their own spacing and layering.
	EnableVariableWeight bool
	LineWeightStyle      WeightStyle

	EnablePathOptimization bool
	EnablePathMerging      bool
	Enable2Opt             bool

	// Seed drives k-means initialization, Poisson-disk sampling, and the
	// cross-hatch length-variation trim. Zero means "use the pipeline's
	// fixed default".
	Seed uint32
}

// DefaultAdvancedOptions returns every feature off, curve tolerance 2.0,
// parallel hatching/weight styles, and merging/2-opt on by default
// whenever optimization itself is enabled.
func DefaultAdvancedOptions() AdvancedOptions {
	return AdvancedOptions{
		EnableCurveFitting:     false,
		CurveTolerance:         2.0,
		EnableArcConversion:    false,
		HatchingStyle:          HatchParallel,
		EnableVariableWeight:   false,
		LineWeightStyle:        WeightParallel,
		EnablePathOptimization: false,
		EnablePathMerging:      true,
		Enable2Opt:             true,
	}
}

// mergeThreshold and max2OptIterations are fixed at the top-level entry
// point rather than exposed as tunable options.
const (
	mergeThreshold    = 5.0
	max2OptIterations = 100
)
