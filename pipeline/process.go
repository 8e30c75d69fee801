package pipeline

import (
	"fmt"

	"github.com/inkplot/vectorize/internal/curve"
	"github.com/inkplot/vectorize/internal/extract"
	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/optimize"
	"github.com/inkplot/vectorize/internal/raster"
	"github.com/inkplot/vectorize/internal/weight"
)

// Process runs one extraction strategy (per mode) over r, then optionally
// the line-weight simulator and the path optimizer, returning the final
// ordered polylines.
//
// Validation failures (raster too small, an option outside its documented
// range) are the only errors Process returns: k-means/contour extraction
// failures and other recoverable numeric degeneracies are neutralized
// internally and never surface here.
func Process(r *raster.Raster, mode Mode, opts Options, adv AdvancedOptions) ([]geometry.Polyline, error) {
	if r == nil {
		return nil, fmt.Errorf("pipeline: raster is nil: %w", ErrInvalidInput)
	}
	if err := validate(r.Width, r.Height, opts, mode); err != nil {
		return nil, err
	}

	prng := raster.NewPRNG(seedOrDefault(adv.Seed))

	var paths []geometry.Polyline
	switch mode {
	case ColorRegions:
		paths = extract.ColorRegions(r, opts.NumColors, prng)
	case Centerline:
		paths = extract.Centerline(r, uint8(opts.Threshold), opts.Proximity)
	case Hatching:
		paths = extract.Hatching(r, extract.HatchingOptions{
			NumColors:  opts.NumColors,
			Spacing:    opts.HatchSpacing,
			AngleDeg:   opts.HatchAngle,
			Style:      adv.HatchingStyle.toHatch(),
			PRNG:       prng,
			BlurRadius: 1.0,
		})
	default:
		return nil, fmt.Errorf("pipeline: unknown mode %d: %w", mode, ErrInvalidInput)
	}

	if adv.EnableVariableWeight && mode != Hatching {
		paths = simulateWeight(r, paths, adv)
	}

	if adv.EnablePathOptimization {
		result := optimize.Optimize(paths, optimize.Options{
			EnableMerge:       adv.EnablePathMerging,
			MergeThreshold:    mergeThreshold,
			Enable2Opt:        adv.Enable2Opt,
			Max2OptIterations: max2OptIterations,
		})
		paths = result.Paths
	}

	return paths, nil
}

// ProcessWithCurves runs Process and then converts every resulting
// polyline into curve segments: a least-squares Bezier fit when
// adv.EnableCurveFitting is set, or a straight-line cubic per edge
// otherwise (control points at the chord's 1/3 and 2/3 points, so
// Evaluate still traces the original polyline exactly). Arc conversion, if
// enabled, runs as a post-pass over whichever curve set was produced.
func ProcessWithCurves(r *raster.Raster, mode Mode, opts Options, adv AdvancedOptions) ([]curve.Segment, error) {
	paths, err := Process(r, mode, opts, adv)
	if err != nil {
		return nil, err
	}

	var segments []curve.Segment
	for _, p := range paths {
		var segs []curve.Segment
		if adv.EnableCurveFitting {
			segs = curve.FitBeziers(p, adv.CurveTolerance)
		} else {
			segs = straightSegments(p)
		}
		if adv.EnableArcConversion {
			segs = curve.ConvertArcs(segs, adv.CurveTolerance)
		}
		segments = append(segments, segs...)
	}
	return segments, nil
}

func straightSegments(p geometry.Polyline) []curve.Segment {
	if len(p) < 2 {
		return nil
	}
	out := make([]curve.Segment, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		c1 := geometry.Point{X: a.X + (b.X-a.X)/3, Y: a.Y + (b.Y-a.Y)/3}
		c2 := geometry.Point{X: a.X + (b.X-a.X)*2/3, Y: a.Y + (b.Y-a.Y)*2/3}
		out = append(out, curve.Bezier(a, c1, c2, b))
	}
	return out
}

// simulateWeight analyzes each extracted polyline's local contrast,
// derives a weight from it, and expands it into the line-weight
// simulator's offset copies. Path i seeds its scribble jitter with i, so
// repeated runs over the same input reproduce identical jitter.
func simulateWeight(r *raster.Raster, paths []geometry.Polyline, adv AdvancedOptions) []geometry.Polyline {
	style := adv.LineWeightStyle.toWeight()
	var out []geometry.Polyline
	for i, p := range paths {
		w := weight.Analyze(r, p, weight.ContextDetail)
		expanded := weight.Simulate(weight.Path{Centerline: p, Weight: w, Style: style}, uint32(i))
		out = append(out, expanded...)
	}
	return out
}

func seedOrDefault(seed uint32) uint32 {
	if seed == 0 {
		return raster.DefaultSeed
	}
	return seed
}
