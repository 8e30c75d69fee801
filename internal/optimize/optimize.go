package optimize

import "github.com/inkplot/vectorize/internal/geometry"

// Options configures one Optimize call.
type Options struct {
	// EnableMerge toggles the endpoint-merge pass.
	EnableMerge bool
	// MergeThreshold is the maximum endpoint distance Merge will coalesce.
	MergeThreshold float64
	// Enable2Opt toggles the 2-opt reordering pass.
	Enable2Opt bool
	// Max2OptIterations caps the number of full 2-opt passes.
	Max2OptIterations int
}

// Result is the outcome of one Optimize call: the reordered/merged paths,
// their final total travel distance, and the percentage improvement over
// the input's travel distance.
type Result struct {
	Paths         []geometry.Polyline
	TotalDistance float64
	Improvement   float64
}

// Optimize runs the three-pass pipeline — merge, 2-opt, greedy adjacent
// swap — over paths, in that order, skipping merge and 2-opt per opts.
// The greedy adjacent-swap cleanup always runs as the optimizer's
// unconditional final pass.
//
// A degenerate (empty) input returns a zero-valued Result with Paths nil.
func Optimize(paths []geometry.Polyline, opts Options) Result {
	if len(paths) == 0 {
		return Result{Paths: nil, TotalDistance: 0, Improvement: 0}
	}

	original := TotalTravel(paths)

	current := paths
	if opts.EnableMerge {
		current = Merge(current, opts.MergeThreshold)
	}
	if opts.Enable2Opt {
		current = TwoOpt(current, opts.Max2OptIterations)
	}
	current = GreedySwap(current)

	final := TotalTravel(current)

	improvement := 0.0
	if original > 0 {
		improvement = (original - final) / original * 100
		if improvement < 0 {
			improvement = 0
		}
	}

	return Result{Paths: current, TotalDistance: final, Improvement: improvement}
}
