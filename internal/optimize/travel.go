// Package optimize implements the path optimizer: pen-travel minimization
// over an ordered list of polylines via merging, 2-opt, and a greedy
// adjacent-swap cleanup pass.
package optimize

import "github.com/inkplot/vectorize/internal/geometry"

// TotalTravel returns the pen-travel distance of an ordered list of
// polylines: the sum of distance(paths[i].End(), paths[i+1].Start()) over
// every consecutive pair. A list of 0 or 1 paths travels 0.
func TotalTravel(paths []geometry.Polyline) float64 {
	total := 0.0
	for i := 0; i+1 < len(paths); i++ {
		total += geometry.Distance(paths[i].End(), paths[i+1].Start())
	}
	return total
}
