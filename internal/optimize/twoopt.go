package optimize

import "github.com/inkplot/vectorize/internal/geometry"

// TwoOpt reduces pen travel by repeatedly reversing sub-sequences of the
// visiting order, treating each polyline as a fixed-direction TSP city
// (travel cost is always end-of-previous to start-of-next; reversing the
// order never flips a path's own internal direction).
//
// Starting from the identity order, it tries every reversal order[i..j]
// with 1 <= i < j <= n-1 (leaving the very first position fixed),
// accepting any strict improvement immediately and reverting otherwise.
// Lists of fewer than 4 paths are returned in their original order.
// Ties between equally-improving pairs are resolved by scanning in
// lexicographic (i, j) order. A full pass with no accepted reversal, or
// reaching maxIterations passes, stops the search.
func TwoOpt(paths []geometry.Polyline, maxIterations int) []geometry.Polyline {
	n := len(paths)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n < 4 {
		return reorder(paths, order)
	}

	for iter := 0; iter < maxIterations; iter++ {
		improved := false
		for i := 1; i <= n-2; i++ {
			for j := i + 1; j <= n-1; j++ {
				before := orderedTravel(paths, order)
				reverseRange(order, i, j)
				after := orderedTravel(paths, order)
				if after < before-1e-9 {
					improved = true
				} else {
					reverseRange(order, i, j)
				}
			}
		}
		if !improved {
			break
		}
	}
	return reorder(paths, order)
}

func orderedTravel(paths []geometry.Polyline, order []int) float64 {
	total := 0.0
	for k := 0; k+1 < len(order); k++ {
		total += geometry.Distance(paths[order[k]].End(), paths[order[k+1]].Start())
	}
	return total
}

func reverseRange(order []int, i, j int) {
	for i < j {
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
}

func reorder(paths []geometry.Polyline, order []int) []geometry.Polyline {
	out := make([]geometry.Polyline, len(order))
	for i, idx := range order {
		out[i] = paths[idx]
	}
	return out
}
