package optimize

import "github.com/inkplot/vectorize/internal/geometry"

// GreedySwap repeatedly scans adjacent pairs (i, i+1) and keeps the swap
// whenever it strictly reduces the local travel
// prev->p_i + p_i->p_{i+1} + p_{i+1}->next, reverting otherwise. It loops
// until a full scan makes no improving swap.
func GreedySwap(paths []geometry.Polyline) []geometry.Polyline {
	out := make([]geometry.Polyline, len(paths))
	copy(out, paths)

	for {
		improved := false
		for i := 0; i+1 < len(out); i++ {
			before := localTravel(out, i)
			out[i], out[i+1] = out[i+1], out[i]
			after := localTravel(out, i)
			if after < before-1e-9 {
				improved = true
			} else {
				out[i], out[i+1] = out[i+1], out[i]
			}
		}
		if !improved {
			break
		}
	}
	return out
}

// localTravel sums the travel edges touching positions i and i+1:
// prev->p_i (if i > 0), p_i->p_{i+1}, and p_{i+1}->next (if i+1 is not
// last).
func localTravel(paths []geometry.Polyline, i int) float64 {
	total := geometry.Distance(paths[i].End(), paths[i+1].Start())
	if i > 0 {
		total += geometry.Distance(paths[i-1].End(), paths[i].Start())
	}
	if i+2 < len(paths) {
		total += geometry.Distance(paths[i+1].End(), paths[i+2].Start())
	}
	return total
}
