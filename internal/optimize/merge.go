package optimize

import "github.com/inkplot/vectorize/internal/geometry"

// pairing names which of the four endpoint combinations won a merge
// candidacy check.
type pairing int

const (
	pairEndStart   pairing = iota // current.End   <-> other.Start
	pairEndEnd                    // current.End   <-> other.End
	pairStartStart                // current.Start <-> other.Start
	pairStartEnd                  // current.Start <-> other.End
)

// Merge iteratively coalesces pairs of polylines whose nearest endpoints
// are within threshold.
//
// For each unused path i, it repeatedly scans for an unused j whose best
// of the four endpoint pairings is within threshold, splices it onto the
// growing current path with whichever side-reversal the winning pairing
// requires, marks j used, and restarts the inner scan from the beginning.
// This is an O(n^3) worst case; restarting the scan from scratch after
// every merge is intentional, since the merge order it produces is part
// of this function's documented behavior, not an accident to optimize
// away.
//
// Ties are broken by taking the first feasible j in index order, not the
// globally closest one.
func Merge(paths []geometry.Polyline, threshold float64) []geometry.Polyline {
	used := make([]bool, len(paths))
	var out []geometry.Polyline

	for i := range paths {
		if used[i] {
			continue
		}
		used[i] = true
		current := paths[i]

		for {
			j, kind, ok := findMergeCandidate(paths, used, current, threshold)
			if !ok {
				break
			}
			used[j] = true
			current = splice(current, paths[j], kind)
		}
		out = append(out, current)
	}
	return out
}

// findMergeCandidate scans unused paths in index order and returns the
// first one whose best endpoint pairing against current is within
// threshold.
func findMergeCandidate(paths []geometry.Polyline, used []bool, current geometry.Polyline, threshold float64) (int, pairing, bool) {
	for j, other := range paths {
		if used[j] {
			continue
		}
		kind, dist := bestPairing(current, other)
		if dist <= threshold {
			return j, kind, true
		}
	}
	return 0, 0, false
}

func bestPairing(current, other geometry.Polyline) (pairing, float64) {
	dEndStart := geometry.Distance(current.End(), other.Start())
	dEndEnd := geometry.Distance(current.End(), other.End())
	dStartStart := geometry.Distance(current.Start(), other.Start())
	dStartEnd := geometry.Distance(current.Start(), other.End())

	best, bestDist := pairEndStart, dEndStart
	if dEndEnd < bestDist {
		best, bestDist = pairEndEnd, dEndEnd
	}
	if dStartStart < bestDist {
		best, bestDist = pairStartStart, dStartStart
	}
	if dStartEnd < bestDist {
		best, bestDist = pairStartEnd, dStartEnd
	}
	return best, bestDist
}

func splice(current, other geometry.Polyline, kind pairing) geometry.Polyline {
	switch kind {
	case pairEndEnd:
		return append(append(geometry.Polyline{}, current...), reversed(other)...)
	case pairStartStart:
		return append(append(geometry.Polyline{}, reversed(other)...), current...)
	case pairStartEnd:
		return append(append(geometry.Polyline{}, other...), current...)
	default: // pairEndStart
		return append(append(geometry.Polyline{}, current...), other...)
	}
}

func reversed(p geometry.Polyline) geometry.Polyline {
	out := make(geometry.Polyline, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}
