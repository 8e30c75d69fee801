package extract

import (
	"math"

	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
)

const centerlineMinPathLength = 3

// Centerline traces skeleton-like paths through dark regions of r: each row
// contributes maximal horizontal dark runs, and runs on adjacent rows are
// stitched top-to-bottom and bottom-to-top into multi-row paths, bounded by
// proximity. Every run participates in at most one output path.
func Centerline(r *raster.Raster, threshold uint8, proximity float64) []geometry.Polyline {
	runs := raster.FindDarkRuns(r, threshold)
	if len(runs) == 0 {
		return nil
	}

	byRow := make(map[int][]*raster.Run)
	for i := range runs {
		byRow[runs[i].Y] = append(byRow[runs[i].Y], &runs[i])
	}

	var paths []geometry.Polyline
	for y := 0; y < r.Height; y++ {
		for _, seg := range byRow[y] {
			if seg.Used {
				continue
			}
			seg.Used = true
			chain := []*raster.Run{seg}

			cur := seg
			for row := y - 1; row >= 0; row-- {
				next := closestUnused(byRow[row], cur, proximity)
				if next == nil {
					break
				}
				next.Used = true
				chain = append([]*raster.Run{next}, chain...)
				cur = next
			}

			cur = seg
			for row := y + 1; row < r.Height; row++ {
				next := closestUnused(byRow[row], cur, proximity)
				if next == nil {
					break
				}
				next.Used = true
				chain = append(chain, next)
				cur = next
			}

			if len(chain) < centerlineMinPathLength {
				continue
			}
			var path geometry.Polyline
			for _, s := range chain {
				path = append(path, geometry.Point{X: s.MidX, Y: float64(s.Y)})
			}
			paths = append(paths, path)
		}
	}
	return paths
}

// closestUnused finds the unused run in candidates whose horizontal overlap
// distance to cur is within 2*proximity, minimizing
// |midX_diff| + 0.5*horizontal_gap. Returns nil when no candidate qualifies.
func closestUnused(candidates []*raster.Run, cur *raster.Run, proximity float64) *raster.Run {
	var best *raster.Run
	bestCost := math.MaxFloat64
	maxGap := 2 * proximity

	for _, c := range candidates {
		if c.Used {
			continue
		}
		gap := horizontalGap(cur, c)
		if gap > maxGap {
			continue
		}
		cost := math.Abs(cur.MidX-c.MidX) + 0.5*gap
		if cost < bestCost {
			bestCost = cost
			best = c
		}
	}
	return best
}

// horizontalGap returns 0 if the two runs' x-ranges overlap, otherwise the
// distance between their nearest ends.
func horizontalGap(a, b *raster.Run) float64 {
	if a.X1 < b.X2 && b.X1 < a.X2 {
		return 0
	}
	if a.X2 <= b.X1 {
		return float64(b.X1 - a.X2)
	}
	return float64(a.X1 - b.X2)
}
