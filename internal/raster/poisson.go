package raster

import (
	"math"

	"github.com/inkplot/vectorize/internal/geometry"
)

// PoissonDiskSample generates 2D samples across a width x height domain
// using Bridson's algorithm: every sample is at least minDist from every
// other, active candidates are grown up to k times before being retired,
// and the search radius for new candidates is bounded by maxDist. Samples
// are generated until the active list is exhausted or targetCount is
// reached, whichever comes first.
func PoissonDiskSample(width, height float64, minDist, maxDist float64, k int, targetCount int, prng *PRNG) []geometry.Point {
	if minDist <= 0 || width <= 0 || height <= 0 || targetCount <= 0 {
		return nil
	}

	cellSize := minDist / math.Sqrt2
	gridW := int(width/cellSize) + 1
	gridH := int(height/cellSize) + 1
	grid := make([]int, gridW*gridH)
	for i := range grid {
		grid[i] = -1
	}

	var samples []geometry.Point
	var active []int

	cellOf := func(p geometry.Point) (int, int) {
		return int(p.X / cellSize), int(p.Y / cellSize)
	}

	first := geometry.Point{X: prng.Float64() * width, Y: prng.Float64() * height}
	samples = append(samples, first)
	active = append(active, 0)
	cx, cy := cellOf(first)
	grid[cy*gridW+cx] = 0

	fits := func(p geometry.Point) bool {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return false
		}
		cx, cy := cellOf(p)
		for gy := cy - 2; gy <= cy+2; gy++ {
			if gy < 0 || gy >= gridH {
				continue
			}
			for gx := cx - 2; gx <= cx+2; gx++ {
				if gx < 0 || gx >= gridW {
					continue
				}
				idx := grid[gy*gridW+gx]
				if idx == -1 {
					continue
				}
				if geometry.Distance(p, samples[idx]) < minDist {
					return false
				}
			}
		}
		return true
	}

	for len(active) > 0 && len(samples) < targetCount {
		ai := prng.IntN(len(active))
		origin := samples[active[ai]]

		placed := false
		for attempt := 0; attempt < k; attempt++ {
			radius := minDist + prng.Float64()*(maxDist-minDist)
			angle := prng.Float64() * 2 * math.Pi
			candidate := geometry.Point{
				X: origin.X + radius*math.Cos(angle),
				Y: origin.Y + radius*math.Sin(angle),
			}
			if fits(candidate) {
				samples = append(samples, candidate)
				idx := len(samples) - 1
				active = append(active, idx)
				gx, gy := cellOf(candidate)
				grid[gy*gridW+gx] = idx
				placed = true
				break
			}
		}
		if !placed {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return samples
}
