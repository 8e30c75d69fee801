package raster

import (
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// KMeansResult is the outcome of clustering a raster's pixels in RGB space.
type KMeansResult struct {
	// Centers holds the final cluster centroids, RGB components in [0,255].
	Centers []colorful.Color
	// Labels holds, for every pixel in row-major order, the index into
	// Centers it was assigned to.
	Labels []int
	// Inertia is the sum of squared distances from each pixel to its
	// assigned center, the criterion used to pick the best of several
	// restarts.
	Inertia float64
}

// KMeans clusters a raster's pixels into numColors groups in RGB space.
//
// numColors centers, up to 20 iterations or convergence epsilon 1.0
// (measured as the largest center movement between iterations), random
// initial centers drawn from the image's own pixels via prng, 10
// restarts, keeping the restart with the lowest inertia.
//
// Color distance is computed with github.com/lucasb-eyer/go-colorful's Lab
// conversion (DistanceLab), a perceptual metric more faithful to how the
// colors will read once vectorized than naive Euclidean RGB distance.
func KMeans(r *Raster, numColors int, prng *PRNG) (*KMeansResult, error) {
	n := r.Width * r.Height
	if n == 0 || numColors < 1 {
		return nil, errKMeansEmpty
	}

	var best *KMeansResult
	for restart := 0; restart < 10; restart++ {
		result := runKMeansOnce(r, numColors, prng)
		if best == nil || result.Inertia < best.Inertia {
			best = result
		}
	}
	return best, nil
}

func runKMeansOnce(r *Raster, numColors int, prng *PRNG) *KMeansResult {
	n := r.Width * r.Height
	pixels := make([]colorful.Color, n)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			rr, g, b := r.RGB(x, y)
			pixels[y*r.Width+x] = colorful.Color{R: float64(rr) / 255, G: float64(g) / 255, B: float64(b) / 255}
		}
	}

	centers := make([]colorful.Color, numColors)
	for i := range centers {
		centers[i] = pixels[prng.IntN(n)]
	}

	labels := make([]int, n)
	const maxIterations = 20
	const convergenceEps = 1.0 / 255.0 // epsilon 1.0 in 8-bit units, scaled to [0,1]

	for iter := 0; iter < maxIterations; iter++ {
		for i, px := range pixels {
			best, bestDist := 0, math.MaxFloat64
			for k, c := range centers {
				d := labDistance(px, c)
				if d < bestDist {
					bestDist = d
					best = k
				}
			}
			labels[i] = best
		}

		sums := make([]colorful.Color, numColors)
		counts := make([]int, numColors)
		for i, px := range pixels {
			k := labels[i]
			sums[k].R += px.R
			sums[k].G += px.G
			sums[k].B += px.B
			counts[k]++
		}

		maxMove := 0.0
		for k := range centers {
			if counts[k] == 0 {
				continue
			}
			newCenter := colorful.Color{
				R: sums[k].R / float64(counts[k]),
				G: sums[k].G / float64(counts[k]),
				B: sums[k].B / float64(counts[k]),
			}
			move := labDistance(newCenter, centers[k])
			if move > maxMove {
				maxMove = move
			}
			centers[k] = newCenter
		}

		if maxMove < convergenceEps {
			break
		}
	}

	inertia := 0.0
	for i, px := range pixels {
		d := labDistance(px, centers[labels[i]])
		inertia += d * d
	}

	return &KMeansResult{Centers: centers, Labels: labels, Inertia: inertia}
}

func labDistance(a, b colorful.Color) float64 {
	return a.DistanceLab(b)
}

var errKMeansEmpty = errors.New("raster: cannot run k-means on an empty raster or with numColors < 1")
