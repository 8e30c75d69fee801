package weight

import (
	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
)

// Context selects the mapping from measured local contrast to a weight,
// when a caller has no explicit weight and wants one inferred from the
// underlying raster.
type Context int

const (
	ContextOutline Context = iota
	ContextDetail
	ContextFill
)

// analyzeSampleCount is the cap on equally-spaced vertices sampled along a
// centerline for contrast analysis.
const analyzeSampleCount = 10

// Analyze infers a weight for a centerline from local image contrast: up
// to analyzeSampleCount equally-spaced vertices are sampled, each
// contributing (max-min)/255 luma over its 3x3 neighborhood, and the mean
// of the valid samples maps to a weight via ctx.
func Analyze(r *raster.Raster, centerline geometry.Polyline, ctx Context) float64 {
	c := meanContrast(r, centerline)
	switch ctx {
	case ContextOutline:
		return 1 + 2*c
	case ContextFill:
		if v := 1 - 0.5*c; v > 0.5 {
			return v
		}
		return 0.5
	default: // ContextDetail
		return 1 + c
	}
}

func meanContrast(r *raster.Raster, centerline geometry.Polyline) float64 {
	n := len(centerline)
	if n == 0 {
		return 0
	}
	step := 1
	samples := n
	if n > analyzeSampleCount {
		samples = analyzeSampleCount
		step = n / analyzeSampleCount
		if step < 1 {
			step = 1
		}
	}

	sum := 0.0
	valid := 0
	for i := 0; i < samples; i++ {
		idx := i * step
		if idx >= n {
			break
		}
		p := centerline[idx]
		if c, ok := localContrast(r, int(p.X+0.5), int(p.Y+0.5)); ok {
			sum += c
			valid++
		}
	}
	if valid == 0 {
		return 0
	}
	return sum / float64(valid)
}

// localContrast returns (max-min)/255 of the BT.601 luma over the 3x3
// neighborhood centered on (cx, cy). ok is false if (cx, cy) lies outside
// the raster.
func localContrast(r *raster.Raster, cx, cy int) (float64, bool) {
	if cx < 0 || cx >= r.Width || cy < 0 || cy >= r.Height {
		return 0, false
	}

	minV, maxV := uint8(255), uint8(0)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
				continue
			}
			v := r.LumaAt(x, y)
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}
	return float64(maxV-minV) / 255.0, true
}
