package extract

import (
	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/hatch"
	"github.com/inkplot/vectorize/internal/raster"
)

// HatchingOptions configures the Hatching extraction strategy.
type HatchingOptions struct {
	// NumColors is the number of grayscale quantization levels (the same
	// field the pipeline's top-level options reuse for this mode).
	NumColors int
	Spacing   float64
	AngleDeg  float64
	Style     hatch.Style
	PRNG      *raster.PRNG
	// BlurRadius pre-smooths the luma buckets before quantization, to
	// avoid the mask boundary flicker a raw-pixel quantization produces
	// at tone-level edges. Zero disables the blur.
	BlurRadius float64
}

// Hatching quantizes r's grayscale into opts.NumColors tone levels and
// renders each level as a hatch pass over that level's binary mask.
// Levels are emitted in ascending order, so repeated runs over the same
// input produce identical output.
func Hatching(r *raster.Raster, opts HatchingOptions) []geometry.Polyline {
	if opts.NumColors < 2 {
		return nil
	}
	step := 255.0 / float64(opts.NumColors)
	luma := r.SmoothedLuma(opts.BlurRadius)

	var out []geometry.Polyline
	for level := 0; level <= opts.NumColors-2; level++ {
		threshold := (float64(level) + 0.5) * step
		mask := raster.MaskFromThreshold(r.Width, r.Height, func(x, y int) bool {
			return float64(luma[y*r.Width+x]) >= threshold
		})
		intensity := 1 - float64(level)/float64(opts.NumColors-1)
		out = append(out, hatch.Generate(mask, opts.Style, opts.Spacing, opts.AngleDeg, intensity, opts.PRNG)...)
	}
	return out
}
