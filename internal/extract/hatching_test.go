package extract

import (
	"testing"

	"github.com/inkplot/vectorize/internal/hatch"
	"github.com/inkplot/vectorize/internal/raster"
)

func TestHatchingProducesPaths(t *testing.T) {
	width, height := 60, 60
	pix := make([]uint8, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			// A horizontal gradient: darker on the left.
			v := uint8(x * 255 / width)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
		}
	}
	r, err := raster.New(width, height, pix)
	if err != nil {
		t.Fatal(err)
	}

	paths := Hatching(r, HatchingOptions{
		NumColors: 6,
		Spacing:   4,
		AngleDeg:  30,
		Style:     hatch.Parallel,
		PRNG:      raster.NewPRNG(raster.DefaultSeed),
	})
	if len(paths) == 0 {
		t.Fatal("expected at least one hatch path over a gradient image")
	}
}

func TestHatchingRejectsTooFewLevels(t *testing.T) {
	r, err := raster.New(4, 4, make([]uint8, 4*4*4))
	if err != nil {
		t.Fatal(err)
	}
	if paths := Hatching(r, HatchingOptions{NumColors: 1}); paths != nil {
		t.Fatalf("expected nil for NumColors < 2, got %v", paths)
	}
}
