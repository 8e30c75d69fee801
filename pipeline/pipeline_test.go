package pipeline

import (
	"errors"
	"testing"

	"github.com/inkplot/vectorize/internal/raster"
)

// gradientRaster builds a diagonal gray gradient. Its tone bands have
// staircase edges with many corners; a purely horizontal gradient would
// quantize into rectangles whose 4-corner contours fall below the
// color-region extractor's 10-point minimum.
func gradientRaster(t *testing.T, width, height int) *raster.Raster {
	pix := make([]uint8, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			v := uint8((x + y) * 255 / (width + height - 2))
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
		}
	}
	r, err := raster.New(width, height, pix)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestProcessRejectsInvalidOptions(t *testing.T) {
	r := gradientRaster(t, 10, 10)
	opts := DefaultOptions()
	opts.NumColors = 1 // out of [2,32]

	_, err := Process(r, ColorRegions, opts, DefaultAdvancedOptions())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProcessColorRegions(t *testing.T) {
	r := gradientRaster(t, 40, 40)
	paths, err := Process(r, ColorRegions, DefaultOptions(), DefaultAdvancedOptions())
	if err != nil {
		t.Fatal(err)
	}
	// An empty result is a valid outcome, but this gradient should
	// produce at least one region contour.
	if len(paths) == 0 {
		t.Fatal("expected at least one extracted region path")
	}
}

func TestProcessCenterline(t *testing.T) {
	width, height := 40, 10
	pix := make([]uint8, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			v := uint8(255)
			if y >= 3 && y <= 6 {
				v = 0
			}
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
		}
	}
	r, err := raster.New(width, height, pix)
	if err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	paths, err := Process(r, Centerline, opts, DefaultAdvancedOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("expected at least one centerline path through the dark band")
	}
}

func TestProcessWithOptimizationSucceeds(t *testing.T) {
	r := gradientRaster(t, 40, 40)
	adv := DefaultAdvancedOptions()
	adv.EnablePathOptimization = true

	paths, err := Process(r, ColorRegions, DefaultOptions(), adv)
	if err != nil {
		t.Fatal(err)
	}
	_ = paths // optimization ran without error; travel-distance invariant is covered in internal/optimize
}

func TestProcessWithCurvesFitsBeziers(t *testing.T) {
	r := gradientRaster(t, 40, 40)
	adv := DefaultAdvancedOptions()
	adv.EnableCurveFitting = true

	segments, err := ProcessWithCurves(r, ColorRegions, DefaultOptions(), adv)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) == 0 {
		t.Fatal("expected at least one curve segment")
	}
}

func TestProcessWithCurvesStraightFallback(t *testing.T) {
	r := gradientRaster(t, 40, 40)
	adv := DefaultAdvancedOptions() // EnableCurveFitting defaults to false

	segments, err := ProcessWithCurves(r, ColorRegions, DefaultOptions(), adv)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range segments {
		if s.Evaluate(0) != s.Start {
			t.Fatalf("straight-fallback segment evaluate(0) != start")
		}
		if s.Evaluate(1) != s.End {
			t.Fatalf("straight-fallback segment evaluate(1) != end")
		}
	}
}

func TestProcessVariableWeightSkippedInHatchingMode(t *testing.T) {
	r := gradientRaster(t, 40, 40)
	adv := DefaultAdvancedOptions()
	adv.EnableVariableWeight = true

	opts := DefaultOptions()
	_, err := Process(r, Hatching, opts, adv)
	if err != nil {
		t.Fatal(err)
	}
}

func TestProcessNilRaster(t *testing.T) {
	_, err := Process(nil, ColorRegions, DefaultOptions(), DefaultAdvancedOptions())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil raster, got %v", err)
	}
}
