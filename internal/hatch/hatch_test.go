package hatch

import (
	"testing"

	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
)

func rectMask(width, height, x1, y1, x2, y2 int) *raster.Mask {
	return raster.MaskFromThreshold(width, height, func(x, y int) bool {
		return x >= x1 && x < x2 && y >= y1 && y < y2
	})
}

func TestParallelStaysInsideMask(t *testing.T) {
	m := rectMask(100, 100, 20, 20, 80, 80)
	paths := Generate(m, Parallel, 4, 30, 0.7, raster.NewPRNG(raster.DefaultSeed))
	if len(paths) == 0 {
		t.Fatal("expected at least one hatch stroke")
	}
	for _, p := range paths {
		for _, pt := range p {
			if !m.AtPoint(pt.X, pt.Y) {
				t.Fatalf("vertex %v outside mask", pt)
			}
		}
	}
}

func TestCrossStaysInsideMask(t *testing.T) {
	m := rectMask(100, 100, 20, 20, 80, 80)
	paths := Generate(m, Cross, 4, 0, 0.6, raster.NewPRNG(raster.DefaultSeed))
	for _, p := range paths {
		for _, pt := range p {
			if !m.AtPoint(pt.X, pt.Y) {
				t.Fatalf("vertex %v outside mask", pt)
			}
		}
	}
}

func TestStipplingInsideMask(t *testing.T) {
	m := rectMask(100, 100, 20, 20, 80, 80)
	dots := Generate(m, Stippling, 4, 0, 0.5, raster.NewPRNG(raster.DefaultSeed))
	if len(dots) == 0 {
		t.Fatal("expected at least one stipple dot")
	}
	for _, dot := range dots {
		p := dot[0]
		if p.X < 20 || p.X > 80 || p.Y < 20 || p.Y > 80 {
			t.Fatalf("dot origin %v outside mask bounds", p)
		}
	}
}

func TestContourEmitsClosedOffsetLoops(t *testing.T) {
	m := rectMask(100, 100, 20, 20, 80, 80)
	paths := Generate(m, Contour, 4, 0, 0.5, raster.NewPRNG(raster.DefaultSeed))
	if len(paths) == 0 {
		t.Fatal("expected at least one contour layer")
	}
	for _, p := range paths {
		if len(p) < 3 {
			t.Fatalf("expected contour layers to keep >= 3 points, got %d", len(p))
		}
	}
}

func TestTrimSymmetricNeverGrowsRun(t *testing.T) {
	run := make(geometry.Polyline, 20)
	for i := range run {
		run[i] = geometry.Point{X: float64(i), Y: 0}
	}
	prng := raster.NewPRNG(raster.DefaultSeed)
	for i := 0; i < 50; i++ {
		trimmed := trimSymmetric(run, prng)
		if len(trimmed) > len(run) {
			t.Fatalf("trimmed run grew: %d -> %d", len(run), len(trimmed))
		}
		if len(trimmed) < 2 {
			t.Fatalf("trimmed run fell below 2 points: %d", len(trimmed))
		}
	}
}
