package raster

import "testing"

func solidMask(width, height, x1, y1, x2, y2 int) *Mask {
	return MaskFromThreshold(width, height, func(x, y int) bool {
		return x >= x1 && x < x2 && y >= y1 && y < y2
	})
}

func TestNewValidatesDimensions(t *testing.T) {
	if _, err := New(0, 10, make([]uint8, 400)); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestMaskAtOutOfRange(t *testing.T) {
	m := NewMask(4, 4)
	if m.At(-1, 0) || m.At(4, 0) {
		t.Fatal("out-of-range coordinates must be outside the mask")
	}
}

func TestComponentsSeparatesRegions(t *testing.T) {
	m := NewMask(10, 10)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			m.Set(x, y, true)
		}
	}
	for x := 6; x < 8; x++ {
		for y := 6; y < 8; y++ {
			m.Set(x, y, true)
		}
	}

	comps := Components(m)
	if len(comps) != 2 {
		t.Fatalf("expected 2 components, got %d", len(comps))
	}
	for _, c := range comps {
		if len(c) != 4 {
			t.Fatalf("expected each 2x2 component to have 4 pixels, got %d", len(c))
		}
	}
}

func TestTraceExternalContourRectangle(t *testing.T) {
	m := solidMask(20, 20, 5, 5, 15, 15)
	contour := TraceExternalContour(m, 5, 5)
	if len(contour) < 3 {
		t.Fatalf("expected at least 3 corners for a rectangle, got %d: %v", len(contour), contour)
	}
	// Every traced vertex should lie on the lattice boundary of the
	// filled region, i.e. within [5,15] on both axes.
	for _, p := range contour {
		if p.X < 5 || p.X > 15 || p.Y < 5 || p.Y > 15 {
			t.Fatalf("contour vertex %v outside expected lattice bounds", p)
		}
	}
}

func TestFindDarkRunsSingleRun(t *testing.T) {
	pix := make([]uint8, 10*1*4)
	for x := 0; x < 10; x++ {
		v := uint8(255)
		if x >= 3 && x < 7 {
			v = 0
		}
		i := x * 4
		pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
	}
	r, err := New(10, 1, pix)
	if err != nil {
		t.Fatal(err)
	}
	runs := FindDarkRuns(r, 128)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].X1 != 3 || runs[0].X2 != 7 {
		t.Fatalf("expected run [3,7), got [%d,%d)", runs[0].X1, runs[0].X2)
	}
}

func TestPoissonDiskMinDistance(t *testing.T) {
	prng := NewPRNG(DefaultSeed)
	samples := PoissonDiskSample(100, 100, 5, 10, 30, 200, prng)
	if len(samples) < 2 {
		t.Fatalf("expected multiple samples, got %d", len(samples))
	}
	for i := range samples {
		for j := i + 1; j < len(samples); j++ {
			dx := samples[i].X - samples[j].X
			dy := samples[i].Y - samples[j].Y
			d2 := dx*dx + dy*dy
			if d2 < 4.999*4.999 {
				t.Fatalf("samples %d and %d are closer than minDist: %v %v", i, j, samples[i], samples[j])
			}
		}
	}
}

func TestKMeansAssignsEveryPixel(t *testing.T) {
	width, height := 8, 8
	pix := make([]uint8, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			if x < width/2 {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 10, 10, 10, 255
			} else {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 240, 240, 240, 255
			}
		}
	}
	r, err := New(width, height, pix)
	if err != nil {
		t.Fatal(err)
	}
	result, err := KMeans(r, 2, NewPRNG(DefaultSeed))
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Labels) != width*height {
		t.Fatalf("expected a label per pixel, got %d labels for %d pixels", len(result.Labels), width*height)
	}
}
