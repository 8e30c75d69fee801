package raster

// Run is a maximal horizontal run of "dark" pixels on one row, as used by
// the centerline extractor. MidX is the horizontal center of the run; Used
// tracks whether this run has already been consumed by a stitched path,
// scoped to a single centerline-extractor invocation.
type Run struct {
	Y        int
	X1, X2   int
	MidX     float64
	Used     bool
}

// FindDarkRuns scans every row of r for maximal horizontal runs where the
// simple (R+G+B)/3 grayscale value falls below threshold, grounded on the
// row-run scan in spencerschumann-cleanplans's FindHorizontalRuns: a single
// left-to-right pass per row tracking a run-start index and flushing the
// run when the test fails or the row ends.
func FindDarkRuns(r *Raster, threshold uint8) []Run {
	var runs []Run
	for y := 0; y < r.Height; y++ {
		runStart := -1
		for x := 0; x < r.Width; x++ {
			dark := r.SimpleGrayAt(x, y) < threshold
			if dark {
				if runStart == -1 {
					runStart = x
				}
				continue
			}
			if runStart != -1 {
				runs = append(runs, newRun(y, runStart, x))
				runStart = -1
			}
		}
		if runStart != -1 {
			runs = append(runs, newRun(y, runStart, r.Width))
		}
	}
	return runs
}

func newRun(y, x1, x2 int) Run {
	return Run{Y: y, X1: x1, X2: x2, MidX: float64(x1+x2) / 2}
}
