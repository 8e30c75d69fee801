package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel every validation failure wraps; callers
// test for it with errors.Is. Numeric degeneracies and extractor failures
// never leave this package: they are neutralized at the point of
// occurrence (internal/curve, internal/extract) with fallback values.
var ErrInvalidInput = errors.New("pipeline: invalid input")

func validate(width, height int, opts Options, mode Mode) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("pipeline: raster dimensions %dx%d must be >= 1: %w", width, height, ErrInvalidInput)
	}
	if opts.NumColors < 2 || opts.NumColors > 32 {
		return fmt.Errorf("pipeline: numColors %d out of range [2,32]: %w", opts.NumColors, ErrInvalidInput)
	}
	if opts.Threshold < 0 || opts.Threshold > 255 {
		return fmt.Errorf("pipeline: threshold %d out of range [0,255]: %w", opts.Threshold, ErrInvalidInput)
	}
	if opts.Proximity < 0 || opts.Proximity > 50 {
		return fmt.Errorf("pipeline: proximity %v out of range [0,50]: %w", opts.Proximity, ErrInvalidInput)
	}
	if opts.HatchSpacing < 1 || opts.HatchSpacing > 20 {
		return fmt.Errorf("pipeline: hatchSpacing %v out of range [1,20]: %w", opts.HatchSpacing, ErrInvalidInput)
	}
	if opts.HatchAngle < 0 || opts.HatchAngle > 180 {
		return fmt.Errorf("pipeline: hatchAngle %v out of range [0,180]: %w", opts.HatchAngle, ErrInvalidInput)
	}
	return nil
}
