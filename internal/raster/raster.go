// Package raster implements the read-only raster input contract and the
// image-processing building blocks the extraction strategies share: a
// pixel buffer abstraction, grayscale conversion, binary masks, contour
// tracing, k-means color clustering, Poisson-disk sampling, and the
// pipeline's two deterministic random number generators.
package raster

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel wrapped by raster construction errors;
// callers can test for it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Raster is the external raster input contract: a read-only width x
// height buffer of 8-bit RGBA pixels, row-major, with alpha ignored by
// every consumer in this module.
type Raster struct {
	Width, Height int
	// Pix holds interleaved R,G,B,A bytes, one quadruple per pixel,
	// row-major starting at the top-left corner.
	Pix []uint8
}

// New validates and wraps a raw RGBA pixel buffer as a Raster.
func New(width, height int, pix []uint8) (*Raster, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("raster: invalid dimensions %dx%d: %w", width, height, ErrInvalidInput)
	}
	if len(pix) < width*height*4 {
		return nil, fmt.Errorf("raster: pixel buffer too small for %dx%d: %w", width, height, ErrInvalidInput)
	}
	return &Raster{Width: width, Height: height, Pix: pix}, nil
}

// At returns the RGBA components of the pixel at (x, y). No bounds
// checking is performed; callers must stay within [0,Width) x [0,Height).
func (r *Raster) At(x, y int) (uint8, uint8, uint8, uint8) {
	i := (y*r.Width + x) * 4
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2], r.Pix[i+3]
}

// RGB returns the RGBA pixel at (x, y) with alpha dropped, per the
// color-region extractor's "convert RGBA -> RGB, no premultiplication"
// step.
func (r *Raster) RGB(x, y int) (uint8, uint8, uint8) {
	rr, g, b, _ := r.At(x, y)
	return rr, g, b
}
