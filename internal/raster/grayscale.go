package raster

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// Luma converts an RGB triple to grayscale using ITU-R BT.601 luminance
// weights: Y = 0.299*R + 0.587*G + 0.114*B.
func Luma(r, g, b uint8) uint8 {
	return uint8(float64(r)*0.299 + float64(g)*0.587 + float64(b)*0.114)
}

// SimpleGray converts an RGB triple to grayscale by unweighted channel
// average, as required by the centerline extractor's row-run detection:
// (R+G+B)/3.
func SimpleGray(r, g, b uint8) uint8 {
	return uint8((int(r) + int(g) + int(b)) / 3)
}

// LumaAt returns the BT.601 luma of the pixel at (x, y).
func (r *Raster) LumaAt(x, y int) uint8 {
	rr, g, b := r.RGB(x, y)
	return Luma(rr, g, b)
}

// SimpleGrayAt returns the unweighted (R+G+B)/3 gray value of the pixel at
// (x, y), per the centerline extractor's threshold test.
func (r *Raster) SimpleGrayAt(x, y int) uint8 {
	rr, g, b := r.RGB(x, y)
	return SimpleGray(rr, g, b)
}

// SmoothedLuma returns a BT.601 luma buffer (row-major, one byte per pixel)
// after a light Gaussian pre-blur. The hatching extractor uses this instead
// of raw per-pixel luma to avoid banding artifacts at tone-quantization
// boundaries; radius <= 0 skips the blur entirely.
func (r *Raster) SmoothedLuma(radius float64) []uint8 {
	out := make([]uint8, r.Width*r.Height)
	if radius <= 0 {
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				out[y*r.Width+x] = r.LumaAt(x, y)
			}
		}
		return out
	}

	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	copy(img.Pix, r.Pix)
	blurred := blur.Gaussian(img, radius)

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := blurred.RGBAAt(x, y)
			out[y*r.Width+x] = Luma(c.R, c.G, c.B)
		}
	}
	return out
}
