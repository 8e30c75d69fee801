package raster

import "image"

// FromImage converts any image.Image into a Raster, reading every pixel
// through the standard At(x,y).RGBA() accessor and downscaling the 16-bit
// channel values by a right-shift of 8.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pix := make([]uint8, width*height*4)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pix[i] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(b >> 8)
			pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}

	return &Raster{Width: width, Height: height, Pix: pix}
}
