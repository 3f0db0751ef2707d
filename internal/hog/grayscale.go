package hog

import "image"

// Luminance weights (ITU-R BT.601).
const (
	weightR = 0.299
	weightG = 0.587
	weightB = 0.114
)

// Grid is a row-major single-channel float grid.
type Grid struct {
	Width  int
	Height int
	Data   []float64
}

// NewGrid returns a zeroed width×height grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}
}

// At returns the value at (x, y).
func (g *Grid) At(x, y int) float64 {
	return g.Data[y*g.Width+x]
}

// Set stores v at (x, y).
func (g *Grid) Set(x, y int, v float64) {
	g.Data[y*g.Width+x] = v
}

// Grayscale reduces an 8-bit non-premultiplied RGBA buffer to luminance.
//
// Samples are read straight from img.Pix so values are the same 0-255 values a
// browser canvas reports; the alpha channel is ignored.
func Grayscale(img *image.NRGBA) *Grid {
	b := img.Bounds()
	lum := NewGrid(b.Dx(), b.Dy())

	for y := 0; y < lum.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < lum.Width; x++ {
			p := row[x*4 : x*4+4 : x*4+4]
			lum.Data[y*lum.Width+x] = weightR*float64(p[0]) + weightG*float64(p[1]) + weightB*float64(p[2])
		}
	}

	return lum
}
