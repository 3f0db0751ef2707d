package hog

import "math"

// GradientField holds per-pixel gradient magnitude and direction.
//
// Direction is in radians as returned by math.Atan2, in [-π, π]. Border pixels
// are zero in both grids.
type GradientField struct {
	Width     int
	Height    int
	Magnitude *Grid
	Direction *Grid
}

// Gradients computes central-difference gradients on the interior of lum.
//
// Only pixels with 1 <= x <= W-2 and 1 <= y <= H-2 are populated; images
// narrower or shorter than 3 pixels produce an all-zero field.
func Gradients(lum *Grid) *GradientField {
	w, h := lum.Width, lum.Height
	f := &GradientField{
		Width:     w,
		Height:    h,
		Magnitude: NewGrid(w, h),
		Direction: NewGrid(w, h),
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			idx := y*w + x
			gx := lum.Data[idx+1] - lum.Data[idx-1]
			gy := lum.Data[idx+w] - lum.Data[idx-w]

			f.Magnitude.Data[idx] = math.Sqrt(gx*gx + gy*gy)
			f.Direction.Data[idx] = math.Atan2(gy, gx)
		}
	}

	return f
}
