package render

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
)

// GradientMap renders gradient magnitude as a grayscale image.
//
// Values are scaled so the strongest pixel is white. A field without any
// gradient energy renders all black, as do the zero border pixels.
func GradientMap(f *hog.GradientField) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	if len(f.Magnitude.Data) == 0 {
		return out
	}

	maxVal := floats.Max(f.Magnitude.Data)
	if maxVal == 0 {
		return out
	}

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			v := f.Magnitude.At(x, y) / maxVal * 255
			out.SetGray(x, y, color.Gray{Y: uint8(math.Round(v))})
		}
	}
	return out
}

// VisualizeGradients computes the gradient field of img and returns its
// magnitude map encoded as PNG.
func VisualizeGradients(img *image.NRGBA) (*ImageResult, error) {
	field := hog.Gradients(hog.Grayscale(img))

	encoded, err := EncodePNGBase64(GradientMap(field))
	if err != nil {
		return nil, err
	}

	return &ImageResult{
		Width:       field.Width,
		Height:      field.Height,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
