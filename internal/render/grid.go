package render

import (
	"fmt"
	"image/color"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
)

// Cell grid style.
const (
	GridHex       = "#808080"
	GridAlpha     = 128
	GridLineWidth = 0.5
)

// GridColor is the semi-transparent stroke color for cell boundaries.
var GridColor color.Color = gridColor()

func gridColor() color.Color {
	r, g, b := mustParseHex(GridHex).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: GridAlpha}
}

// CellGrid strokes the internal cell boundaries of d onto s and returns the
// number of lines drawn. Lines run the full width or height of the image, so
// uncovered margins on the right and bottom stay open.
func CellGrid(s Surface, d *hog.Descriptor) (int, error) {
	if d.CellSize < 1 {
		return 0, nil
	}
	s.SetStroke(GridColor, GridLineWidth)

	drawn := 0
	for x := d.CellSize; x < d.Width; x += d.CellSize {
		if err := s.StrokeLine(float64(x), 0, float64(x), float64(d.Height)); err != nil {
			return drawn, fmt.Errorf("grid column %d: %w", x, err)
		}
		drawn++
	}
	for y := d.CellSize; y < d.Height; y += d.CellSize {
		if err := s.StrokeLine(0, float64(y), float64(d.Width), float64(y)); err != nil {
			return drawn, fmt.Errorf("grid row %d: %w", y, err)
		}
		drawn++
	}
	return drawn, nil
}
