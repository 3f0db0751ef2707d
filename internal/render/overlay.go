package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
)

// Fixed overlay style.
const (
	BackgroundOpacity = 0.3
	AccentHex         = "#ff0000"
	LineWidth         = 1.5

	// MinSegmentLength suppresses near-zero bins; shorter half-lengths are
	// not drawn.
	MinSegmentLength = 0.1
)

// Accent is the stroke color for every segment.
var Accent color.Color = mustParseHex(AccentHex)

func mustParseHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("render: bad color %q: %v", hex, err))
	}
	return c
}

// Surface is a drawing target sized to the analyzed image.
type Surface interface {
	// DrawImage composites img at the origin with the given opacity.
	DrawImage(img image.Image, opacity float64)

	// SetStroke sets the color and width used by later StrokeLine calls.
	SetStroke(c color.Color, width float64)

	// StrokeLine strokes a straight segment from (x1,y1) to (x2,y2).
	StrokeLine(x1, y1, x2, y2 float64) error
}

// Overlay draws the background and the orientation segments of every cell in
// d onto s, and returns the number of segments drawn.
//
// Cells whose histogram is all zero are skipped entirely. A nil background
// leaves the surface as it is under the segments.
func Overlay(s Surface, background image.Image, d *hog.Descriptor) (int, error) {
	if background != nil {
		s.DrawImage(background, BackgroundOpacity)
	}
	s.SetStroke(Accent, LineWidth)

	half := float64(d.CellSize) / 2
	angleStep := math.Pi / float64(d.Bins)
	drawn := 0

	for _, cell := range d.Cells {
		if len(cell.Histogram) == 0 {
			continue
		}
		maxVal := floats.Max(cell.Histogram)
		if maxVal == 0 {
			continue
		}

		cx := float64(cell.X*d.CellSize) + half
		cy := float64(cell.Y*d.CellSize) + half

		for i, v := range cell.Histogram {
			magnitude := v / maxVal * half
			if magnitude <= MinSegmentLength {
				continue
			}

			angle := float64(i) * angleStep
			dx := math.Cos(angle) * magnitude
			dy := math.Sin(angle) * magnitude

			if err := s.StrokeLine(cx-dx, cy-dy, cx+dx, cy+dy); err != nil {
				return drawn, fmt.Errorf("cell (%d,%d) bin %d: %w", cell.X, cell.Y, i, err)
			}
			drawn++
		}
	}

	return drawn, nil
}
