package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Canvas is a Surface backed by a gg drawing context. It starts fully
// transparent.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a transparent width×height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// DrawImage composites img at the origin.
func (c *Canvas) DrawImage(img image.Image, opacity float64) {
	c.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		Interpolation: gg.InterpNearest,
		Opacity:       opacity,
		BlendMode:     gg.BlendNormal,
	})
}

// SetStroke sets the stroke color and width.
func (c *Canvas) SetStroke(col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
}

// StrokeLine strokes one segment.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64) error {
	c.dc.DrawLine(x1, y1, x2, y2)
	return c.dc.Stroke()
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	_ = c.dc.FlushGPU()
	return c.dc.Image()
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
