package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
)

// ImageResult is a rendered image encoded as base64 PNG.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// OverlayResult is a rendered HOG overlay.
type OverlayResult struct {
	ImageResult

	// Segments is the number of line segments drawn.
	Segments int `json:"segments"`

	// GridLines is the number of cell boundary lines drawn.
	GridLines int `json:"grid_lines,omitempty"`
}

// Options controls optional overlay layers.
type Options struct {
	// ShowGrid strokes cell boundaries over the segments.
	ShowGrid bool
}

// OverlayImage renders d over a faded copy of background on a fresh canvas
// the size of the descriptor's image.
func OverlayImage(background image.Image, d *hog.Descriptor, opts Options) (image.Image, *OverlayResult, error) {
	canvas := NewCanvas(d.Width, d.Height)
	defer canvas.Close()

	res := &OverlayResult{}
	n, err := Overlay(canvas, background, d)
	res.Segments = n
	if err != nil {
		return nil, res, fmt.Errorf("failed to draw overlay: %w", err)
	}

	if opts.ShowGrid {
		lines, err := CellGrid(canvas, d)
		res.GridLines = lines
		if err != nil {
			return nil, res, fmt.Errorf("failed to draw cell grid: %w", err)
		}
	}
	return canvas.Image(), res, nil
}

// Visualize renders d over background and encodes the result as PNG.
func Visualize(background image.Image, d *hog.Descriptor, opts Options) (*OverlayResult, error) {
	img, res, err := OverlayImage(background, d, opts)
	if err != nil {
		return nil, err
	}

	encoded, err := EncodePNGBase64(img)
	if err != nil {
		return nil, err
	}

	res.ImageResult = ImageResult{
		Width:       d.Width,
		Height:      d.Height,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}
	return res, nil
}

// EncodePNGBase64 encodes img as PNG and returns it base64 encoded.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
