package hog

import (
	"fmt"
	"image"
)

// Result is the output of one pipeline run.
type Result struct {
	Descriptor *Descriptor `json:"descriptor"`
	Summary    Summary     `json:"summary"`
}

// Compute runs the full pipeline on img.
//
// Parameters:
//   - img: Decoded 8-bit RGBA buffer. Must have at least one pixel.
//   - cellSize: Side of a square cell in pixels. Must be >= 1.
//   - bins: Number of orientation bins over [0, π). Must be >= 1.
//
// Returns:
//   - *Result: The descriptor and its summary.
//   - error: ErrInvalidParameter (wrapped) when a precondition fails. No
//     partial result is returned on error.
//
// # Degenerate Input
//
// A cell size larger than the image gives zero cells; an image smaller than
// 3×3 has no interior pixels and therefore zero gradient energy. Neither is
// an error.
func Compute(img *image.NRGBA, cellSize, bins int) (*Result, error) {
	if err := validate(img, cellSize, bins); err != nil {
		return nil, err
	}

	field := Gradients(Grayscale(img))

	d, err := BuildCells(field, cellSize, bins)
	if err != nil {
		return nil, err
	}

	return &Result{
		Descriptor: d,
		Summary:    Summarize(d),
	}, nil
}

func validate(img *image.NRGBA, cellSize, bins int) error {
	if cellSize < 1 {
		return fmt.Errorf("cell size %d must be at least 1: %w", cellSize, ErrInvalidParameter)
	}
	if bins < 1 {
		return fmt.Errorf("bin count %d must be at least 1: %w", bins, ErrInvalidParameter)
	}
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("image has no pixels: %w", ErrInvalidParameter)
	}
	return nil
}
