package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultMaxWidth is the preview width cap applied before analysis.
const DefaultMaxWidth = 500

// Capture copies img into an 8-bit non-premultiplied RGBA buffer with its
// origin at (0,0). The copy is owned by the caller.
func Capture(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// FitWidth scales img down so it is at most maxWidth pixels wide.
//
// The scale is min(1, maxWidth/width) and applies to both axes; the scaled
// dimensions are truncated, never rounded up. Images that already fit, and a
// maxWidth of zero or less, return an unscaled copy.
func FitWidth(img image.Image, maxWidth int) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxWidth <= 0 || w <= maxWidth {
		return Capture(img)
	}

	scale := float64(maxWidth) / float64(w)
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	return imaging.Resize(img, newW, newH, imaging.Linear)
}

// Source selects the pixels an analysis runs on.
type Source struct {
	// Path is the image file, decoded through the cache.
	Path string

	// Region, when set, crops the image before scaling. Coordinates are in
	// the full-resolution image.
	Region *Region

	// Quadrant, when set, crops to a named region (see QuadrantRegion).
	// Region and Quadrant are mutually exclusive.
	Quadrant string

	// MaxWidth caps the width after cropping; 0 disables scaling.
	MaxWidth int
}

// Prepare loads src.Path through cache and returns the pixel buffer that
// analysis runs on: the image cropped to the requested region, scaled to
// src.MaxWidth and copied to NRGBA.
func Prepare(cache *ImageCache, src Source) (*image.NRGBA, error) {
	if src.Region != nil && src.Quadrant != "" {
		return nil, fmt.Errorf("region and quadrant are mutually exclusive")
	}

	img, err := cache.Load(src.Path)
	if err != nil {
		return nil, err
	}

	region := src.Region
	if src.Quadrant != "" {
		b := img.Bounds()
		r, err := QuadrantRegion(b.Dx(), b.Dy(), src.Quadrant)
		if err != nil {
			return nil, err
		}
		region = &r
	}

	if region != nil {
		cropped, err := Crop(img, *region)
		if err != nil {
			return nil, err
		}
		img = cropped
	}

	return FitWidth(img, src.MaxWidth), nil
}
