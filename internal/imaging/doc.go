// Package imaging supplies decoded pixel buffers to the HOG pipeline.
//
// It owns everything between a file path and an in-memory RGBA grid: decoding,
// caching and metadata, plus the optional crop and the preview-size scaling
// applied before analysis.
// Coordinates use the standard image convention with (0,0) at the top-left,
// X increasing rightward and Y increasing downward.
//
// # Display Scaling
//
// Descriptors are computed on the image as it would be previewed: scaled down
// to at most DefaultMaxWidth pixels wide, keeping the aspect ratio. Images that
// are already narrow enough are used at full resolution. Because cells are a
// fixed size in pixels, the same photo produces a different descriptor at a
// different max width.
//
// # Regions
//
// Prepare can restrict analysis to a Region or a named quadrant. Cropping is
// done on the full-resolution image, so region coordinates never depend on
// the max width.
//
// # Pixel Buffers
//
// Capture, Crop and FitWidth always return a fresh *image.NRGBA: 8-bit,
// non-premultiplied, origin at (0,0). Callers may keep or modify it freely.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Capture, FitWidth and Prepare do not
// modify their inputs.
package imaging
