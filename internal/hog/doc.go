// Package hog computes Histogram of Oriented Gradients descriptors.
//
// The pipeline runs strictly forward over a single decoded image:
//
//  1. Grayscale: RGBA samples -> luminance using ITU-R BT.601 weights
//     (0.299*R + 0.587*G + 0.114*B), alpha ignored.
//
//  2. Gradients: central differences on interior pixels
//     gx = L(x+1,y) - L(x-1,y), gy = L(x,y+1) - L(x,y-1)
//     magnitude = sqrt(gx² + gy²), direction = atan2(gy, gx)
//
//  3. Cell histograms: the image is split into non-overlapping square cells
//     and each pixel votes its magnitude into an unsigned orientation bin.
//
//  4. Summary: cell count, feature vector length and gradient energy.
//
// # Border Policy
//
// The first and last row and column have no neighbor on one side, so their
// gradient is left at zero. No padding or replication is applied. Those
// pixels still belong to cells; they simply contribute nothing.
//
// # Orientation Bins
//
// Gradients are unsigned: a direction and its opposite fall in the same bin.
// With n bins, bin b covers [b*π/n, (b+1)*π/n).
//
// # Cell Order
//
// Cells are stored row-major (cell row outer, cell column inner). This order
// defines the layout of the concatenated feature vector.
//
// # Thread Safety
//
// Every function is pure. Results share no state with their inputs and can
// be used from any goroutine.
package hog
