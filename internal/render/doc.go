// Package render draws HOG descriptors as line-segment overlays.
//
// Every cell with gradient energy is drawn as a small star of segments
// centered on the cell: one segment per orientation bin, rotated to the bin's
// lower edge angle and scaled by that bin's share of the cell's strongest bin.
// Segments extend equally in both directions because unsigned orientations
// describe an axis, not a direction.
//
// # Normalization
//
// Each cell is scaled by its own maximum bin. Segment lengths are therefore
// comparable within a cell but not across cells: a faint cell and a strong
// cell with the same orientation profile look identical.
//
// # Style
//
// The source image is drawn first at 30% opacity. Segments are stroked in
// red (#ff0000) at 1.5 pixels wide. Neither is configurable. Options.ShowGrid
// adds thin semi-transparent gray cell boundaries on top.
//
// # Surfaces
//
// Overlay draws through the Surface interface. Canvas is the production
// implementation, backed by the gg software rasterizer.
package render
