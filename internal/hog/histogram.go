package hog

import (
	"fmt"
	"math"
)

// Cell is one square region of the image with its orientation histogram.
type Cell struct {
	// X is the zero-based cell column.
	X int `json:"x"`

	// Y is the zero-based cell row.
	Y int `json:"y"`

	// Histogram holds one magnitude-weighted accumulator per orientation bin.
	Histogram []float64 `json:"histogram"`
}

// Descriptor is the ordered set of cell histograms for one image.
//
// Cells are in row-major order: all cells of row 0 left to right, then row 1,
// and so on. Pixels to the right of CellsX*CellSize or below CellsY*CellSize
// belong to no cell.
type Descriptor struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	CellSize int    `json:"cell_size"`
	Bins     int    `json:"bins"`
	CellsX   int    `json:"cells_x"`
	CellsY   int    `json:"cells_y"`
	Cells    []Cell `json:"cells"`
}

// FeatureVector concatenates every cell histogram in canonical cell order.
func (d *Descriptor) FeatureVector() []float64 {
	v := make([]float64, 0, len(d.Cells)*d.Bins)
	for _, c := range d.Cells {
		v = append(v, c.Histogram...)
	}
	return v
}

// Cell returns the cell at column cx, row cy.
func (d *Descriptor) Cell(cx, cy int) (*Cell, bool) {
	if cx < 0 || cx >= d.CellsX || cy < 0 || cy >= d.CellsY {
		return nil, false
	}
	return &d.Cells[cy*d.CellsX+cx], true
}

// FoldAngle maps a direction in [-π, π] onto the unsigned range [0, π).
func FoldAngle(angle float64) float64 {
	a := math.Mod(angle+math.Pi, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	if a >= math.Pi {
		a = 0
	}
	return a
}

// BinIndex returns the orientation bin for a folded angle.
//
// The trailing modulo keeps an angle that rounds up to π inside the range.
func BinIndex(folded float64, bins int) int {
	binWidth := math.Pi / float64(bins)
	idx := int(math.Floor(folded/binWidth)) % bins
	if idx < 0 {
		idx += bins
	}
	return idx
}

// BuildCells accumulates a magnitude-weighted orientation histogram per cell.
//
// cellSize and bins must be positive; Compute validates them. A cell size
// larger than the image yields a descriptor with no cells, which is valid.
//
// Every pixel inside the cell grid is visited exactly once, so the cost is
// O(W·H) regardless of cell size.
func BuildCells(f *GradientField, cellSize, bins int) (*Descriptor, error) {
	cellsX := f.Width / cellSize
	cellsY := f.Height / cellSize

	d := &Descriptor{
		Width:    f.Width,
		Height:   f.Height,
		CellSize: cellSize,
		Bins:     bins,
		CellsX:   cellsX,
		CellsY:   cellsY,
		Cells:    make([]Cell, 0, cellsX*cellsY),
	}

	for cy := 0; cy < cellsY; cy++ {
		for cx := 0; cx < cellsX; cx++ {
			hist := make([]float64, bins)

			for y := 0; y < cellSize; y++ {
				for x := 0; x < cellSize; x++ {
					px := cx*cellSize + x
					py := cy*cellSize + y
					if px >= f.Width || py >= f.Height {
						continue
					}

					idx := py*f.Width + px
					mag := f.Magnitude.Data[idx]
					bin := BinIndex(FoldAngle(f.Direction.Data[idx]), bins)
					if bin < 0 || bin >= bins {
						return nil, fmt.Errorf("cell (%d,%d) pixel (%d,%d): bin %d of %d: %w",
							cx, cy, px, py, bin, bins, ErrIndexOutOfRange)
					}

					hist[bin] += mag
				}
			}

			d.Cells = append(d.Cells, Cell{X: cx, Y: cy, Histogram: hist})
		}
	}

	return d, nil
}
