package hog

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Summary holds aggregate statistics over a descriptor.
type Summary struct {
	CellCount           int     `json:"cell_count"`
	CellSize            int     `json:"cell_size"`
	Bins                int     `json:"bins"`
	VectorLength        int     `json:"vector_length"`
	TotalMagnitude      float64 `json:"total_magnitude"`
	AvgMagnitudePerCell float64 `json:"avg_magnitude_per_cell"`
}

// Summarize computes the summary of d. It is recomputed on every call.
//
// A descriptor without cells reports an average of 0 rather than NaN.
func Summarize(d *Descriptor) Summary {
	var total float64
	for _, c := range d.Cells {
		total += floats.Sum(c.Histogram)
	}

	s := Summary{
		CellCount:      len(d.Cells),
		CellSize:       d.CellSize,
		Bins:           d.Bins,
		VectorLength:   len(d.Cells) * d.Bins,
		TotalMagnitude: total,
	}
	if s.CellCount > 0 {
		s.AvgMagnitudePerCell = total / float64(s.CellCount)
	}
	return s
}

// Report renders the summary as human-readable text.
func (s Summary) Report() string {
	var b strings.Builder
	b.WriteString("HOG Feature Information\n")
	fmt.Fprintf(&b, "Total Cells: %d\n", s.CellCount)
	fmt.Fprintf(&b, "Cell Size: %dx%d pixels\n", s.CellSize, s.CellSize)
	fmt.Fprintf(&b, "Orientation Bins: %d\n", s.Bins)
	fmt.Fprintf(&b, "Feature Vector Length: %d\n", s.VectorLength)
	fmt.Fprintf(&b, "Total Gradient Magnitude: %.2f\n", s.TotalMagnitude)
	fmt.Fprintf(&b, "Average Magnitude per Cell: %.2f\n", s.AvgMagnitudePerCell)
	return b.String()
}
