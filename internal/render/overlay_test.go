package render

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
)

type segment struct {
	x1, y1, x2, y2 float64
}

// recordingSurface captures draw calls instead of rasterizing them.
type recordingSurface struct {
	backgrounds []float64
	strokeColor color.Color
	strokeWidth float64
	segments    []segment
	failAfter   int
}

func (r *recordingSurface) DrawImage(_ image.Image, opacity float64) {
	r.backgrounds = append(r.backgrounds, opacity)
}

func (r *recordingSurface) SetStroke(c color.Color, width float64) {
	r.strokeColor = c
	r.strokeWidth = width
}

func (r *recordingSurface) StrokeLine(x1, y1, x2, y2 float64) error {
	if r.failAfter > 0 && len(r.segments) >= r.failAfter {
		return errors.New("surface full")
	}
	r.segments = append(r.segments, segment{x1, y1, x2, y2})
	return nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOverlay_Geometry(t *testing.T) {
	d := &hog.Descriptor{
		Width: 8, Height: 4, CellSize: 4, Bins: 4, CellsX: 2, CellsY: 1,
		Cells: []hog.Cell{
			{X: 0, Y: 0, Histogram: []float64{0, 0, 0, 0}},
			{X: 1, Y: 0, Histogram: []float64{10, 5, 0, 0.1}},
		},
	}
	s := &recordingSurface{}

	n, err := Overlay(s, image.NewNRGBA(image.Rect(0, 0, 8, 4)), d)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}

	if n != 2 || len(s.segments) != 2 {
		t.Fatalf("segments: got %d (recorded %d), want 2", n, len(s.segments))
	}

	// Bin 0: horizontal, full half-cell length, centered at (6,2).
	got := s.segments[0]
	if !near(got.x1, 4) || !near(got.y1, 2) || !near(got.x2, 8) || !near(got.y2, 2) {
		t.Errorf("bin 0 segment: got %+v, want (4,2)-(8,2)", got)
	}

	// Bin 1: 45 degrees, half length.
	h := math.Sqrt2 / 2
	got = s.segments[1]
	if !near(got.x1, 6-h) || !near(got.y1, 2-h) || !near(got.x2, 6+h) || !near(got.y2, 2+h) {
		t.Errorf("bin 1 segment: got %+v", got)
	}
}

func TestOverlay_Style(t *testing.T) {
	d := &hog.Descriptor{
		Width: 2, Height: 2, CellSize: 2, Bins: 1, CellsX: 1, CellsY: 1,
		Cells: []hog.Cell{{X: 0, Y: 0, Histogram: []float64{3}}},
	}
	s := &recordingSurface{}

	if _, err := Overlay(s, image.NewNRGBA(image.Rect(0, 0, 2, 2)), d); err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}

	if len(s.backgrounds) != 1 || s.backgrounds[0] != BackgroundOpacity {
		t.Errorf("background: got %v, want one draw at %v", s.backgrounds, BackgroundOpacity)
	}
	if s.strokeWidth != LineWidth {
		t.Errorf("stroke width: got %v, want %v", s.strokeWidth, LineWidth)
	}
	r, g, b, a := s.strokeColor.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("stroke color: got (%d,%d,%d,%d), want opaque red", r, g, b, a)
	}
}

func TestOverlay_NilBackground(t *testing.T) {
	d := &hog.Descriptor{CellSize: 2, Bins: 2}
	s := &recordingSurface{}

	if _, err := Overlay(s, nil, d); err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}
	if len(s.backgrounds) != 0 {
		t.Error("nil background should not be drawn")
	}
}

func TestOverlay_SkipsZeroCells(t *testing.T) {
	d := &hog.Descriptor{
		Width: 6, Height: 2, CellSize: 2, Bins: 3, CellsX: 3, CellsY: 1,
		Cells: []hog.Cell{
			{X: 0, Y: 0, Histogram: []float64{0, 0, 0}},
			{X: 1, Y: 0, Histogram: []float64{0, 4, 0}},
			{X: 2, Y: 0, Histogram: []float64{0, 0, 0}},
		},
	}
	s := &recordingSurface{}

	n, err := Overlay(s, nil, d)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("segments: got %d, want 1", n)
	}

	// The only segment must be centered on cell (1,0).
	seg := s.segments[0]
	if mx, my := (seg.x1+seg.x2)/2, (seg.y1+seg.y2)/2; !near(mx, 3) || !near(my, 1) {
		t.Errorf("segment center: got (%f,%f), want (3,1)", mx, my)
	}
}

func TestOverlay_MinSegmentLength(t *testing.T) {
	// cellSize 2 -> half length 1; bin 1 is exactly 0.1 of the max.
	d := &hog.Descriptor{
		Width: 2, Height: 2, CellSize: 2, Bins: 3, CellsX: 1, CellsY: 1,
		Cells: []hog.Cell{{X: 0, Y: 0, Histogram: []float64{10, 1, 1.5}}},
	}
	s := &recordingSurface{}

	n, err := Overlay(s, nil, d)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}
	if n != 2 {
		t.Errorf("segments: got %d, want 2 (bin at exactly 0.1 is suppressed)", n)
	}
}

func TestOverlay_PerCellNormalization(t *testing.T) {
	d := &hog.Descriptor{
		Width: 16, Height: 8, CellSize: 8, Bins: 2, CellsX: 2, CellsY: 1,
		Cells: []hog.Cell{
			{X: 0, Y: 0, Histogram: []float64{1, 0}},
			{X: 1, Y: 0, Histogram: []float64{1000, 0}},
		},
	}
	s := &recordingSurface{}

	if _, err := Overlay(s, nil, d); err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}
	if len(s.segments) != 2 {
		t.Fatalf("segments: got %d, want 2", len(s.segments))
	}

	weak := s.segments[0].x2 - s.segments[0].x1
	strong := s.segments[1].x2 - s.segments[1].x1
	if !near(weak, strong) || !near(weak, 8) {
		t.Errorf("segment lengths: weak=%f strong=%f, both should be 8", weak, strong)
	}
}

func TestOverlay_OddCellSizeCenter(t *testing.T) {
	d := &hog.Descriptor{
		Width: 5, Height: 5, CellSize: 5, Bins: 2, CellsX: 1, CellsY: 1,
		Cells: []hog.Cell{{X: 0, Y: 0, Histogram: []float64{0, 2}}},
	}
	s := &recordingSurface{}

	if _, err := Overlay(s, nil, d); err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}

	// Bin 1 of 2 is vertical; center is (2.5, 2.5).
	seg := s.segments[0]
	if !near(seg.x1, 2.5) || !near(seg.x2, 2.5) || !near(seg.y1, 0) || !near(seg.y2, 5) {
		t.Errorf("segment: got %+v, want (2.5,0)-(2.5,5)", seg)
	}
}

func TestOverlay_StrokeError(t *testing.T) {
	d := &hog.Descriptor{
		Width: 2, Height: 2, CellSize: 2, Bins: 2, CellsX: 1, CellsY: 1,
		Cells: []hog.Cell{{X: 0, Y: 0, Histogram: []float64{1, 1}}},
	}
	s := &recordingSurface{failAfter: 1}

	n, err := Overlay(s, nil, d)
	if err == nil {
		t.Fatal("expected stroke error")
	}
	if n != 1 {
		t.Errorf("segments drawn before failure: got %d, want 1", n)
	}
}

func TestOverlay_FromCompute(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := uint8(0)
			if x >= 2 {
				v = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}

	result, err := hog.Compute(img, 2, 4)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	s := &recordingSurface{}
	n, err := Overlay(s, img, result.Descriptor)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}

	// Every cell holds only bin 0, so each draws one horizontal segment.
	if n != 4 {
		t.Fatalf("segments: got %d, want 4", n)
	}
	for i, seg := range s.segments {
		if !near(seg.y1, seg.y2) || !near(seg.x2-seg.x1, 2) {
			t.Errorf("segment %d: got %+v, want horizontal of length 2", i, seg)
		}
	}
}

func TestCellGrid(t *testing.T) {
	d := &hog.Descriptor{Width: 10, Height: 8, CellSize: 4, Bins: 2, CellsX: 2, CellsY: 2}
	s := &recordingSurface{}

	n, err := CellGrid(s, d)
	if err != nil {
		t.Fatalf("CellGrid failed: %v", err)
	}

	// Columns at x=4 and x=8, one row at y=4.
	want := []segment{
		{4, 0, 4, 8},
		{8, 0, 8, 8},
		{0, 4, 10, 4},
	}
	if n != len(want) || len(s.segments) != len(want) {
		t.Fatalf("lines: got %d (recorded %d), want %d", n, len(s.segments), len(want))
	}
	for i, w := range want {
		if s.segments[i] != w {
			t.Errorf("line %d: got %+v, want %+v", i, s.segments[i], w)
		}
	}

	if s.strokeWidth != GridLineWidth {
		t.Errorf("stroke width: got %v, want %v", s.strokeWidth, GridLineWidth)
	}
	if _, _, _, a := s.strokeColor.RGBA(); a == 0 || a == 0xffff {
		t.Errorf("grid color should be semi-transparent, alpha %d", a>>8)
	}
}

func TestCellGrid_StrokeError(t *testing.T) {
	d := &hog.Descriptor{Width: 12, Height: 12, CellSize: 4}
	s := &recordingSurface{failAfter: 2}

	n, err := CellGrid(s, d)
	if err == nil {
		t.Fatal("expected stroke error")
	}
	if n != 2 {
		t.Errorf("lines drawn before failure: got %d, want 2", n)
	}
}
