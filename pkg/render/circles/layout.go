package circles

import (
	"github.com/matzehuels/circlegrid/pkg/grid"
	"github.com/matzehuels/circlegrid/pkg/hierarchy"
	"github.com/matzehuels/circlegrid/pkg/pack"
)

// Layout is a computed circle grid ready for drawing. Circle coordinates are
// relative to the drawing area; Margin is added on every side when drawing.
type Layout struct {
	Width   float64
	Height  float64
	Margin  float64
	Rows    int
	Cols    int
	Cells   []grid.Cell
	Circles []pack.Circle
}

// FrameWidth is the full output width including margins.
func (l Layout) FrameWidth() float64 { return l.Width + 2*l.Margin }

// FrameHeight is the full output height including margins.
func (l Layout) FrameHeight() float64 { return l.Height + 2*l.Margin }

// Visible returns the circles to draw: data circles, plus the cluster roots
// when withRoots is set.
func (l Layout) Visible(withRoots bool) []pack.Circle {
	if withRoots {
		return l.Circles
	}
	return pack.WithParents(l.Circles)
}

// MaxDepth returns the deepest circle depth in the layout.
func (l Layout) MaxDepth() int {
	d := 0
	for _, c := range l.Circles {
		d = max(d, c.Depth)
	}
	return d
}

// Build computes the grid layout of in and wraps it for drawing.
func Build(cfg grid.Config, in hierarchy.Input, margin float64) (Layout, error) {
	circles, err := grid.ComputeRaw(cfg, in)
	if err != nil {
		return Layout{}, err
	}
	return wrap(cfg, margin, len(in.Clusters()), circles)
}

// FromCircles wraps circles computed elsewhere. The grid shape is derived
// from the highest cluster index present.
func FromCircles(width, height, margin float64, circles []pack.Circle) (Layout, error) {
	n := 0
	for _, c := range circles {
		n = max(n, c.Cluster+1)
	}
	return wrap(grid.Config{Width: width, Height: height}, margin, n, circles)
}

// wrap derives the grid shape and cells for n clusters.
func wrap(cfg grid.Config, margin float64, n int, circles []pack.Circle) (Layout, error) {
	rows, cols, err := grid.Dimensions(n)
	if err != nil {
		return Layout{}, err
	}
	cells, err := grid.Cells(cfg, n)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Margin:  margin,
		Rows:    rows,
		Cols:    cols,
		Cells:   cells,
		Circles: circles,
	}, nil
}
