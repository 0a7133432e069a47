package grid

import (
	"math"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/hierarchy"
	"github.com/matzehuels/circlegrid/pkg/pack"
)

// Config is the complete, immutable configuration of a grid layout.
type Config struct {
	// Width and Height are the whole drawing area. Both are required.
	Width, Height float64

	// Size maps leaves to their relative area. Nil means
	// [hierarchy.DefaultSize].
	Size hierarchy.SizeFunc

	// Padding is passed through to every cluster's packing.
	Padding float64
}

// Validate reports whether c is complete enough to compute a layout.
func (c Config) Validate() error {
	if err := errors.ValidateArea("grid", c.Width, c.Height); err != nil {
		return err
	}
	return errors.ValidateNonNegative("grid padding", c.Padding)
}

func (c Config) size() hierarchy.SizeFunc {
	if c.Size == nil {
		return hierarchy.DefaultSize
	}
	return c.Size
}

// Point is a position in the drawing area.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Cell is one grid cell assigned to a cluster.
type Cell struct {
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	X      float64 `json:"x"` // top-left corner
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Center Point   `json:"center"`
}

// Dimensions returns the grid shape for n clusters:
// rows = floor(sqrt(n)), cols = ceil(n/rows).
func Dimensions(n int) (rows, cols int, err error) {
	if n < 1 {
		return 0, 0, errors.InvalidInput("cluster list is empty")
	}
	rows = int(math.Floor(math.Sqrt(float64(n))))
	cols = (n + rows - 1) / rows
	return rows, cols, nil
}

// axisCenters returns the midpoints of k equal divisions of extent.
func axisCenters(extent float64, k int) []float64 {
	out := make([]float64, k)
	for i := range out {
		out[i] = extent * float64(2*i+1) / float64(2*k)
	}
	return out
}

// Centers returns the cell centers for n clusters in row-major order.
// Exactly n centers are returned even when the grid has spare cells.
func Centers(width, height float64, n int) ([]Point, error) {
	cells, err := Cells(Config{Width: width, Height: height}, n)
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(cells))
	for i, c := range cells {
		out[i] = c.Center
	}
	return out, nil
}

// Cells returns the n occupied cells in row-major order.
func Cells(cfg Config, n int) ([]Cell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rows, cols, err := Dimensions(n)
	if err != nil {
		return nil, err
	}

	xs := axisCenters(cfg.Width, cols)
	ys := axisCenters(cfg.Height, rows)
	w, h := cfg.Width/float64(cols), cfg.Height/float64(rows)

	cells := make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		r, c := i/cols, i%cols
		cells = append(cells, Cell{
			Row: r, Col: c,
			X: float64(c) * w, Y: float64(r) * h,
			Width: w, Height: h,
			Center: Point{X: xs[c], Y: ys[r]},
		})
	}
	return cells, nil
}

// ComputeRaw packs every cluster into its cell and returns all circles in
// cluster order, synthetic roots included.
func ComputeRaw(cfg Config, in hierarchy.Input) ([]pack.Circle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, errors.InvalidInput("cluster list is empty")
	}
	clusters := in.Clusters()
	cells, err := Cells(cfg, len(clusters))
	if err != nil {
		return nil, err
	}

	var out []pack.Circle
	for i, nodes := range clusters {
		cell := cells[i]
		circles, err := pack.Compute(pack.Config{
			Width:   cell.Width,
			Height:  cell.Height,
			CenterX: cell.Center.X,
			CenterY: cell.Center.Y,
			Padding: cfg.Padding,
			Size:    cfg.size(),
		}, nodes)
		if err != nil {
			return nil, errors.Annotate(err, "cluster %d", i)
		}
		for j := range circles {
			circles[j].Cluster = i
		}
		out = append(out, circles...)
	}
	return out, nil
}

// Compute is ComputeRaw without the synthetic cluster roots.
func Compute(cfg Config, in hierarchy.Input) ([]pack.Circle, error) {
	out, err := ComputeRaw(cfg, in)
	if err != nil {
		return nil, err
	}
	return pack.WithParents(out), nil
}
