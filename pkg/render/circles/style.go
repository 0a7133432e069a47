package circles

// DefaultPalette colors circles by depth: cluster root first, then each level.
var DefaultPalette = []string{"#f7f7f7", "#c6dbef", "#6baed6", "#2171b5", "#08306b"}

// MonoPalette draws every circle black, as the original canvas demo did.
var MonoPalette = []string{"#000000"}

const (
	strokeColor = "#ffffff"
	gridColor   = "#d0d0d0"
	labelColor  = "#222222"

	// minLabelRadius is the smallest circle that gets a text label.
	minLabelRadius = 12.0
)

// options holds settings shared by every sink.
type options struct {
	palette  []string
	grid     bool
	labels   bool
	outlines bool
}

// Option configures SVG, PNG and PDF rendering.
type Option func(*options)

// WithPalette sets the depth-indexed fill colors. Depths beyond the palette
// reuse its last color.
func WithPalette(p []string) Option {
	return func(o *options) {
		if len(p) > 0 {
			o.palette = p
		}
	}
}

// WithGrid draws the outline of every occupied grid cell.
func WithGrid() Option { return func(o *options) { o.grid = true } }

// WithLabels writes the key of every leaf large enough to hold it.
func WithLabels() Option { return func(o *options) { o.labels = true } }

// WithOutlines also draws the synthetic root circle of each cluster.
func WithOutlines() Option { return func(o *options) { o.outlines = true } }

func newOptions(opts ...Option) options {
	o := options{palette: DefaultPalette}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) fill(depth int) string {
	if depth >= len(o.palette) {
		return o.palette[len(o.palette)-1]
	}
	return o.palette[depth]
}
