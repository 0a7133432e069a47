package cache

// Keyer builds cache keys for pipeline stages. Keys are namespaced by stage
// and hash every option that affects the stored bytes.
type Keyer interface {
	// LayoutKey identifies a computed layout of one input file.
	LayoutKey(inputHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies one rendered output of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts lists the options that change a computed layout.
type LayoutKeyOpts struct {
	KeyFields  []string `json:"key_fields,omitempty"`
	ValueField string   `json:"value_field,omitempty"`
	Size       string   `json:"size,omitempty"`
	Clusters   int      `json:"clusters,omitempty"`
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	Margin     float64  `json:"margin,omitempty"`
	Padding    float64  `json:"padding,omitempty"`
}

// ArtifactKeyOpts lists the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	VizType  string  `json:"viz_type"`
	Format   string  `json:"format"`
	Palette  string  `json:"palette,omitempty"`
	Grid     bool    `json:"grid,omitempty"`
	Labels   bool    `json:"labels,omitempty"`
	Outlines bool    `json:"outlines,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(inputHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", inputHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
