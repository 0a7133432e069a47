package pack

import (
	"math"

	"github.com/matzehuels/circlegrid/pkg/hierarchy"
)

// Disc is a bare circle used by the packing geometry.
type Disc struct {
	X, Y, R float64
}

// Contains reports whether d fully contains o, allowing eps of slack.
func (d Disc) Contains(o Disc, eps float64) bool {
	return math.Hypot(o.X-d.X, o.Y-d.Y)+o.R <= d.R+eps
}

// Overlaps reports whether d and o overlap by more than eps.
func (d Disc) Overlaps(o Disc, eps float64) bool {
	return math.Hypot(o.X-d.X, o.Y-d.Y) < d.R+o.R-eps
}

// Circle is one positioned node of a packed cluster.
type Circle struct {
	// ID is the slash-joined key path from the cluster root, unique within
	// a cluster (e.g. "root/north/a").
	ID string `json:"id"`

	// Key is the node's own key; "root" for the synthetic root.
	Key string `json:"key"`

	// ParentID and ParentKey identify the parent circle. Empty for the root.
	ParentID  string `json:"parent_id,omitempty"`
	ParentKey string `json:"parent_key,omitempty"`

	// Depth is 0 for the synthetic root, 1 for top-level nodes, and so on.
	Depth int `json:"depth"`

	// Cluster is the index of the cluster this circle belongs to.
	Cluster int `json:"cluster"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`

	// Value is the aggregate size of the node.
	Value float64 `json:"value"`

	// Leaf is true for nodes without children.
	Leaf bool `json:"leaf,omitempty"`

	// Node is the source node, nil for the synthetic root.
	Node *hierarchy.Node `json:"-"`
}

// HasParent reports whether c is a data circle rather than the synthetic root.
func (c Circle) HasParent() bool { return c.Depth > 0 }

// Disc returns the geometric part of c.
func (c Circle) Disc() Disc { return Disc{X: c.X, Y: c.Y, R: c.R} }

// WithParents filters out synthetic roots, keeping order.
func WithParents(circles []Circle) []Circle {
	out := make([]Circle, 0, len(circles))
	for _, c := range circles {
		if c.HasParent() {
			out = append(out, c)
		}
	}
	return out
}
