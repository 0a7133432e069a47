package pack

import (
	"math"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/hierarchy"
)

// Config is the complete, immutable configuration of one packing.
type Config struct {
	// Width and Height are the packing box. Both are required.
	Width, Height float64

	// CenterX and CenterY are where the box center is placed. Defaults to
	// the origin.
	CenterX, CenterY float64

	// Padding approximates the gap, in output units, kept between sibling
	// circles and between children and their parent. Zero packs circles
	// tangent.
	Padding float64

	// Size maps leaves to their relative area. Required.
	Size hierarchy.SizeFunc
}

// Validate reports whether c is complete enough to compute a layout.
func (c Config) Validate() error {
	if err := errors.ValidateArea("pack", c.Width, c.Height); err != nil {
		return err
	}
	if c.Size == nil {
		return errors.Configuration("missing size function in pack")
	}
	return errors.ValidateNonNegative("pack padding", c.Padding)
}

// node is the working tree of a packing run.
type node struct {
	src      *hierarchy.Node
	key, id  string
	parent   *node
	children []*node
	depth    int
	value    float64
	disc     Disc
}

// Compute packs nodes under a synthetic root and returns the root followed
// by every descendant in breadth-first order.
func Compute(cfg Config, nodes []*hierarchy.Node) ([]Circle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := hierarchy.Validate(nodes); err != nil {
		return nil, err
	}

	root := &node{key: hierarchy.RootKey, id: hierarchy.RootKey}
	for _, n := range nodes {
		child, err := build(n, root, cfg.Size)
		if err != nil {
			return nil, err
		}
		root.children = append(root.children, child)
		root.value += child.value
	}

	side := math.Min(cfg.Width, cfg.Height)

	packTree(root, 0)
	if cfg.Padding > 0 && root.disc.R > 0 {
		// Padding is given in output units; express it in the unscaled
		// frame of the first pass and repack.
		packTree(root, cfg.Padding*root.disc.R/side)
	}

	k := 0.0
	if root.disc.R > 0 {
		k = side / (2 * root.disc.R)
	}
	root.disc.X, root.disc.Y = cfg.Width/2, cfg.Height/2
	scale(root, k)

	dx, dy := cfg.CenterX-cfg.Width/2, cfg.CenterY-cfg.Height/2
	return flatten(root, dx, dy), nil
}

func build(src *hierarchy.Node, parent *node, size hierarchy.SizeFunc) (*node, error) {
	n := &node{
		src:    src,
		key:    src.Key,
		id:     parent.id + "/" + src.Key,
		parent: parent,
		depth:  parent.depth + 1,
	}

	if src.IsLeaf() {
		v, err := hierarchy.Sum(src, size)
		if err != nil {
			return nil, err
		}
		n.value = v
		n.disc.R = math.Sqrt(v)
		return n, nil
	}

	for _, c := range src.Children {
		child, err := build(c, n, size)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
		n.value += child.value
	}
	return n, nil
}

// packTree lays out children relative to their parent, bottom-up. Leaf radii
// are left untouched; every group gets the radius of its enclosing circle
// plus pad.
func packTree(n *node, pad float64) {
	if len(n.children) == 0 {
		return
	}
	discs := make([]*Disc, len(n.children))
	for i, c := range n.children {
		packTree(c, pad)
		c.disc.R += pad
		discs[i] = &c.disc
	}
	e := Siblings(discs)
	for _, c := range n.children {
		c.disc.R -= pad
	}
	n.disc.R = e + pad
}

// scale turns relative child offsets into absolute positions, multiplying
// every radius and offset by k.
func scale(n *node, k float64) {
	n.disc.R *= k
	for _, c := range n.children {
		c.disc.X = n.disc.X + k*c.disc.X
		c.disc.Y = n.disc.Y + k*c.disc.Y
		scale(c, k)
	}
}

func flatten(root *node, dx, dy float64) []Circle {
	var out []Circle
	queue := []*node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		c := Circle{
			ID:    n.id,
			Key:   n.key,
			Depth: n.depth,
			X:     n.disc.X + dx,
			Y:     n.disc.Y + dy,
			R:     n.disc.R,
			Value: n.value,
			Leaf:  len(n.children) == 0,
			Node:  n.src,
		}
		if n.parent != nil {
			c.ParentID, c.ParentKey = n.parent.id, n.parent.key
		}
		out = append(out, c)
		queue = append(queue, n.children...)
	}
	return out
}
