package hierarchy

import (
	"github.com/matzehuels/circlegrid/pkg/errors"
)

// RootKey is the key of the synthetic root that groups one cluster.
const RootKey = "root"

// Node is one element of a hierarchy: an internal group or a leaf value.
type Node struct {
	// Key identifies the node among its siblings.
	Key string `json:"key"`

	// Value is the leaf's numeric value. Ignored on internal nodes.
	Value float64 `json:"value,omitempty"`

	// Children are the ordered child nodes. Empty for leaves.
	Children []*Node `json:"children,omitempty"`

	// Record optionally holds the source fields the node was built from.
	Record map[string]string `json:"record,omitempty"`
}

// Leaf returns a leaf node with the given key and value.
func Leaf(key string, value float64) *Node {
	return &Node{Key: key, Value: value}
}

// Group returns an internal node with the given key and children.
func Group(key string, children ...*Node) *Node {
	return &Node{Key: key, Children: children}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Count returns the number of nodes in the forest, roots included.
func Count(nodes []*Node) int {
	total := 0
	for _, n := range nodes {
		if n == nil {
			continue
		}
		total += 1 + Count(n.Children)
	}
	return total
}

// Validate checks that nodes form a well-shaped forest: no nil nodes, no
// node reachable along two paths (which covers cycles and shared children),
// and unique keys among siblings.
func Validate(nodes []*Node) error {
	seen := make(map[*Node]struct{})
	return validate(nodes, RootKey, seen)
}

func validate(nodes []*Node, parent string, seen map[*Node]struct{}) error {
	keys := make(map[string]struct{}, len(nodes))
	for i, n := range nodes {
		if n == nil {
			return errors.InvalidInput("nil child at index %d of %q", i, parent)
		}
		if _, dup := seen[n]; dup {
			return errors.InvalidInput("node %q under %q has more than one parent or forms a cycle", n.Key, parent)
		}
		seen[n] = struct{}{}
		if _, dup := keys[n.Key]; dup {
			return errors.InvalidInput("duplicate key %q under %q", n.Key, parent)
		}
		keys[n.Key] = struct{}{}
		if err := validate(n.Children, n.Key, seen); err != nil {
			return err
		}
	}
	return nil
}
