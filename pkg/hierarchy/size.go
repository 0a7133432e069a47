package hierarchy

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/circlegrid/pkg/errors"
)

// SizeFunc maps a leaf to the non-negative number that determines the area
// of its circle. It must be pure.
type SizeFunc func(n *Node) float64

// DefaultSize gives every leaf the same size, so all leaf circles are equal.
var DefaultSize SizeFunc = Constant(1)

// Constant returns a SizeFunc that ignores the node and returns v.
func Constant(v float64) SizeFunc {
	return func(*Node) float64 { return v }
}

// Identity returns the leaf's Value.
func Identity(n *Node) float64 { return n.Value }

// Field returns a SizeFunc that parses the named column of the leaf's Record.
// Missing or unparsable fields count as zero.
func Field(name string) SizeFunc {
	return func(n *Node) float64 {
		raw, ok := n.Record[name]
		if !ok {
			return 0
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0
		}
		return v
	}
}

// Sum computes the aggregate size of n: size(n) for a leaf, the sum of the
// children's aggregates otherwise. It fails with INVALID_INPUT if any leaf size
// is negative or not finite.
func Sum(n *Node, size SizeFunc) (float64, error) {
	if n.IsLeaf() {
		v := size(n)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, errors.InvalidInput("size of %q must be a non-negative number (got %g)", n.Key, v)
		}
		return v, nil
	}
	total := 0.0
	for _, c := range n.Children {
		v, err := Sum(c, size)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}
