package pack

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/hierarchy"
)

const eps = 1e-6

// sampleForest builds a deterministic, uneven three-level forest.
func sampleForest() []*hierarchy.Node {
	var nodes []*hierarchy.Node
	for i := 0; i < 5; i++ {
		g := hierarchy.Group(fmt.Sprintf("g%d", i))
		for j := 0; j < i+2; j++ {
			g.Children = append(g.Children, hierarchy.Leaf(fmt.Sprintf("l%d", j), float64((i*7+j*3)%11+1)))
		}
		if i%2 == 0 {
			g.Children = append(g.Children, hierarchy.Group("sub",
				hierarchy.Leaf("x", float64(i+1)),
				hierarchy.Leaf("y", 2),
				hierarchy.Leaf("z", 0.5),
			))
		}
		nodes = append(nodes, g)
	}
	return append(nodes, hierarchy.Leaf("solo", 20))
}

func assertPacked(t *testing.T, circles []Circle) {
	t.Helper()
	byID := make(map[string]Circle, len(circles))
	for _, c := range circles {
		byID[c.ID] = c
	}

	for _, c := range circles {
		require.False(t, math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.R), "NaN in %s", c.ID)
		assert.GreaterOrEqual(t, c.R, 0.0, c.ID)
		if !c.HasParent() {
			continue
		}
		p, ok := byID[c.ParentID]
		require.True(t, ok, "parent of %s missing", c.ID)
		assert.Equal(t, p.Depth+1, c.Depth, c.ID)
		assert.True(t, p.Disc().Contains(c.Disc(), eps), "%s escapes %s", c.ID, p.ID)
	}

	for i, a := range circles {
		for _, b := range circles[i+1:] {
			if a.ParentID != b.ParentID || !a.HasParent() {
				continue
			}
			assert.False(t, a.Disc().Overlaps(b.Disc(), 1e-4), "%s overlaps %s", a.ID, b.ID)
		}
	}
}

// randomForest builds a nested forest whose leaf values span several orders
// of magnitude, with some zeros.
func randomForest(rng *rand.Rand, depth int) []*hierarchy.Node {
	n := 1 + rng.IntN(8)
	nodes := make([]*hierarchy.Node, n)
	for i := range nodes {
		key := fmt.Sprintf("n%d", i)
		if depth > 0 && rng.IntN(3) == 0 {
			nodes[i] = hierarchy.Group(key, randomForest(rng, depth-1)...)
			continue
		}
		v := 0.0
		if rng.IntN(10) > 0 {
			v = math.Pow(10, rng.Float64()*8-5)
		}
		nodes[i] = hierarchy.Leaf(key, v)
	}
	return nodes
}

func TestComputeRandomForests(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	cfg := Config{Width: 100, Height: 100, Size: hierarchy.Identity}
	for trial := 0; trial < 300; trial++ {
		// One large leaf keeps the final scale factor near 1.
		nodes := append(randomForest(rng, 2), hierarchy.Leaf("big", 1000))
		out, err := Compute(cfg, nodes)
		require.NoError(t, err)
		assertPacked(t, out)
		if t.Failed() {
			t.Fatalf("trial %d failed", trial)
		}
	}
}

func TestComputeTwoLeaves(t *testing.T) {
	nodes := []*hierarchy.Node{hierarchy.Leaf("A", 10), hierarchy.Leaf("B", 30)}
	cfg := Config{Width: 200, Height: 200, CenterX: 100, CenterY: 100, Size: hierarchy.Identity}

	out, err := Compute(cfg, nodes)
	require.NoError(t, err)
	require.Len(t, out, 3)

	root, a, b := out[0], out[1], out[2]
	assert.False(t, root.HasParent())
	assert.Equal(t, "root", root.Key)
	assert.InDelta(t, 100.0, root.R, eps)
	assert.Equal(t, "A", a.Key)
	assert.Equal(t, "B", b.Key)
	assert.InDelta(t, math.Sqrt(3)*a.R, b.R, eps)

	for _, c := range []Circle{a, b} {
		assert.GreaterOrEqual(t, c.X-c.R, -eps)
		assert.GreaterOrEqual(t, c.Y-c.R, -eps)
		assert.LessOrEqual(t, c.X+c.R, 200+eps)
		assert.LessOrEqual(t, c.Y+c.R, 200+eps)
	}
	assert.False(t, a.Disc().Overlaps(b.Disc(), eps))
	assert.InDelta(t, a.R+b.R, math.Hypot(a.X-b.X, a.Y-b.Y), eps)
}

func TestComputeNesting(t *testing.T) {
	nodes := sampleForest()
	out, err := Compute(Config{Width: 640, Height: 480, CenterX: 320, CenterY: 240, Size: hierarchy.Identity}, nodes)
	require.NoError(t, err)

	assert.Len(t, out, hierarchy.Count(nodes)+1)
	assert.Len(t, WithParents(out), hierarchy.Count(nodes))
	assert.InDelta(t, 240.0, out[0].R, eps)
	assertPacked(t, out)

	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1].Depth, out[i].Depth, "breadth-first order")
	}
}

func TestComputeAreaProportional(t *testing.T) {
	nodes := []*hierarchy.Node{
		hierarchy.Leaf("a", 1), hierarchy.Leaf("b", 4), hierarchy.Leaf("c", 9), hierarchy.Leaf("d", 16),
	}
	out, err := Compute(Config{Width: 100, Height: 100, Size: hierarchy.Identity}, nodes)
	require.NoError(t, err)

	leaves := WithParents(out)
	for i, c := range leaves {
		assert.InDelta(t, float64(i+1)*leaves[0].R, c.R, eps, c.Key)
	}
	assertPacked(t, out)
}

func TestComputeDefaultCenter(t *testing.T) {
	out, err := Compute(Config{Width: 100, Height: 60, Size: hierarchy.DefaultSize}, []*hierarchy.Node{hierarchy.Leaf("a", 1)})
	require.NoError(t, err)

	// A single child fills the root, which sits at the origin.
	for _, c := range out {
		assert.InDelta(t, 0.0, c.X, eps)
		assert.InDelta(t, 0.0, c.Y, eps)
		assert.InDelta(t, 30.0, c.R, eps)
	}
}

func TestComputeTranslation(t *testing.T) {
	nodes := sampleForest()
	base := Config{Width: 300, Height: 200, CenterX: 150, CenterY: 100, Size: hierarchy.Identity}
	moved := base
	moved.CenterX, moved.CenterY = -40, 975

	a, err := Compute(base, nodes)
	require.NoError(t, err)
	b, err := Compute(moved, nodes)
	require.NoError(t, err)
	require.Len(t, b, len(a))

	dx, dy := moved.CenterX-base.Width/2, moved.CenterY-base.Height/2
	for i := range a {
		assert.InDelta(t, a[i].X+dx, b[i].X, 1e-9, a[i].ID)
		assert.InDelta(t, a[i].Y+dy, b[i].Y, 1e-9, a[i].ID)
		assert.InDelta(t, a[i].R, b[i].R, 1e-9, a[i].ID)
	}
}

func TestComputeIdempotent(t *testing.T) {
	nodes := sampleForest()
	cfg := Config{Width: 500, Height: 500, CenterX: 10, CenterY: 20, Padding: 2, Size: hierarchy.Identity}

	first, err := Compute(cfg, nodes)
	require.NoError(t, err)
	second, err := Compute(cfg, nodes)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeZeroTotal(t *testing.T) {
	nodes := []*hierarchy.Node{
		hierarchy.Group("g", hierarchy.Leaf("a", 0), hierarchy.Leaf("b", 0), hierarchy.Leaf("c", 0)),
		hierarchy.Leaf("d", 0),
	}
	out, err := Compute(Config{Width: 100, Height: 100, CenterX: 7, CenterY: 9, Size: hierarchy.Identity}, nodes)
	require.NoError(t, err)
	require.Len(t, out, 6)

	for _, c := range out {
		assert.Equal(t, 0.0, c.R, c.ID)
		assert.InDelta(t, 7.0, c.X, eps, c.ID)
		assert.InDelta(t, 9.0, c.Y, eps, c.ID)
	}
}

func TestComputeEmptyCluster(t *testing.T) {
	out, err := Compute(Config{Width: 100, Height: 100, Size: hierarchy.DefaultSize}, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.False(t, out[0].HasParent())
	assert.Equal(t, 0.0, out[0].R)
}

func TestComputePadding(t *testing.T) {
	nodes := sampleForest()
	tight, err := Compute(Config{Width: 400, Height: 400, Size: hierarchy.Identity}, nodes)
	require.NoError(t, err)
	padded, err := Compute(Config{Width: 400, Height: 400, Padding: 6, Size: hierarchy.Identity}, nodes)
	require.NoError(t, err)

	assertPacked(t, padded)
	for i := range tight {
		if tight[i].Leaf && tight[i].R > 0 {
			assert.Less(t, padded[i].R, tight[i].R, tight[i].ID)
		}
	}
}

func TestComputeErrors(t *testing.T) {
	leaves := []*hierarchy.Node{hierarchy.Leaf("a", 1)}

	tests := []struct {
		name  string
		cfg   Config
		nodes []*hierarchy.Node
		code  errors.Code
	}{
		{"missing size", Config{Size: hierarchy.DefaultSize}, leaves, errors.ErrCodeConfiguration},
		{"missing size function", Config{Width: 10, Height: 10}, leaves, errors.ErrCodeConfiguration},
		{"zero height", Config{Width: 10, Size: hierarchy.DefaultSize}, leaves, errors.ErrCodeInvalidInput},
		{"negative padding", Config{Width: 10, Height: 10, Padding: -1, Size: hierarchy.DefaultSize}, leaves, errors.ErrCodeInvalidInput},
		{"negative value", Config{Width: 10, Height: 10, Size: hierarchy.Identity}, []*hierarchy.Node{hierarchy.Leaf("a", -3)}, errors.ErrCodeInvalidInput},
		{"duplicate keys", Config{Width: 10, Height: 10, Size: hierarchy.DefaultSize}, []*hierarchy.Node{hierarchy.Leaf("a", 1), hierarchy.Leaf("a", 1)}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.cfg, tt.nodes)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v, want %s", err, tt.code)
		})
	}
}
