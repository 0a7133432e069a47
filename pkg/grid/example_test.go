package grid_test

import (
	"fmt"

	"github.com/matzehuels/circlegrid/pkg/grid"
	"github.com/matzehuels/circlegrid/pkg/hierarchy"
)

func ExampleDimensions() {
	for _, n := range []int{1, 4, 5, 10} {
		rows, cols, _ := grid.Dimensions(n)
		fmt.Printf("%d clusters: %dx%d\n", n, rows, cols)
	}
	// Output:
	// 1 clusters: 1x1
	// 4 clusters: 2x2
	// 5 clusters: 2x3
	// 10 clusters: 3x4
}

func ExampleCompute() {
	clusters := [][]*hierarchy.Node{
		{hierarchy.Leaf("a", 10)},
		{hierarchy.Leaf("b", 10)},
	}

	circles, err := grid.Compute(grid.Config{Width: 400, Height: 200, Size: hierarchy.Identity},
		hierarchy.MultiCluster(clusters))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, c := range circles {
		fmt.Printf("cluster %d %s at (%.0f, %.0f) r=%.0f\n", c.Cluster, c.Key, c.X, c.Y, c.R)
	}
	// Output:
	// cluster 0 a at (100, 100) r=100
	// cluster 1 b at (300, 100) r=100
}
