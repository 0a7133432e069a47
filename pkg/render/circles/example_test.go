package circles_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/circlegrid/pkg/grid"
	"github.com/matzehuels/circlegrid/pkg/hierarchy"
	"github.com/matzehuels/circlegrid/pkg/render/circles"
)

func ExampleRenderSVG() {
	in := hierarchy.MultiCluster([][]*hierarchy.Node{
		{hierarchy.Leaf("a", 1), hierarchy.Leaf("b", 1)},
		{hierarchy.Leaf("c", 1)},
		{hierarchy.Leaf("d", 1)},
	})

	l, err := circles.Build(grid.Config{Width: 300, Height: 200}, in, 0)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	svg := string(circles.RenderSVG(l, circles.WithGrid()))
	fmt.Println("grid:", l.Rows, "x", l.Cols)
	fmt.Println("circles:", strings.Count(svg, "<circle "))
	fmt.Println("cells:", strings.Count(svg, `class="cell"`))
	// Output:
	// grid: 1 x 3
	// circles: 4
	// cells: 3
}
