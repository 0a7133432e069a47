package hierarchy

// Input is the cluster data handed to the layout engine. It is a closed
// variant: use [SingleCluster] or [MultiCluster] to build one.
type Input interface {
	// Clusters returns the data as a list of clusters, each a forest of
	// top-level nodes.
	Clusters() [][]*Node

	isInput()
}

type single []*Node

func (s single) Clusters() [][]*Node { return [][]*Node{s} }
func (single) isInput()              {}

type multi [][]*Node

func (m multi) Clusters() [][]*Node { return m }
func (multi) isInput()              {}

// SingleCluster wraps one forest as a one-element cluster list.
func SingleCluster(nodes []*Node) Input { return single(nodes) }

// MultiCluster wraps a list of forests, one per cluster.
func MultiCluster(clusters [][]*Node) Input { return multi(clusters) }
