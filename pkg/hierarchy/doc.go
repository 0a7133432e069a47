// Package hierarchy defines the grouped numeric data consumed by the layout
// engine.
//
// A hierarchy is a forest of [Node] values. Leaves carry a numeric [Node.Value]
// (and optionally the source [Node.Record] they were aggregated from); internal
// nodes only group their children and derive their size from them.
//
// # Size functions
//
// A [SizeFunc] maps a leaf to a non-negative number that determines the
// relative area of its circle. [DefaultSize] gives every leaf the same size;
// [Identity] uses the leaf value; [Field] parses a column of the source record.
//
// # Cluster input
//
// The layout engine accepts either one cluster or many. Callers state which
// explicitly with [SingleCluster] or [MultiCluster]; [Input.Clusters] returns the
// normalized list form.
//
//	in := hierarchy.MultiCluster([][]*hierarchy.Node{left, right})
//	for i, nodes := range in.Clusters() { ... }
package hierarchy
