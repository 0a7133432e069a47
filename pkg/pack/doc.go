// Package pack computes circle-packing layouts for a single cluster.
//
// Given a forest of [hierarchy.Node] values, [Compute] places one circle per
// node so that every parent circle contains its children, siblings never
// overlap, and leaf circle areas are proportional to their size. The result is
// scaled to fit a width × height box and translated so that the box center
// lands on the configured center point.
//
// # Algorithm
//
// Sizes are summed bottom-up. Each leaf starts with radius sqrt(size). Each
// group then packs its children with the front-chain method ([Siblings]) and
// takes the smallest enclosing circle of the children ([Enclose]) as its own
// radius. A child that the front chain would place on top of an earlier,
// much smaller sibling is moved to the nearest free spot tangent to two
// placed siblings. Finally the whole tree is scaled so the synthetic root has radius
// min(width, height)/2.
//
// # Determinism
//
// [Enclose] shuffles its input with a fixed-seed generator, so identical
// inputs always produce identical layouts.
//
// # Output
//
// [Compute] returns the synthetic root followed by every descendant in
// breadth-first order. Callers that only want the data circles drop the root
// with [Circle.HasParent].
package pack
