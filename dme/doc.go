// Package dme implements the Deferred Merge Embedding clock-tree builder:
// given a list of sinks, a pluggable delay model, and an optional
// external source point, it builds a zero-skew (or
// minimum-skew-under-elongation) binary merge tree.
//
// The pipeline has four phases, run in sequence by BuildClockTree:
//  1. a balanced bipartition merge tree is built top-down, alternating the
//     partitioning axis (x at even depth, y at odd);
//  2. each node's merging segment (a manhattan.Arc) is computed bottom-up,
//     alongside the delay-balancing tapping point between its two
//     children;
//  3. each node is embedded top-down at the point of its own segment
//     nearest to its parent (the root nearest to the external source, or
//     its segment's upper corner absent one);
//  4. each node's final delay is computed top-down from its parent's delay
//     plus the model's wire delay over its embedded wire length.
//
// Errors: ErrEmptyInput (DME builder called with zero sinks).
package dme
