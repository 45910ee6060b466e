// Package manhattan implements ManhattanArc, the merging-segment operator at
// the heart of physdes-go: a point, a 45°-diagonal segment, and a tilted
// rectangular region ("TRR") are all the same object — an axis-aligned
// interval box held in 45°-rotated coordinates.
//
// Arc always stores Interval-valued rotated axes rather than a
// scalar-or-interval union: a rotated point is simply a degenerate
// (zero-length) interval.Interval on each axis, so EnlargeWith (which can
// turn a point into a genuine interval) never needs to change the arc's Go
// type, only its bounds — a deliberate simplification that preserves every
// operation's semantics exactly.
//
// Arc3D composes three Arc values covering the xy, yz, and xz projections
// of a 3D point set, with the shared-axis coupling invariant checkable via
// CheckCoupling.
//
// Errors: none returned in-band; an intersection of disjoint arcs yields an
// Arc with an invalid axis (see Arc.IsInvalid), matching interval.Interval's
// own sentinel convention.
package manhattan
