// Package point implements Point[CX, CY], a two-coordinate record generic
// over whether each axis is a plain int64 scalar or an interval.Interval.
//
// A point whose coordinates are themselves intervals is a rectangle, so
// this one generic record covers a plain 2D point, a VSegment (fixed x,
// ranging y: Point[int64, interval.Interval]), an HSegment (ranging x,
// fixed y: Point[interval.Interval, int64]), and a Rect
// (Point[interval.Interval, interval.Interval]) — four shapes as one type,
// monomorphised by the compiler rather than duck-typed at runtime. Every
// pairwise operation (Overlaps, Contains, IntersectWith, HullWith,
// MinDistWith) dispatches per axis via the Coord1D constraint, resolved at
// each call site by a closed type switch on any(x).
//
// 3D points are NOT nested Point[Point[...], ...] values: Point3 is an
// explicit, separate, scalar-only type.
//
// Errors: none in this package — empty/invalid results are representable
// in-band via Interval's invalid sentinel and surface through
// Point.IsInvalid.
package point
