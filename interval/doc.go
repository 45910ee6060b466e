// Package interval implements closed one-dimensional integer intervals,
// the leaf arithmetic that every higher-level physdes-go type (Point, Rect,
// ManhattanArc) composes.
//
// An Interval is a pair (Lb, Ub) with Lb <= Ub for any well-formed value.
// Construction never rejects Lb > Ub; instead the library treats Lb > Ub as
// the sentinel for "empty" (e.g. the result of intersecting disjoint
// intervals), and IsInvalid reports it. Callers that need overlap as a
// precondition must check it themselves — see Overlaps.
//
// Errors:
//
//	(none) — Interval has no error-returning operations; an empty result is
//	representable in-band as an invalid Interval instead.
package interval
