package point

import "github.com/katalvlaran/physdes/vector2"

// Point is a two-coordinate record. CX and CY are each independently a
// scalar int64 or an interval.Interval; see the package doc for the
// resulting named specialisations (plain point, H/VSegment, Rect).
type Point[CX Coord1D, CY Coord1D] struct {
	X CX
	Y CY
}

// New constructs a Point from explicit coordinates.
func New[CX Coord1D, CY Coord1D](x CX, y CY) Point[CX, CY] {
	return Point[CX, CY]{X: x, Y: y}
}

// Point2 is the plain scalar 2D point: Point[int64, int64].
type Point2 = Point[int64, int64]

// NewPoint2 constructs a plain scalar point.
func NewPoint2(x, y int64) Point2 {
	return Point2{X: x, Y: y}
}

// Overlaps reports whether p and o share at least one point, axis-wise.
func (p Point[CX, CY]) Overlaps(o Point[CX, CY]) bool {
	return overlapsAxis(p.X, o.X) && overlapsAxis(p.Y, o.Y)
}

// Contains reports whether o lies entirely within p, axis-wise.
func (p Point[CX, CY]) Contains(o Point[CX, CY]) bool {
	return containsAxis(p.X, o.X) && containsAxis(p.Y, o.Y)
}

// IntersectWith returns the axis-wise intersection of p and o. The result
// may be invalid (see IsInvalid) if either axis fails to overlap.
func (p Point[CX, CY]) IntersectWith(o Point[CX, CY]) Point[CX, CY] {
	return Point[CX, CY]{X: intersectAxis(p.X, o.X), Y: intersectAxis(p.Y, o.Y)}
}

// HullWith returns the smallest Point containing both p and o, axis-wise.
func (p Point[CX, CY]) HullWith(o Point[CX, CY]) Point[CX, CY] {
	return Point[CX, CY]{X: hullAxis(p.X, o.X), Y: hullAxis(p.Y, o.Y)}
}

// MinDistWith returns the L1 distance between p and o: the sum of the
// per-axis distances.
func (p Point[CX, CY]) MinDistWith(o Point[CX, CY]) int64 {
	return minDistAxis(p.X, o.X) + minDistAxis(p.Y, o.Y)
}

// IsInvalid reports whether either axis is the invalid-interval sentinel.
func (p Point[CX, CY]) IsInvalid() bool {
	return invalidAxis(p.X) || invalidAxis(p.Y)
}

// Flip swaps the X and Y coordinates (and, by construction, their types).
func (p Point[CX, CY]) Flip() Point[CY, CX] {
	return Point[CY, CX]{X: p.Y, Y: p.X}
}

// AddVector translates p by v, axis-wise.
func (p Point[CX, CY]) AddVector(v vector2.Vector2) Point[CX, CY] {
	return Point[CX, CY]{X: shiftAxis(p.X, v.X), Y: shiftAxis(p.Y, v.Y)}
}

// SubVector translates p by -v, axis-wise.
func (p Point[CX, CY]) SubVector(v vector2.Vector2) Point[CX, CY] {
	return p.AddVector(vector2.New(-v.X, -v.Y))
}

// Displace returns a Vector2 approximating the axis-wise difference from o
// to p: for scalar axes this is exact subtraction; for interval axes it is
// the lower-bound difference (see interval.Interval.Displace for the full
// pairwise-bound form used directly on intervals).
func (p Point[CX, CY]) Displace(o Point[CX, CY]) vector2.Vector2 {
	return vector2.New(displaceAxis(p.X, o.X), displaceAxis(p.Y, o.Y))
}

// NearestTo returns the point inside p closest to q under L1: per axis,
// q's coordinate clamped to p's bounds when that axis is an interval, or
// p's own scalar value when that axis is a scalar.
func (p Point[CX, CY]) NearestTo(q Point2) Point2 {
	return Point2{X: nearestAxis(p.X, q.X), Y: nearestAxis(p.Y, q.Y)}
}

// Rotate applies the 45°-rotation map (x, y) -> (x-y, x+y).
func Rotate(p Point2) Point2 {
	return Point2{X: p.X - p.Y, Y: p.X + p.Y}
}

// InvRotate applies the inverse rotation map (a, b) -> ((a+b)/2, (b-a)/2).
// For (a, b) produced by Rotate on integer inputs, a+b and b-a are always
// even, so the integer division is exact.
func InvRotate(p Point2) Point2 {
	return Point2{X: (p.X + p.Y) / 2, Y: (p.Y - p.X) / 2}
}
