// Package manhattan: arc.go implements the 2D ManhattanArc merging-segment
// operator.
package manhattan

import (
	"github.com/katalvlaran/physdes/interval"
	"github.com/katalvlaran/physdes/point"
)

// Arc is a point, 45°-segment, or tilted rectangle held in rotated
// coordinates A = x-y, B = x+y. Both axes are always interval.Interval;
// a degenerate (Lb == Ub) interval represents the scalar case.
type Arc struct {
	A interval.Interval // rotated x-axis
	B interval.Interval // rotated y-axis
}

// FromPoint builds the Arc for a single original-coordinate point.
func FromPoint(p point.Point2) Arc {
	r := point.Rotate(p)
	return Arc{A: interval.Point(r.X), B: interval.Point(r.Y)}
}

// Construct builds an Arc directly from original (pre-rotation) scalar
// coordinates, equivalent to FromPoint(point.NewPoint2(x, y)).
func Construct(x, y int64) Arc {
	return Arc{A: interval.Point(x - y), B: interval.Point(x + y)}
}

// FromRect builds the Arc whose rotated axes are the hull of all four
// corners of an axis-aligned original-coordinate rectangle — i.e. the
// smallest TRR covering [x0,x1] x [y0,y1].
func FromRect(x0, x1, y0, y1 int64) Arc {
	corners := [4]point.Point2{
		point.NewPoint2(x0, y0), point.NewPoint2(x1, y0),
		point.NewPoint2(x0, y1), point.NewPoint2(x1, y1),
	}
	a := FromPoint(corners[0])
	for _, c := range corners[1:] {
		a = a.HullWith(FromPoint(c))
	}
	return a
}

// IsInvalid reports whether either rotated axis is the invalid-interval
// sentinel (an empty merging segment).
func (a Arc) IsInvalid() bool {
	return a.A.IsInvalid() || a.B.IsInvalid()
}

// EnlargeWith grows both rotated axes by alpha — the L1-ball Minkowski sum
// in original coordinates.
func (a Arc) EnlargeWith(alpha int64) Arc {
	return Arc{A: a.A.EnlargeWith(alpha), B: a.B.EnlargeWith(alpha)}
}

// IntersectWith returns the component-wise interval intersection. Defined
// iff both rotated axes overlap; otherwise the result is invalid.
func (a Arc) IntersectWith(o Arc) Arc {
	return Arc{A: a.A.IntersectWith(o.A), B: a.B.IntersectWith(o.B)}
}

// HullWith returns the smallest Arc containing both a and o.
func (a Arc) HullWith(o Arc) Arc {
	return Arc{A: a.A.HullWith(o.A), B: a.B.HullWith(o.B)}
}

// MinDistWith returns max of the per-axis rotated distances — the L-inf
// distance in rotated space, which equals the L1 distance in the original
// plane.
func (a Arc) MinDistWith(o Arc) int64 {
	da := a.A.MinDistWith(o.A)
	db := a.B.MinDistWith(o.B)
	if da > db {
		return da
	}
	return db
}

// MergeWith grows a by alpha and o by (d - alpha), where d =
// a.MinDistWith(o), then intersects: the locus of points split in an
// alpha : (d-alpha) ratio between the two inputs. alpha is expected in
// [0, d]; the operator is closed (its result is again a valid Arc when
// alpha lies in that range).
func (a Arc) MergeWith(o Arc, alpha int64) Arc {
	d := a.MinDistWith(o)
	return a.EnlargeWith(alpha).IntersectWith(o.EnlargeWith(d - alpha))
}

// GetLowerCorner returns the arc's lower-rotated-corner in original
// coordinates.
func (a Arc) GetLowerCorner() point.Point2 {
	return point.InvRotate(point.NewPoint2(a.A.Lb, a.B.Lb))
}

// GetUpperCorner returns the arc's upper-rotated-corner in original
// coordinates.
func (a Arc) GetUpperCorner() point.Point2 {
	return point.InvRotate(point.NewPoint2(a.A.Ub, a.B.Ub))
}

// GetCenter returns the midpoint of the rotated box in original
// coordinates.
func (a Arc) GetCenter() point.Point2 {
	mid := point.NewPoint2((a.A.Lb+a.A.Ub)/2, (a.B.Lb+a.B.Ub)/2)
	return point.InvRotate(mid)
}

// NearestPointTo returns the point inside the arc's region closest to q
// under L1: q is mapped into rotated coordinates, clamped to the interval
// box axis-wise, then mapped back. Ties resolve toward the lower-rotated
// corner (clamping always prefers Lb when q is exactly between, since
// interval.Interval.NearestTo clamps rather than rounds).
func (a Arc) NearestPointTo(q point.Point2) point.Point2 {
	rq := point.Rotate(q)
	clamped := point.NewPoint2(a.A.NearestTo(rq.X), a.B.NearestTo(rq.Y))
	return point.InvRotate(clamped)
}
