package manhattan

import (
	"errors"

	"github.com/katalvlaran/physdes/point"
)

// ErrCouplingViolation is returned by Arc3D.CheckCoupling when the three
// projections no longer share consistent axes.
var ErrCouplingViolation = errors.New("manhattan: arc3d projections are no longer axis-coupled")

// Arc3D couples three 2D Arcs covering the xy-, yz-, and xz-projections of
// a 3D point set. The shared-axis invariant is:
// XY.B == YZ.A and YZ.B == XZ.B and XY.A == XZ.A.
type Arc3D struct {
	XY Arc
	YZ Arc
	XZ Arc
}

// FromPoint3 builds the Arc3D for a single 3D point.
func FromPoint3(p point.Point3) Arc3D {
	return Arc3D{
		XY: FromPoint(p.XY()),
		YZ: FromPoint(p.YZ()),
		XZ: FromPoint(p.XZ()),
	}
}

// CheckCoupling verifies the shared-axis invariant across projections: a
// debug aid that uses the third projection as a consistency check on the
// other two, exposed as an explicit call rather than a build-tag switch so
// tests can invoke it directly.
func (a Arc3D) CheckCoupling() error {
	if !a.XY.B.Equal(a.YZ.A) || !a.YZ.B.Equal(a.XZ.B) || !a.XY.A.Equal(a.XZ.A) {
		return ErrCouplingViolation
	}
	return nil
}

// IsInvalid reports whether any projection is invalid.
func (a Arc3D) IsInvalid() bool {
	return a.XY.IsInvalid() || a.YZ.IsInvalid() || a.XZ.IsInvalid()
}

// EnlargeWith grows all three projections by alpha, preserving coupling.
func (a Arc3D) EnlargeWith(alpha int64) Arc3D {
	return Arc3D{
		XY: a.XY.EnlargeWith(alpha),
		YZ: a.YZ.EnlargeWith(alpha),
		XZ: a.XZ.EnlargeWith(alpha),
	}
}

// IntersectWith returns the component-wise intersection of all three
// projections.
func (a Arc3D) IntersectWith(o Arc3D) Arc3D {
	return Arc3D{
		XY: a.XY.IntersectWith(o.XY),
		YZ: a.YZ.IntersectWith(o.YZ),
		XZ: a.XZ.IntersectWith(o.XZ),
	}
}

// MinDistWith returns (d_xy + d_yz + d_xz) / 2 — the L1 distance in 3D,
// since each coordinate difference is counted in exactly two projections.
func (a Arc3D) MinDistWith(o Arc3D) int64 {
	dxy := a.XY.MinDistWith(o.XY)
	dyz := a.YZ.MinDistWith(o.YZ)
	dxz := a.XZ.MinDistWith(o.XZ)
	return (dxy + dyz + dxz) / 2
}

// MergeWith merges all three projections against o in the alpha : (d-alpha)
// ratio, where d is the 3D min distance, and reconstructs the shared axes
// from only two of the three merged projections to guarantee coupling is
// preserved by construction.
func (a Arc3D) MergeWith(o Arc3D, alpha int64) Arc3D {
	xy := a.XY.MergeWith(o.XY, alpha)
	xz := a.XZ.MergeWith(o.XZ, alpha)
	// Reconstruct YZ from XY.B and XZ.B so the shared axis is exact by
	// construction rather than separately merged (which could drift under
	// rounding if alpha/(d-alpha) were not integral).
	yz := Arc{A: xy.B, B: xz.B}
	return Arc3D{XY: xy, YZ: yz, XZ: Arc{A: xy.A, B: xz.B}}
}

// NearestPointTo returns the 3D point nearest to q, found by mapping q onto
// each projection, clamping, and reconciling via the xy and xz projections
// (which together determine all three original coordinates).
func (a Arc3D) NearestPointTo(q point.Point3) point.Point3 {
	xy := a.XY.NearestPointTo(q.XY())
	xz := a.XZ.NearestPointTo(q.XZ())
	return point.NewPoint3(xy.X, xy.Y, xz.Y)
}
