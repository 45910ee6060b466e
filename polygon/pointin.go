package polygon

import "github.com/katalvlaran/physdes/point"

// PointInPolygon reports whether q lies inside the closed chain verts, via
// horizontal-ray parity. An edge is counted iff q's Y lies
// in the half-open interval [min(y0,y1), max(y0,y1)) of the edge's
// endpoints; this half-open convention is what makes the boundary
// behaviour deterministic and partition-consistent (a point shared by two
// adjacent polygons' edges belongs to exactly one of them).
func PointInPolygon(verts []point.Point2, q point.Point2) bool {
	res := false
	pt0 := verts[len(verts)-1]
	for _, pt1 := range verts {
		if (pt1.Y <= q.Y && q.Y < pt0.Y) || (pt0.Y <= q.Y && q.Y < pt1.Y) {
			det := q.Displace(pt0).Cross(pt1.Displace(pt0))
			if pt1.Y > pt0.Y {
				if det < 0 {
					res = !res
				}
			} else {
				if det > 0 {
					res = !res
				}
			}
		}
		pt0 = pt1
	}
	return res
}
