package router

import (
	"github.com/katalvlaran/physdes/interval"
	"github.com/katalvlaran/physdes/point"
)

// KeepOut is an axis-aligned rectangular region the router must route
// around.
type KeepOut = point.Rect

// blockingKeepOut returns the first keep-out (in input order) whose area
// overlaps the bounding box of the candidate edge a-b, and true — or
// (zero, false) if none does. Any overlap is treated as blocking: a
// straight Manhattan connection between a and b is assumed to need every
// monotone L-path through that bounding box, so a keep-out anywhere in it
// can sever all of them.
func blockingKeepOut(a, b point.Point2, keepOuts []KeepOut) (KeepOut, bool) {
	box := point.NewRect(intervalSpan(a.X, b.X), intervalSpan(a.Y, b.Y))
	for _, ko := range keepOuts {
		if box.Overlaps(ko.Point) {
			return ko, true
		}
	}
	return KeepOut{}, false
}

func intervalSpan(p, q int64) interval.Interval {
	if p > q {
		p, q = q, p
	}
	return interval.New(p, q)
}

// nearestCorner picks the keep-out corner minimising dist(a,corner) +
// dist(corner,b), breaking ties toward the lower-left corner.
func nearestCorner(a, b point.Point2, ko KeepOut) point.Point2 {
	corners := [4]point.Point2{
		point.NewPoint2(ko.X.Lb, ko.Y.Lb),
		point.NewPoint2(ko.X.Lb, ko.Y.Ub),
		point.NewPoint2(ko.X.Ub, ko.Y.Lb),
		point.NewPoint2(ko.X.Ub, ko.Y.Ub),
	}

	best := corners[0]
	bestCost := a.MinDistWith(best) + best.MinDistWith(b)
	for _, c := range corners[1:] {
		cost := a.MinDistWith(c) + c.MinDistWith(b)
		if cost < bestCost || (cost == bestCost && lowerLeft(c, best)) {
			bestCost, best = cost, c
		}
	}
	return best
}

// lowerLeft reports whether c is strictly lower-left of other (smaller X,
// then smaller Y).
func lowerLeft(c, other point.Point2) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}
