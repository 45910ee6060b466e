package rectidecomp

import (
	"github.com/katalvlaran/physdes/dllist"
	"github.com/katalvlaran/physdes/point"
)

// DecomposeConvex partitions a rectilinear polygon's vertex chain into
// rectilinear convex pieces, each returned as its own vertex chain.
// anticlockwise must match the chain's own orientation (e.g. as reported
// by polygon.RPolygon.Anticlockwise).
//
// Each step finds a reflex vertex, casts the shorter of its two inward
// axial rays to the first edge it strikes, and cuts the ring into two
// sub-rings that each carry a copy of the new cut point; the reflex vertex
// stays only in the sub-ring where it is still a corner, and the segment
// from it to the cut point is the shared edge of the two pieces.
// Bookkeeping runs on a dllist.List over a growing points slice rather than
// copying sub-chains: each cut appends two points and two dllist nodes (one
// from InsertAfter splitting the struck edge, one from dllist.Cut), and
// the ring splits in O(1) without touching any node outside the cut. The
// worklist is an explicit stack of ring-entry node indices rather than
// recursion, so an adversarial input with many reflex vertices cannot
// blow the call stack.
func DecomposeConvex(verts []point.Point2, anticlockwise bool) ([][]point.Point2, error) {
	if len(verts) < 3 {
		return nil, ErrTooFewVertices
	}

	points := append([]point.Point2(nil), verts...)
	chain := dllist.New(len(verts))

	var pieces [][]point.Point2
	stack := []int{0}

	for len(stack) > 0 {
		start := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ring := chain.Walk(start)
		ringPts := make([]point.Point2, len(ring))
		for i, idx := range ring {
			ringPts[i] = points[idx]
		}

		rPos, found := findConcave(ringPts, anticlockwise)
		if !found {
			pieces = append(pieces, ringPts)
			continue
		}

		mPos, vertical, pNew := findStruckEdge(ringPts, rPos)
		rID, mID := ring[rPos], ring[mPos]

		// Split the struck edge at pNew, then cut between the reflex vertex
		// and that node. The reflex vertex stays with the neighbour whose
		// edge is perpendicular to the cut, so it remains a corner there.
		pID := chain.InsertAfter(mID)
		points = append(points, pNew, pNew)
		prev := ringPts[(rPos-1+len(ringPts))%len(ringPts)]
		var newIdx int
		if (vertical && prev.Y == ringPts[rPos].Y) || (!vertical && prev.X == ringPts[rPos].X) {
			newIdx = chain.Cut(pID, rID)
		} else {
			newIdx = chain.Cut(rID, pID)
		}
		stack = append(stack, rID, newIdx)
	}
	return pieces, nil
}

// findConcave scans the ring for the first reflex vertex: a turn whose
// cross-product sign disagrees with the ring's own orientation. It
// returns found=false when the chain is already convex.
func findConcave(c []point.Point2, anticlockwise bool) (int, bool) {
	n := len(c)
	for i := 0; i < n; i++ {
		prev, next := (i-1+n)%n, (i+1)%n
		turn := c[i].Displace(c[prev]).Cross(c[next].Displace(c[i]))
		if anticlockwise && turn < 0 {
			return i, true
		}
		if !anticlockwise && turn > 0 {
			return i, true
		}
	}
	return 0, false
}

// findStruckEdge casts the two inward axial rays from reflex vertex r and
// returns the nearer hit: m is the index of the struck edge's first
// endpoint (the edge runs c[m] -> c[m+1]), vertical reports whether that
// edge is vertical (so the ray itself travelled horizontally), and pNew is
// the point where the ray meets the edge. Ties resolve to whichever
// candidate is found first, scanning forward from r+2, for determinism.
func findStruckEdge(c []point.Point2, r int) (int, bool, point.Point2) {
	n := len(c)
	pcurr := c[r]
	stop := (r - 1 + n) % n

	bestM, bestVertical := r, true
	bestDist := int64(-1)

	for vi := (r + 2) % n; vi != stop; vi = (vi + 1) % n {
		prev, next := (vi-1+n)%n, (vi+1)%n

		if between(c[prev].Y, pcurr.Y, c[vi].Y) {
			d := abs64(c[vi].X - pcurr.X)
			if bestDist < 0 || d < bestDist {
				bestDist, bestM, bestVertical = d, prev, true
			}
		}
		if between(c[next].X, pcurr.X, c[vi].X) {
			d := abs64(c[vi].Y - pcurr.Y)
			if bestDist < 0 || d < bestDist {
				bestDist, bestM, bestVertical = d, vi, false
			}
		}
	}

	var pNew point.Point2
	if bestVertical {
		pNew = point.NewPoint2(c[bestM].X, pcurr.Y)
	} else {
		pNew = point.NewPoint2(pcurr.X, c[bestM].Y)
	}
	return bestM, bestVertical, pNew
}

func between(a, q, b int64) bool {
	return (a <= q && q <= b) || (b <= q && q <= a)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
