package polygon

import (
	"github.com/katalvlaran/physdes/dllist"
	"github.com/katalvlaran/physdes/point"
)

// ConvexHull reduces a simple closed chain to its convex hull by walking an
// intrusive dllist.List of vertex indices and detaching every vertex whose
// turn disagrees with the chain's own orientation, until only convex turns
// remain.
func ConvexHull(verts []point.Point2) ([]point.Point2, error) {
	n := len(verts)
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	if n == 3 {
		return append([]point.Point2(nil), verts...), nil
	}

	maxIdx := 0
	for i := 1; i < n; i++ {
		if lexLess(verts[maxIdx], verts[i]) {
			maxIdx = i
		}
	}
	anticlockwise, minIdx := anticlockwiseInfo(verts)

	l := dllist.New(n)

	process := func(start, stop int, keepTurn func(cross int64) bool) {
		v := l.Next(start)
		for v != stop {
			next, prev := l.Next(v), l.Prev(v)
			vec1 := verts[v].Displace(verts[prev])
			vec2 := verts[next].Displace(verts[v])
			if keepTurn(vec1.Cross(vec2)) {
				l.Detach(v)
				v = prev
			} else {
				v = next
			}
		}
	}

	if anticlockwise {
		process(minIdx, maxIdx, func(c int64) bool { return c <= 0 })
		process(maxIdx, minIdx, func(c int64) bool { return c <= 0 })
	} else {
		process(minIdx, maxIdx, func(c int64) bool { return c >= 0 })
		process(maxIdx, minIdx, func(c int64) bool { return c >= 0 })
	}

	idxs := l.Walk(minIdx)
	out := make([]point.Point2, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, verts[i])
	}
	return out, nil
}

// anticlockwiseInfo reports the chain's orientation and the index of its
// lexicographically minimal vertex.
func anticlockwiseInfo(verts []point.Point2) (bool, int) {
	n := len(verts)
	minIdx := 0
	for i := 1; i < n; i++ {
		if lexLess(verts[i], verts[minIdx]) {
			minIdx = i
		}
	}
	prev := verts[(minIdx-1+n)%n]
	cur := verts[minIdx]
	next := verts[(minIdx+1)%n]
	vec1 := cur.Displace(prev)
	vec2 := next.Displace(cur)
	return vec1.Cross(vec2) > 0, minIdx
}
