package polygon

import (
	"sort"

	"github.com/katalvlaran/physdes/point"
)

// dirKey extracts the (primary, secondary) sort key used by the monotone
// builders: XMonotonePolygon sorts by (x, y), YMonotonePolygon by (y, x).
type dirKey func(point.Point2) (int64, int64)

func xDir(p point.Point2) (int64, int64) { return p.X, p.Y }
func yDir(p point.Point2) (int64, int64) { return p.Y, p.X }

func less(dir dirKey, a, b point.Point2) bool {
	ka1, ka2 := dir(a)
	kb1, kb2 := dir(b)
	return ka1 < kb1 || (ka1 == kb1 && ka2 < kb2)
}

// MonotonePolygon reconstructs a simple monotone chain from an unordered
// point set: locate the extremes under dir, partition the rest by which
// side of the extreme-to-extreme chord they fall on, sort each side along
// dir (one side reversed), and concatenate.
func MonotonePolygon(pts []point.Point2, dir dirKey) ([]point.Point2, error) {
	if len(pts) < 3 {
		return nil, ErrTooFewVertices
	}
	maxPt, minPt := pts[0], pts[0]
	for _, p := range pts[1:] {
		if less(dir, maxPt, p) {
			maxPt = p
		}
		if less(dir, p, minPt) {
			minPt = p
		}
	}
	chord := maxPt.Displace(minPt)
	var side1, side2 []point.Point2
	for _, p := range pts {
		if chord.Cross(p.Displace(minPt)) <= 0 {
			side1 = append(side1, p)
		} else {
			side2 = append(side2, p)
		}
	}
	sort.Slice(side1, func(i, j int) bool { return less(dir, side1[i], side1[j]) })
	sort.Slice(side2, func(i, j int) bool { return less(dir, side2[j], side2[i]) })
	return append(side1, side2...), nil
}

// XMonotonePolygon builds a monotone chain sorted primarily by X.
func XMonotonePolygon(pts []point.Point2) ([]point.Point2, error) {
	return MonotonePolygon(pts, xDir)
}

// YMonotonePolygon builds a monotone chain sorted primarily by Y.
func YMonotonePolygon(pts []point.Point2) ([]point.Point2, error) {
	return MonotonePolygon(pts, yDir)
}

// lexLess is Point2's natural lexicographic order on (X, Y).
func lexLess(a, b point.Point2) bool {
	return a.X < b.X || (a.X == b.X && a.Y < b.Y)
}

// TestPolygon builds a deterministic, non-monotone, non-convex closed
// chain from an unordered point set: a second partition (on Y, within the
// two chord-sides already split by Y-direction) produces a reliably
// non-monotone but still simple chain.
func TestPolygon(pts []point.Point2) ([]point.Point2, error) {
	if len(pts) < 3 {
		return nil, ErrTooFewVertices
	}
	upmost, dnmost := pts[0], pts[0]
	for _, p := range pts[1:] {
		if less(yDir, upmost, p) {
			upmost = p
		}
		if less(yDir, p, dnmost) {
			dnmost = p
		}
	}
	vec := upmost.Displace(dnmost)

	var lst1, lst2 []point.Point2
	for _, p := range pts {
		if vec.Cross(p.Displace(dnmost)) < 0 {
			lst1 = append(lst1, p)
		} else {
			lst2 = append(lst2, p)
		}
	}

	rightmost := lst1[0]
	for _, p := range lst1[1:] {
		if lexLess(rightmost, p) {
			rightmost = p
		}
	}
	var lst3, lst4 []point.Point2
	for _, p := range lst1 {
		if p.Y < rightmost.Y {
			lst3 = append(lst3, p)
		} else {
			lst4 = append(lst4, p)
		}
	}

	leftmost := lst2[0]
	for _, p := range lst2[1:] {
		if lexLess(p, leftmost) {
			leftmost = p
		}
	}
	var lst5, lst6 []point.Point2
	for _, p := range lst2 {
		if p.Y > leftmost.Y {
			lst5 = append(lst5, p)
		} else {
			lst6 = append(lst6, p)
		}
	}

	var lsta, lstb, lstc, lstd []point.Point2
	if vec.X < 0 {
		lsta = sortDesc(lst6, lexLess)
		lstb = sortBy(lst5, yDir)
		lstc = sortAsc(lst4, lexLess)
		lstd = sortByDesc(lst3, yDir)
	} else {
		lsta = sortAsc(lst3, lexLess)
		lstb = sortBy(lst4, yDir)
		lstc = sortDesc(lst5, lexLess)
		lstd = sortByDesc(lst6, yDir)
	}
	out := append(append(append(lsta, lstb...), lstc...), lstd...)
	return out, nil
}

func sortAsc(pts []point.Point2, cmp func(a, b point.Point2) bool) []point.Point2 {
	out := append([]point.Point2(nil), pts...)
	sort.Slice(out, func(i, j int) bool { return cmp(out[i], out[j]) })
	return out
}

func sortDesc(pts []point.Point2, cmp func(a, b point.Point2) bool) []point.Point2 {
	out := append([]point.Point2(nil), pts...)
	sort.Slice(out, func(i, j int) bool { return cmp(out[j], out[i]) })
	return out
}

func sortBy(pts []point.Point2, dir dirKey) []point.Point2 {
	out := append([]point.Point2(nil), pts...)
	sort.Slice(out, func(i, j int) bool { return less(dir, out[i], out[j]) })
	return out
}

func sortByDesc(pts []point.Point2, dir dirKey) []point.Point2 {
	out := append([]point.Point2(nil), pts...)
	sort.Slice(out, func(i, j int) bool { return less(dir, out[j], out[i]) })
	return out
}

// IsMonotone reports whether lst is monotone with respect to dir: starting
// at the dir-minimum, the dir-primary coordinate is non-decreasing until
// the dir-maximum is reached, then non-increasing back to the start.
func IsMonotone(lst []point.Point2, dir dirKey) bool {
	n := len(lst)
	if n <= 3 {
		return true
	}
	minIdx, maxIdx := 0, 0
	for i := 1; i < n; i++ {
		if less(dir, lst[i], lst[minIdx]) {
			minIdx = i
		}
		if less(dir, lst[maxIdx], lst[i]) {
			maxIdx = i
		}
	}
	violates := func(start, stop int, cmp func(a, b int64) bool) bool {
		i := start
		for i != stop {
			next := (i + 1) % n
			a, _ := dir(lst[i])
			b, _ := dir(lst[next])
			if cmp(a, b) {
				return true
			}
			i = next
		}
		return false
	}
	if violates(minIdx, maxIdx, func(a, b int64) bool { return a > b }) {
		return false
	}
	if violates(maxIdx, minIdx, func(a, b int64) bool { return a < b }) {
		return false
	}
	return true
}
