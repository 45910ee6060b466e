package point

import "github.com/katalvlaran/physdes/interval"

// Coord1D is the closed set of coordinate kinds a Point axis may hold: a
// plain int64 scalar, or an interval.Interval. Every generic function below
// is monomorphised by the compiler per concrete T, and internally resolves
// "scalar vs. container" with one type switch on any(x): scalars act by
// elementary arithmetic, containers self-dispatch to their own methods.
type Coord1D interface {
	int64 | interval.Interval
}

// overlapsAxis reports whether a and b share at least one value.
func overlapsAxis[T Coord1D](a, b T) bool {
	switch av := any(a).(type) {
	case interval.Interval:
		return av.Overlaps(any(b).(interval.Interval))
	case int64:
		return av == any(b).(int64)
	default:
		panic("point: unreachable coordinate kind")
	}
}

// containsAxis reports whether b lies entirely within a.
func containsAxis[T Coord1D](a, b T) bool {
	switch av := any(a).(type) {
	case interval.Interval:
		return av.Contains(any(b).(interval.Interval))
	case int64:
		return av == any(b).(int64)
	default:
		panic("point: unreachable coordinate kind")
	}
}

// intersectAxis returns the intersection of a and b. For scalars the
// operands must already be equal (the caller owns that precondition);
// for intervals an empty result is the invalid sentinel.
func intersectAxis[T Coord1D](a, b T) T {
	switch av := any(a).(type) {
	case interval.Interval:
		return any(av.IntersectWith(any(b).(interval.Interval))).(T)
	case int64:
		return a
	default:
		panic("point: unreachable coordinate kind")
	}
}

// hullAxis returns the smallest axis value containing both a and b.
func hullAxis[T Coord1D](a, b T) T {
	switch av := any(a).(type) {
	case interval.Interval:
		return any(av.HullWith(any(b).(interval.Interval))).(T)
	case int64:
		return a
	default:
		panic("point: unreachable coordinate kind")
	}
}

// minDistAxis returns the 1D distance between a and b: 0 for overlapping
// intervals, |a-b| for scalars.
func minDistAxis[T Coord1D](a, b T) int64 {
	switch av := any(a).(type) {
	case interval.Interval:
		return av.MinDistWith(any(b).(interval.Interval))
	case int64:
		bv := any(b).(int64)
		if av < bv {
			return bv - av
		}
		return av - bv
	default:
		panic("point: unreachable coordinate kind")
	}
}

// shiftAxis translates a by scalar delta d.
func shiftAxis[T Coord1D](a T, d int64) T {
	switch av := any(a).(type) {
	case interval.Interval:
		return any(av.Add(d)).(T)
	case int64:
		return any(av + d).(T)
	default:
		panic("point: unreachable coordinate kind")
	}
}

// displaceAxis returns a signed scalar displacement from b to a.
func displaceAxis[T Coord1D](a, b T) int64 {
	switch av := any(a).(type) {
	case interval.Interval:
		lb, _ := av.Displace(any(b).(interval.Interval))
		return lb
	case int64:
		return av - any(b).(int64)
	default:
		panic("point: unreachable coordinate kind")
	}
}

// nearestAxis returns the value inside a closest to scalar query q: q
// clamped to a's bounds when a is an interval, a itself when a is a scalar.
func nearestAxis[T Coord1D](a T, q int64) int64 {
	switch av := any(a).(type) {
	case interval.Interval:
		return av.NearestTo(q)
	case int64:
		return av
	default:
		panic("point: unreachable coordinate kind")
	}
}

// invalidAxis reports whether a is the invalid-interval sentinel; scalars
// are always valid.
func invalidAxis[T Coord1D](a T) bool {
	if iv, ok := any(a).(interval.Interval); ok {
		return iv.IsInvalid()
	}
	return false
}
