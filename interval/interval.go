package interval

// Interval is a closed 1D interval [Lb, Ub] over int64.
//
// A value with Lb > Ub is the in-band "invalid" sentinel used whenever an
// operation (IntersectWith on disjoint operands, EnlargeWith with a large
// negative delta) has no well-formed result. Callers check IsInvalid.
type Interval struct {
	Lb int64
	Ub int64
}

// New constructs an Interval from explicit bounds. It does not validate
// Lb <= Ub; constructing with Lb > Ub yields the invalid sentinel on purpose
// (e.g. tests that assert an intersection is empty).
func New(lb, ub int64) Interval {
	return Interval{Lb: lb, Ub: ub}
}

// Point returns the degenerate interval [v, v].
func Point(v int64) Interval {
	return Interval{Lb: v, Ub: v}
}

// IsInvalid reports whether i is the empty-interval sentinel (Lb > Ub).
func (i Interval) IsInvalid() bool {
	return i.Lb > i.Ub
}

// Length returns Ub - Lb. Negative for an invalid interval.
func (i Interval) Length() int64 {
	return i.Ub - i.Lb
}

// Equal reports pairwise bound equality.
func (i Interval) Equal(o Interval) bool {
	return i.Lb == o.Lb && i.Ub == o.Ub
}

// Add returns i shifted by scalar d: [Lb+d, Ub+d].
func (i Interval) Add(d int64) Interval {
	return Interval{Lb: i.Lb + d, Ub: i.Ub + d}
}

// Sub returns i shifted by -d: [Lb-d, Ub-d].
func (i Interval) Sub(d int64) Interval {
	return Interval{Lb: i.Lb - d, Ub: i.Ub - d}
}

// Mul returns i scaled by scalar d. A negative d flips which bound is lower;
// the result is re-sorted so Lb <= Ub whenever the input was valid.
func (i Interval) Mul(d int64) Interval {
	a, b := i.Lb*d, i.Ub*d
	if a <= b {
		return Interval{Lb: a, Ub: b}
	}
	return Interval{Lb: b, Ub: a}
}

// Neg returns the reflected interval [-Ub, -Lb].
func (i Interval) Neg() Interval {
	return Interval{Lb: -i.Ub, Ub: -i.Lb}
}

// Lt reports a < x in the interval ordering: a.Ub < x.
func (i Interval) Lt(x int64) bool {
	return i.Ub < x
}

// Gt reports a > x in the interval ordering: a.Lb > x.
func (i Interval) Gt(x int64) bool {
	return i.Lb > x
}

// Le reports a <= x: not (x < a.Lb).
func (i Interval) Le(x int64) bool {
	return !(x < i.Lb)
}

// Ge reports a >= x: not (a.Ub < x), i.e. !(x > a.Ub).
func (i Interval) Ge(x int64) bool {
	return !(i.Ub < x)
}

// Overlaps reports whether i and o share at least one point.
func (i Interval) Overlaps(o Interval) bool {
	return i.Lb <= o.Ub && o.Lb <= i.Ub
}

// OverlapsScalar reports whether i contains v (an interval "overlaps" a
// scalar iff the scalar lies within it).
func (i Interval) OverlapsScalar(v int64) bool {
	return i.Lb <= v && v <= i.Ub
}

// Contains reports whether o lies entirely within i.
func (i Interval) Contains(o Interval) bool {
	return i.Lb <= o.Lb && o.Ub <= i.Ub
}

// ContainsScalar reports whether v lies within i.
func (i Interval) ContainsScalar(v int64) bool {
	return i.Lb <= v && v <= i.Ub
}

// HullWith returns the smallest interval containing both i and o:
// [min(Lb), max(Ub)]. Defined for any pair, overlapping or not.
func (i Interval) HullWith(o Interval) Interval {
	lb := i.Lb
	if o.Lb < lb {
		lb = o.Lb
	}
	ub := i.Ub
	if o.Ub > ub {
		ub = o.Ub
	}
	return Interval{Lb: lb, Ub: ub}
}

// IntersectWith returns [max(Lb), min(Ub)]. The caller must have verified
// Overlaps (or be prepared to receive the invalid sentinel): if i and o are
// disjoint the result has Lb > Ub.
func (i Interval) IntersectWith(o Interval) Interval {
	lb := i.Lb
	if o.Lb > lb {
		lb = o.Lb
	}
	ub := i.Ub
	if o.Ub < ub {
		ub = o.Ub
	}
	return Interval{Lb: lb, Ub: ub}
}

// MinDistWith returns 0 if i and o overlap, else the distance between the
// nearer pair of bounds.
func (i Interval) MinDistWith(o Interval) int64 {
	if i.Overlaps(o) {
		return 0
	}
	if i.Ub < o.Lb {
		return o.Lb - i.Ub
	}
	return i.Lb - o.Ub
}

// MinDistScalar returns max(Lb-v, v-Ub, 0): the distance from scalar v to
// the nearest point in i, 0 if v is inside.
func (i Interval) MinDistScalar(v int64) int64 {
	d := i.Lb - v
	if e := v - i.Ub; e > d {
		d = e
	}
	if d < 0 {
		return 0
	}
	return d
}

// EnlargeWith grows both bounds by alpha: [Lb-alpha, Ub+alpha]. A positive
// alpha is the typical case (L1-ball Minkowski sum); a negative alpha
// shrinks the interval and may produce the invalid sentinel.
func (i Interval) EnlargeWith(alpha int64) Interval {
	return Interval{Lb: i.Lb - alpha, Ub: i.Ub + alpha}
}

// Displace returns the pairwise bound difference (i.Lb-o.Lb, i.Ub-o.Ub) as a
// plain pair of scalars rather than a new Interval — the bound-to-bound
// displacement is a vector, not a region. Callers needing a true Vector2
// should use vector2.Vector2.
func (i Interval) Displace(o Interval) (dLb, dUb int64) {
	return i.Lb - o.Lb, i.Ub - o.Ub
}

// NearestTo returns the value inside i closest to q: q clamped to [Lb, Ub].
func (i Interval) NearestTo(q int64) int64 {
	if q < i.Lb {
		return i.Lb
	}
	if q > i.Ub {
		return i.Ub
	}
	return q
}
