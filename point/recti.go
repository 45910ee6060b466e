package point

import "github.com/katalvlaran/physdes/interval"

// Rect is an axis-aligned rectangle: a Point whose coordinates are both
// intervals. It is the "tilted rectangle region" concept applied in
// un-rotated (original) coordinates — used for keep-outs and bounding
// boxes, as distinct from manhattan.Arc which lives in rotated coordinates.
type Rect struct {
	Point[interval.Interval, interval.Interval]
}

// NewRect constructs a Rect from explicit X/Y intervals.
func NewRect(x, y interval.Interval) Rect {
	return Rect{Point[interval.Interval, interval.Interval]{X: x, Y: y}}
}

// Width returns the rectangle's extent along X.
func (r Rect) Width() int64 { return r.X.Length() }

// Height returns the rectangle's extent along Y.
func (r Rect) Height() int64 { return r.Y.Length() }

// Area returns Width * Height.
func (r Rect) Area() int64 { return r.Width() * r.Height() }

// ContainsPoint reports whether scalar point q lies within r.
func (r Rect) ContainsPoint(q Point2) bool {
	return r.X.ContainsScalar(q.X) && r.Y.ContainsScalar(q.Y)
}

// HSegment is a horizontal span: X ranges over an interval, Y is fixed.
type HSegment struct {
	Point[interval.Interval, int64]
}

// NewHSegment constructs an HSegment with X ranging over [lb, ub] at
// fixed y.
func NewHSegment(lb, ub, y int64) HSegment {
	return HSegment{Point[interval.Interval, int64]{X: interval.New(lb, ub), Y: y}}
}

// Flip returns the VSegment with X and Y swapped.
func (h HSegment) Flip() VSegment {
	return VSegment{Point[int64, interval.Interval]{X: h.Y, Y: h.X}}
}

// VSegment is a vertical span: X is fixed, Y ranges over an interval.
type VSegment struct {
	Point[int64, interval.Interval]
}

// NewVSegment constructs a VSegment with Y ranging over [lb, ub] at
// fixed x.
func NewVSegment(x, lb, ub int64) VSegment {
	return VSegment{Point[int64, interval.Interval]{X: x, Y: interval.New(lb, ub)}}
}

// Flip returns the HSegment with X and Y swapped.
func (v VSegment) Flip() HSegment {
	return HSegment{Point[interval.Interval, int64]{X: v.Y, Y: v.X}}
}
