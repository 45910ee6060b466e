package vector2

// Vector2 is a two-component vector over int64, supporting the additive
// group operations plus scalar scaling and the 2D cross product.
type Vector2 struct {
	X int64
	Y int64
}

// New constructs a Vector2 from explicit components.
func New(x, y int64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o, component-wise.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o, component-wise.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Scale returns v scaled by scalar k.
func (v Vector2) Scale(k int64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// DivScale returns v divided by scalar k (integer division, truncating
// toward zero as Go's / operator does). Callers needing exact round-trips
// with Scale must choose k dividing both components.
func (v Vector2) DivScale(k int64) Vector2 {
	return Vector2{X: v.X / k, Y: v.Y / k}
}

// AddInPlace mutates v to v + o and returns it, for call chains that want to
// avoid an extra temporary.
func (v *Vector2) AddInPlace(o Vector2) *Vector2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// ScaleInPlace mutates v to v scaled by k and returns it.
func (v *Vector2) ScaleInPlace(k int64) *Vector2 {
	v.X *= k
	v.Y *= k
	return v
}

// Equal reports component-wise equality.
func (v Vector2) Equal(o Vector2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Cross returns the 2D cross product scalar v.X*o.Y - o.X*v.Y.
func (v Vector2) Cross(o Vector2) int64 {
	return v.X*o.Y - o.X*v.Y
}

// Dot returns the standard dot product v.X*o.X + v.Y*o.Y.
func (v Vector2) Dot(o Vector2) int64 {
	return v.X*o.X + v.Y*o.Y
}

// L1Norm returns |X| + |Y|, the Manhattan length of v.
func (v Vector2) L1Norm() int64 {
	x, y := v.X, v.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x + y
}
