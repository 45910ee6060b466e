package polygon

import (
	"github.com/katalvlaran/physdes/point"
	"github.com/katalvlaran/physdes/vector2"
)

// Polygon is an origin Point plus an ordered list of displacement Vectors:
// vertex k>0 is origin + Vecs[k-1], i.e. Vecs[i] holds the displacement of
// vertex i+1 from the origin (vertex 0). The vectors are not chained edge
// to edge; no vertex is a running sum of earlier vectors.
type Polygon struct {
	Origin point.Point2
	Vecs   []vector2.Vector2
}

// FromPointSet builds a Polygon from an ordered vertex chain: the first
// point becomes the origin, and every later point is recorded as its
// displacement from the origin.
func FromPointSet(pts []point.Point2) (Polygon, error) {
	if len(pts) < 3 {
		return Polygon{}, ErrTooFewVertices
	}
	origin := pts[0]
	vecs := make([]vector2.Vector2, 0, len(pts)-1)
	for _, p := range pts[1:] {
		vecs = append(vecs, p.Displace(origin))
	}
	return Polygon{Origin: origin, Vecs: vecs}, nil
}

// Vertices reconstructs the full vertex chain (origin first, then origin
// plus each stored displacement).
func (p Polygon) Vertices() []point.Point2 {
	out := make([]point.Point2, 0, len(p.Vecs)+1)
	out = append(out, p.Origin)
	cur := p.Origin
	for _, v := range p.Vecs {
		cur = point.NewPoint2(p.Origin.X+v.X, p.Origin.Y+v.Y)
		out = append(out, cur)
	}
	return out
}

// Translate returns p shifted by v.
func (p Polygon) Translate(v vector2.Vector2) Polygon {
	return Polygon{Origin: p.Origin.AddVector(v), Vecs: p.Vecs}
}

// SignedAreaX2 computes the doubled shoelace sum via a running two-vector
// window, avoiding a materialised closed copy of the vertex chain. At least
// two vecs (three vertices) are required.
func (p Polygon) SignedAreaX2() int64 {
	n := len(p.Vecs)
	vec0, vec1 := p.Vecs[0], p.Vecs[1]
	res := vec0.X*vec1.Y - p.Vecs[n-1].X*p.Vecs[n-2].Y
	prev0, prev1 := vec0, vec1
	for i := 2; i < n; i++ {
		vec2 := p.Vecs[i]
		res += prev1.X * (vec2.Y - prev0.Y)
		prev0, prev1 = prev1, vec2
	}
	return res
}

// IsRectilinear reports whether every edge of the closed chain is axis
// aligned.
func (p Polygon) IsRectilinear() bool {
	chain := append([]vector2.Vector2{{X: 0, Y: 0}}, p.Vecs...)
	for i := range chain {
		a, b := chain[i], chain[(i+1)%len(chain)]
		if a.X != b.X && a.Y != b.Y {
			return false
		}
	}
	return true
}

// IsAnticlockwise decides orientation by the cross product of the two
// edges incident to the lexicographically minimal vertex.
func (p Polygon) IsAnticlockwise() bool {
	chain := append([]vector2.Vector2{{X: 0, Y: 0}}, p.Vecs...)
	n := len(chain)
	minIdx := 0
	for i := 1; i < n; i++ {
		if chain[i].X < chain[minIdx].X || (chain[i].X == chain[minIdx].X && chain[i].Y < chain[minIdx].Y) {
			minIdx = i
		}
	}
	prev := chain[(minIdx-1+n)%n]
	cur := chain[minIdx]
	next := chain[(minIdx+1)%n]
	edgeIn := cur.Sub(prev)
	edgeOut := next.Sub(cur)
	return edgeIn.Cross(edgeOut) > 0
}

// IsConvex reports whether every turn of the closed chain agrees in sign
// with the polygon's own orientation.
func (p Polygon) IsConvex() bool {
	if len(p.Vecs) < 2 {
		return true
	}
	anticlockwise := p.IsAnticlockwise()
	chain := append([]vector2.Vector2{{X: 0, Y: 0}}, p.Vecs...)
	n := len(chain)
	for i := 0; i < n; i++ {
		prev := chain[(i-1+n)%n]
		cur := chain[i]
		next := chain[(i+1)%n]
		turn := cur.Sub(prev).Cross(next.Sub(cur))
		if anticlockwise && turn < 0 {
			return false
		}
		if !anticlockwise && turn > 0 {
			return false
		}
	}
	return true
}
