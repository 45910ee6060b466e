package polygon

import "github.com/katalvlaran/physdes/point"

// RPolygon is a rectilinear specialisation of Polygon: every edge of its
// vertex chain is axis-aligned. It is produced by the monotone builders
// below rather than constructed directly, since a caller-supplied point
// set is not guaranteed rectilinear.
type RPolygon struct {
	Polygon
	// Anticlockwise records the chain's handedness as reported by the
	// builder that produced it (original_source's rpolygon_from_mono_list
	// supplemented feature: callers of rectidecomp need the orientation
	// alongside the chain itself rather than recomputing it).
	Anticlockwise bool
}

// RXMonotonePolygon builds a rectilinear x-monotone chain from an
// unordered point set by first building the ordinary x-monotone chain and
// then inserting the axis-aligned corner vertex between each consecutive
// pair that differs in both coordinates, reporting the resulting chain's
// handedness.
func RXMonotonePolygon(pts []point.Point2) (RPolygon, error) {
	chain, err := XMonotonePolygon(pts)
	if err != nil {
		return RPolygon{}, err
	}
	return rectilinearize(chain)
}

// RYMonotonePolygon is the y-primary counterpart of RXMonotonePolygon.
func RYMonotonePolygon(pts []point.Point2) (RPolygon, error) {
	chain, err := YMonotonePolygon(pts)
	if err != nil {
		return RPolygon{}, err
	}
	return rectilinearize(chain)
}

// rectilinearize inserts one axis-aligned corner between every diagonal
// edge of chain (an "L" turn at the predecessor's x and the successor's
// y), builds the resulting Polygon, and reports its handedness.
func rectilinearize(chain []point.Point2) (RPolygon, error) {
	out := make([]point.Point2, 0, 2*len(chain))
	n := len(chain)
	for i := 0; i < n; i++ {
		a, b := chain[i], chain[(i+1)%n]
		out = append(out, a)
		if a.X != b.X && a.Y != b.Y {
			out = append(out, point.NewPoint2(a.X, b.Y))
		}
	}
	poly, err := FromPointSet(out)
	if err != nil {
		return RPolygon{}, err
	}
	return RPolygon{Polygon: poly, Anticlockwise: poly.IsAnticlockwise()}, nil
}
