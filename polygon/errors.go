package polygon

import "errors"

// ErrTooFewVertices is returned by any constructor or builder that requires
// at least three vertices to form a polygon.
var ErrTooFewVertices = errors.New("polygon: need at least 3 vertices")
