package rectidecomp

import "errors"

// ErrTooFewVertices is returned when the input chain has fewer than three
// vertices.
var ErrTooFewVertices = errors.New("rectidecomp: need at least 3 vertices")
