package steinerforest

import "errors"

// ErrInfeasible is returned when SolveGrid cannot connect every terminal
// pair on the given grid.
var ErrInfeasible = errors.New("steinerforest: cannot connect every pair on this grid")
