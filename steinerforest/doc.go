// Package steinerforest implements the primal-dual Steiner-forest solver
// on an H*W rectilinear grid: cell (r,c) is vertex r*W+c, and edges
// connect 4-neighbours at unit weight.
//
// SolveGrid runs the Agrawal-Klein-Ravi moat-growing phase (every active
// component's moat grows in lockstep until some edge is fully paid,
// which is then added to the forest and its endpoints unioned) followed
// by reverse-delete pruning (edges are considered for removal in
// reverse order of addition; an edge is dropped if the forest still
// connects every terminal pair without it).
//
// Errors: ErrInfeasible (the grid graph cannot connect every pair, e.g.
// a non-positive dimension or a pair split across an unreachable
// region).
package steinerforest
