// Package rectidecomp implements rectilinear convex decomposition: given
// a rectilinear polygon's vertex chain and its orientation, repeatedly
// cut at a concave (reflex) vertex until every output chain has no
// reflex vertex left.
//
// Each cut casts two axial rays from the reflex vertex into the polygon
// interior and keeps the shorter one; the struck edge is split by a new
// vertex, and the ring becomes two sub-rings that each carry a copy of the
// new cut point, with the reflex vertex kept in the one where it remains a
// corner; the segment between them is the pieces' shared edge. Points and ring
// topology are kept in a growing points slice plus a dllist.List rather
// than copied sub-chain slices, so each cut is an O(1) pointer splice
// regardless of how many vertices the two resulting rings hold. The
// worklist is an explicit stack of ring-entry node indices rather than
// recursion, so an adversarial input with many reflex vertices cannot
// blow the call stack.
package rectidecomp
