// Package dllist implements an intrusive, arena-based cyclic doubly linked
// list of integer node indices: an arena of {prev, next} pairs indexed by
// int, not a general-purpose linked-list container, so that detach is two
// pointer writes and cut/hull algorithms never allocate per step.
//
// A List of size n starts as the cycle 0 -> 1 -> ... -> n-1 -> 0. Detached
// nodes are not reused; callers that need new nodes call InsertAfter, which
// appends a fresh slot rather than recycling indices, so that existing
// indices into the arena remain stable across a sequence of cuts. Cut
// builds on InsertAfter to split one cycle into two independent cycles
// that share no node: one keeps both split points u and v, the other holds
// the fresh node in their place. This is the primitive a rectilinear
// decomposition's repeated reflex-vertex cuts are built from.
//
// Errors: none — all operations are defined for any node index currently
// present in the list; callers are responsible for only passing live
// indices (those not yet Detach-ed), as with any intrusive structure.
package dllist
