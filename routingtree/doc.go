// Package routingtree implements the mutable routing tree: a single
// SOURCE root, internal STEINER nodes, and TERMINAL leaves, with
// parent/child edges weighted by L1 distance.
//
// Tree is generic over its node's position type, so the same insertion,
// splice, optimisation and path-finding logic serves both the 2D router
// (point.Point2) and the 3D variant (point.Point3) without duplication —
// each position type need only supply MinDistWith, the one operation the
// tree's bookkeeping depends on.
//
// Nodes are identified by string IDs, monotonically increasing per Kind
// (SRC0, STN0, STN1, TRM0, ...), following core.Graph's and gridgraph's
// string-keyed vertex convention rather than raw slice indices. A Tree
// instance is the sole mutable resource; its mutation is exclusively by
// the owning call, following core.Graph's sync.RWMutex-guarded vertex
// bookkeeping style, so distinct Tree values may be driven concurrently
// from separate goroutines with no coordination between them.
//
// Errors: ErrUnknownNode, ErrNotDirectChild, ErrInvalidKind.
package routingtree
