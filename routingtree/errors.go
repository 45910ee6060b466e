package routingtree

import "errors"

// ErrUnknownNode is returned when an operation references a node id that
// does not exist in the tree.
var ErrUnknownNode = errors.New("routingtree: unknown node id")

// ErrNotDirectChild is returned by InsertNodeOnBranch when v is not a
// direct child of u.
var ErrNotDirectChild = errors.New("routingtree: v is not a direct child of u")

// ErrInvalidKind is returned by InsertNodeOnBranch when kind is neither
// Steiner nor Terminal.
var ErrInvalidKind = errors.New("routingtree: kind must be Steiner or Terminal")
