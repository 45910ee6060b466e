// Package router implements a geometry-aware global router: given a
// SOURCE point, a set of TERMINAL points, and optional rectangular
// keep-outs, it builds a routingtree.Tree2 connecting every terminal.
//
// Three variants share the same terminal pre-processing (sort by
// descending L1 distance from the source, so the longest net anchors the
// tree first) and keep-out detour logic, differing only in how each
// terminal picks its attachment point:
//
//   - RouteSimple attaches each terminal to the nearest existing tree node.
//   - RouteSteiner additionally considers inserting a new Steiner point on
//     an existing branch, when that reduces the terminal's connection cost
//     versus the nearest-node attachment.
//   - RouteConstrained runs the Steiner heuristic under a per-net
//     wirelength cap and falls back to a direct attachment — flagging the
//     net as violating if even that exceeds the cap — when the heuristic's
//     route would exceed it.
//
// The router is synchronous and deterministic: identical inputs always
// produce an identical tree.
package router
