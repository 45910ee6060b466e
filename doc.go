// Package physdes (physdes-go) is a rectilinear (L1/Manhattan) physical-design
// geometry core: merging-segment arithmetic for zero-skew clock-tree
// synthesis, a primal-dual Steiner-forest grid solver, rectilinear polygon
// convex decomposition, and a geometry-aware global router with keep-outs.
//
// 📐 What is physdes-go?
//
//	A pure-Go library built around one idea: a point, a 45°-rotated segment,
//	and a tilted rectangular region are all the same shape of object — a
//	Point whose coordinates are either a scalar or an Interval. Every
//	higher-level algorithm (DME, the global router, the Steiner-forest
//	solver) manipulates that one uniform representation.
//
// ✨ Why choose physdes-go?
//
//   - Integer-exact    — rotated-coordinate arithmetic never needs floats
//   - Generic core     — Point[CX, CY] is monomorphised per coordinate kind
//     by the compiler; Rect, HSegment, and VSegment wrap instantiations of
//     it rather than duplicating it, and manhattan.Arc pairs two Intervals
//   - Deterministic    — every tie-break (terminal order, edge selection,
//     monotone-chain split) is pinned down and tested
//   - Pure Go          — no cgo, no hidden dependencies beyond testify
//
// Package layout:
//
//	interval/      — closed 1D interval arithmetic
//	vector2/       — additive 2D vector group
//	point/         — generic scalar-or-interval Point, Rect/HSegment/VSegment
//	manhattan/     — ManhattanArc (2D) and Arc3D merging-segment algebra
//	polygon/       — Polygon/RPolygon, monotone builders, convex hulls
//	dllist/        — intrusive arena-based cyclic doubly linked list
//	rectidecomp/   — rectilinear convex decomposition
//	routingtree/   — mutable Source/Steiner/Terminal routing tree (2D & 3D)
//	router/        — global router: simple, Steiner, delay-constrained
//	dme/           — DME clock-tree builder with pluggable delay models
//	steinerforest/ — grid primal-dual Steiner forest with reverse delete
//	lds/           — deterministic low-discrepancy point sampler (test tooling)
//
package physdes
