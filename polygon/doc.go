// Package polygon implements Polygon and RPolygon: an origin Point plus an
// ordered list of displacement Vectors, so that vertex k>0 is
// origin + vecs[k-1] (each vector is measured from the origin, not from
// the previous vertex). It carries the area, orientation, convexity,
// and monotone-chain builders, plus point-in-polygon ray casting and
// convex-hull reduction via an intrusive dllist.List.
//
// Vertices, not vectors, are the natural input/output shape for callers, so
// the builders accept []point.Point2; MonotonePolygon, XMonotonePolygon,
// YMonotonePolygon, TestPolygon and ConvexHull also return []point.Point2,
// while RXMonotonePolygon and RYMonotonePolygon return an RPolygon. The
// Polygon type itself (origin+vecs) serves the signed-area and orientation
// computations, which are expressed over origin-relative vectors.
package polygon
