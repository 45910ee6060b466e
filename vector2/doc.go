// Package vector2 implements a two-component additive group over int64 with
// scalar scaling and the 2D cross product.
//
// Vector2 is the displacement type used throughout physdes: Point minus
// Point yields a Vector2, and Point plus Vector2 yields a Point. Vector2
// does not nest (a self-referential Vector2-of-Vector2 encoding of higher
// dimensions); 3D displacement is handled explicitly by the point package
// instead.
//
// Errors: none — every operation is total over int64.
package vector2
