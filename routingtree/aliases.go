package routingtree

import "github.com/katalvlaran/physdes/point"

// Tree2 is the 2D routing tree, over point.Point2.
type Tree2 = Tree[point.Point2]

// Tree3 is the 3D routing tree, over point.Point3.
type Tree3 = Tree[point.Point3]

// NewTree2 constructs a 2D routing tree rooted at sourcePos.
func NewTree2(sourcePos point.Point2) *Tree2 { return New[point.Point2](sourcePos) }

// NewTree3 constructs a 3D routing tree rooted at sourcePos.
func NewTree3(sourcePos point.Point3) *Tree3 { return New[point.Point3](sourcePos) }
