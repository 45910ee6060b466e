package dme

import "github.com/katalvlaran/physdes/point"

// Sink is a clock sink: a named position with a load capacitance.
type Sink struct {
	Name        string
	Pos         point.Point2
	Capacitance float64
}

// Node is one vertex of a built clock tree: a sink (leaf, Left == Right ==
// nil) or a merge point (internal). NeedElongation records whether this
// node's own wire had to take on the full merging distance because the
// ideal zero-skew tapping point fell outside it.
type Node struct {
	Name           string
	Pos            point.Point2
	Left           *Node
	Right          *Node
	Parent         *Node
	WireLength     int64
	Delay          float64
	Capacitance    float64
	NeedElongation bool
}

// IsLeaf reports whether n is a sink (has no children).
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}
