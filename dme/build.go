package dme

import (
	"sort"

	"github.com/katalvlaran/physdes/manhattan"
	"github.com/katalvlaran/physdes/point"
)

// mergeInfo carries the extra per-node state the bottom-up and top-down
// passes need that does not belong on the public Node (the merging
// segment itself, since a leaf's segment is just its point and an
// internal node's only exists until it is collapsed to a concrete
// position by the embedding pass).
type mergeInfo struct {
	arc manhattan.Arc
}

// BuildClockTree runs the four-phase DME pipeline over sinks, balancing
// delay under model. If source is non-nil, the root is
// embedded at the point of its merging segment nearest to *source;
// otherwise the root is embedded at its segment's upper corner.
//
// BuildClockTree returns ErrEmptyInput for a nil or empty sinks slice.
func BuildClockTree(sinks []Sink, model DelayModel, source *point.Point2) (*Node, error) {
	if len(sinks) == 0 {
		return nil, ErrEmptyInput
	}

	leaves := make([]*Node, len(sinks))
	arcs := make(map[*Node]manhattan.Arc, len(sinks)*2)
	for i, s := range sinks {
		n := &Node{Name: s.Name, Pos: s.Pos, Capacitance: s.Capacitance}
		leaves[i] = n
		arcs[n] = manhattan.FromPoint(s.Pos)
	}

	root := buildMergeTree(leaves, 0)
	computeMergingSegments(root, model, arcs)
	embed(root, arcs, source)
	computeFinalDelays(root, model)

	return root, nil
}

// buildMergeTree recursively bipartitions nodes into a balanced binary
// tree, alternating the sort axis by depth: x at even depth, y at odd.
// Ties within the primary axis break on the secondary axis, then on
// input order (via a stable sort).
func buildMergeTree(nodes []*Node, depth int) *Node {
	if len(nodes) == 1 {
		return nodes[0]
	}

	sorted := append([]*Node(nil), nodes...)
	if depth%2 == 0 {
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Pos.X != sorted[j].Pos.X {
				return sorted[i].Pos.X < sorted[j].Pos.X
			}
			return sorted[i].Pos.Y < sorted[j].Pos.Y
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Pos.Y != sorted[j].Pos.Y {
				return sorted[i].Pos.Y < sorted[j].Pos.Y
			}
			return sorted[i].Pos.X < sorted[j].Pos.X
		})
	}

	mid := len(sorted) / 2
	left := buildMergeTree(sorted[:mid], depth+1)
	right := buildMergeTree(sorted[mid:], depth+1)

	parent := &Node{Left: left, Right: right}
	left.Parent = parent
	right.Parent = parent

	return parent
}

// computeMergingSegments walks the merge tree bottom-up, computing each
// internal node's merging segment and delay-balancing tapping point, and
// (via model.CalculateTappingPoint's side effects) each child's
// WireLength and NeedElongation.
func computeMergingSegments(n *Node, model DelayModel, arcs map[*Node]manhattan.Arc) {
	if n.IsLeaf() {
		return
	}
	computeMergingSegments(n.Left, model, arcs)
	computeMergingSegments(n.Right, model, arcs)

	distance := arcs[n.Left].MinDistWith(arcs[n.Right])
	extendLeft, delay := model.CalculateTappingPoint(n.Left, n.Right, distance)
	n.Delay = delay
	arcs[n] = arcs[n.Left].MergeWith(arcs[n.Right], extendLeft)

	n.Capacitance = n.Left.Capacitance + model.WireCapacitance(n.Left.WireLength) +
		n.Right.Capacitance + model.WireCapacitance(n.Right.WireLength)
}

// embed walks the merge tree top-down, fixing each node's concrete
// position: the root nearest to source (or at its segment's upper corner
// absent one), every other node nearest to its already-embedded parent.
func embed(n *Node, arcs map[*Node]manhattan.Arc, source *point.Point2) {
	if n.Parent == nil {
		arc := arcs[n]
		if source != nil {
			n.Pos = arc.NearestPointTo(*source)
		} else {
			n.Pos = arc.GetUpperCorner()
		}
	}
	if n.IsLeaf() {
		return
	}
	n.Left.Pos = arcs[n.Left].NearestPointTo(n.Pos)
	n.Right.Pos = arcs[n.Right].NearestPointTo(n.Pos)
	embed(n.Left, arcs, source)
	embed(n.Right, arcs, source)
}

// computeFinalDelays walks the merge tree top-down, recomputing each
// node's settled Delay from its parent's final delay plus the model's
// wire delay over its embedded wire length and subtree capacitance. The
// root's delay is zero.
func computeFinalDelays(n *Node, model DelayModel) {
	if n.Parent == nil {
		n.Delay = 0
	} else {
		n.Delay = n.Parent.Delay + model.WireDelay(n.WireLength, n.Capacitance)
	}
	if n.IsLeaf() {
		return
	}
	computeFinalDelays(n.Left, model)
	computeFinalDelays(n.Right, model)
}

// TotalWirelength sums every parent-edge wire length in the tree rooted
// at root.
func TotalWirelength(root *Node) int64 {
	if root == nil || root.IsLeaf() {
		return 0
	}
	return root.Left.WireLength + root.Right.WireLength +
		TotalWirelength(root.Left) + TotalWirelength(root.Right)
}

// Skew returns the difference between the maximum and minimum sink
// delays in the tree rooted at root.
func Skew(root *Node) float64 {
	min, max := leafDelayRange(root)
	return max - min
}

func leafDelayRange(n *Node) (min, max float64) {
	if n.IsLeaf() {
		return n.Delay, n.Delay
	}
	lMin, lMax := leafDelayRange(n.Left)
	rMin, rMax := leafDelayRange(n.Right)
	min = lMin
	if rMin < min {
		min = rMin
	}
	max = lMax
	if rMax > max {
		max = rMax
	}
	return min, max
}
