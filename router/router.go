package router

import (
	"math"
	"sort"

	"github.com/katalvlaran/physdes/manhattan"
	"github.com/katalvlaran/physdes/point"
	"github.com/katalvlaran/physdes/routingtree"
)

// orderDescendingL1 returns terminal indices sorted by descending L1
// distance from source, ties broken by original (insertion) order — a
// stable sort on the negated distance achieves exactly that.
func orderDescendingL1(source point.Point2, terminals []point.Point2) []int {
	order := make([]int, len(terminals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return source.MinDistWith(terminals[order[i]]) > source.MinDistWith(terminals[order[j]])
	})
	return order
}

// attach connects childPos to parentID as a node of the given kind,
// detouring through the nearest corner of any keep-out that blocks the
// direct connection.
func attach(tr *routingtree.Tree2, kind routingtree.Kind, childPos point.Point2, parentID string, keepOuts []KeepOut) (string, error) {
	parent, err := tr.Node(parentID)
	if err != nil {
		return "", err
	}
	if ko, blocked := blockingKeepOut(parent.Pos, childPos, keepOuts); blocked {
		corner := nearestCorner(parent.Pos, childPos, ko)
		detourID, err := tr.InsertSteinerNode(corner, parentID)
		if err != nil {
			return "", err
		}
		return tr.InsertNode(kind, childPos, detourID)
	}
	return tr.InsertNode(kind, childPos, parentID)
}

// RouteSimple attaches each terminal to the nearest node in the tree built
// so far.
func RouteSimple(source point.Point2, terminals []point.Point2, keepOuts []KeepOut) (*routingtree.Tree2, error) {
	tr := routingtree.NewTree2(source)
	for _, i := range orderDescendingL1(source, terminals) {
		t := terminals[i]
		nearest, err := nearestNode(tr, t)
		if err != nil {
			return nil, err
		}
		if _, err := attach(tr, routingtree.Terminal, t, nearest, keepOuts); err != nil {
			return nil, err
		}
	}
	return tr, nil
}

// nearestNode scans every live node and returns the id closest to pos by
// L1 distance, ties broken toward the earlier-inserted node.
func nearestNode(tr *routingtree.Tree2, pos point.Point2) (string, error) {
	nodes := tr.Nodes()
	best := nodes[0].ID
	bestDist := nodes[0].Pos.MinDistWith(pos)
	for _, node := range nodes[1:] {
		d := node.Pos.MinDistWith(pos)
		if d < bestDist {
			bestDist, best = d, node.ID
		}
	}
	return best, nil
}

// steinerCandidate is one way to connect a terminal into the tree: either
// directly to an existing node, or through a new Steiner point inserted on
// an existing branch.
type steinerCandidate struct {
	cost       int64
	parentID   string // node the terminal (or new Steiner point) attaches to
	onBranch   bool
	branchU    string // parent endpoint of the branch, if onBranch
	branchV    string // child endpoint of the branch, if onBranch
	steinerPos point.Point2
}

// bestSteinerAttachment finds the minimum-cost way to connect pos into the
// current tree: attaching directly to an existing node, or inserting a
// Steiner point on an existing branch at the point of that branch's
// bounding Manhattan arc nearest to pos (any point in that arc lies on
// some L1-shortest path between the branch's two endpoints, so the only
// added cost is the detour from the branch to pos itself).
func bestSteinerAttachment(tr *routingtree.Tree2, pos point.Point2) (steinerCandidate, error) {
	nodes := tr.Nodes()
	var best steinerCandidate
	bestSet := false

	byID := make(map[string]routingtree.Node[point.Point2], len(nodes))
	for _, node := range nodes {
		byID[node.ID] = node
		cost := node.Pos.MinDistWith(pos)
		if !bestSet || cost < best.cost {
			best = steinerCandidate{cost: cost, parentID: node.ID}
			bestSet = true
		}
	}

	for _, node := range nodes {
		if node.Parent == routingtree.NoParent {
			continue
		}
		parent, ok := byID[node.Parent]
		if !ok {
			return steinerCandidate{}, routingtree.ErrUnknownNode
		}
		arc := manhattan.FromPoint(parent.Pos).HullWith(manhattan.FromPoint(node.Pos))
		s := arc.NearestPointTo(pos)
		cost := s.MinDistWith(pos)
		if cost < best.cost {
			best = steinerCandidate{cost: cost, onBranch: true, branchU: node.Parent, branchV: node.ID, steinerPos: s}
		}
	}
	return best, nil
}

// RouteSteiner attaches each terminal either to the nearest node or, if
// cheaper, through a new Steiner point on an existing branch.
func RouteSteiner(source point.Point2, terminals []point.Point2, keepOuts []KeepOut) (*routingtree.Tree2, error) {
	tr := routingtree.NewTree2(source)
	for _, i := range orderDescendingL1(source, terminals) {
		if _, _, err := routeOneSteiner(tr, terminals[i], keepOuts); err != nil {
			return nil, err
		}
	}
	return tr, nil
}

// routeOneSteiner connects a single terminal using the Steiner heuristic
// and returns the terminal's node id and its total wire length from the
// tree's source (the sum of L1 distances along its path, not the added
// cost alone).
func routeOneSteiner(tr *routingtree.Tree2, t point.Point2, keepOuts []KeepOut) (string, int64, error) {
	cand, err := bestSteinerAttachment(tr, t)
	if err != nil {
		return "", 0, err
	}

	parentID := cand.parentID
	if cand.onBranch {
		id, err := attachOnBranch(tr, cand, keepOuts)
		if err != nil {
			return "", 0, err
		}
		parentID = id
	}

	id, err := attach(tr, routingtree.Terminal, t, parentID, keepOuts)
	if err != nil {
		return "", 0, err
	}
	length, err := pathLength(tr, id)
	if err != nil {
		return "", 0, err
	}
	return id, length, nil
}

func attachOnBranch(tr *routingtree.Tree2, cand steinerCandidate, keepOuts []KeepOut) (string, error) {
	u, err := tr.Node(cand.branchU)
	if err != nil {
		return "", err
	}
	if ko, blocked := blockingKeepOut(u.Pos, cand.steinerPos, keepOuts); blocked {
		corner := nearestCorner(u.Pos, cand.steinerPos, ko)
		detourID, err := tr.InsertSteinerNode(corner, cand.branchU)
		if err != nil {
			return "", err
		}
		return tr.InsertNodeOnBranch(routingtree.Steiner, cand.steinerPos, detourID, cand.branchV)
	}
	return tr.InsertNodeOnBranch(routingtree.Steiner, cand.steinerPos, cand.branchU, cand.branchV)
}

// pathLength returns the sum of L1 distances from the tree's source to
// node id along its parent chain.
func pathLength(tr *routingtree.Tree2, id string) (int64, error) {
	path, err := tr.FindPathToSource(id)
	if err != nil {
		return 0, err
	}
	var total int64
	for i := 1; i < len(path); i++ {
		total += path[i-1].MinDistWith(path[i])
	}
	return total, nil
}

// ConstrainedResult is RouteConstrained's output: the built tree plus,
// aligned with the input terminals slice, whether each net's realised
// wirelength exceeds the constraint bound.
type ConstrainedResult struct {
	Tree     *routingtree.Tree2
	Violated []bool
	Bound    int64
}

// RouteConstrained runs the Steiner heuristic under a per-net wirelength
// cap of round(worstDirect * alpha), where worstDirect is the largest
// direct source-to-terminal L1 distance among the inputs. A net whose
// Steiner-heuristic route would exceed the cap instead falls back to a
// direct nearest-node attachment; if even that exceeds the cap, the net is
// flagged in Violated rather than rejected.
func RouteConstrained(source point.Point2, terminals []point.Point2, alpha float64, keepOuts []KeepOut) (ConstrainedResult, error) {
	tr := routingtree.NewTree2(source)
	violated := make([]bool, len(terminals))

	var worstDirect int64
	for _, t := range terminals {
		if d := source.MinDistWith(t); d > worstDirect {
			worstDirect = d
		}
	}
	bound := int64(math.Round(float64(worstDirect) * alpha))

	for _, i := range orderDescendingL1(source, terminals) {
		t := terminals[i]
		before := tr.NodeCount()

		id, length, err := routeOneSteiner(tr, t, keepOuts)
		if err != nil {
			return ConstrainedResult{}, err
		}
		if length > bound {
			// The Steiner route exceeds the bound: undo everything it
			// added and fall back to a direct nearest-node attachment.
			tr.TruncateTo(before)
			nearest, err := nearestNode(tr, t)
			if err != nil {
				return ConstrainedResult{}, err
			}
			id, err = attach(tr, routingtree.Terminal, t, nearest, keepOuts)
			if err != nil {
				return ConstrainedResult{}, err
			}
			length, err = pathLength(tr, id)
			if err != nil {
				return ConstrainedResult{}, err
			}
		}
		violated[i] = length > bound
	}

	return ConstrainedResult{Tree: tr, Violated: violated, Bound: bound}, nil
}
