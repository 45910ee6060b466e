package steinerforest

import "math"

const edgeWeight = 1.0
const epsilon = 1e-9

// Result is the pruned Steiner forest SolveGrid returns.
type Result struct {
	Edges       [][2]int
	TotalWeight int64
	Sources     map[int]bool
	Terminals   map[int]bool
	Steiner     map[int]bool
}

// SolveGrid runs the primal-dual moat-growing Steiner-forest algorithm
// (Agrawal-Klein-Ravi) over an H*W grid, connecting every pair's Source to
// its Terminal with a pruned forest of unit-weight grid edges.
//
// SolveGrid returns ErrInfeasible if h or w is non-positive, or if no
// sequence of edge growth can connect every pair (the grid graph itself
// is disconnected between some pair).
func SolveGrid(h, w int, pairs []Pair) (*Result, error) {
	if h <= 0 || w <= 0 {
		return nil, ErrInfeasible
	}
	n := h * w
	edges := gridEdges(h, w)
	paid := make([]float64, len(edges))

	sourceVertex := make([]int, len(pairs))
	terminalVertex := make([]int, len(pairs))
	for i, p := range pairs {
		sourceVertex[i] = vertexOf(p.Source, w)
		terminalVertex[i] = vertexOf(p.Terminal, w)
	}

	uf := newUnionFind(n)
	var added []int // indices into edges, in order added

	for !allPairsConnected(uf, sourceVertex, terminalVertex) {
		activeRoot := activeComponents(uf, sourceVertex, terminalVertex)

		type candidate struct {
			idx   int
			k     int
			delta float64
		}
		var eligible []candidate
		for i, e := range edges {
			if uf.connected(e.u, e.v) {
				continue
			}
			k := 0
			if activeRoot[uf.find(e.u)] {
				k++
			}
			if activeRoot[uf.find(e.v)] {
				k++
			}
			if k == 0 {
				continue
			}
			if paid[i] >= edgeWeight-epsilon {
				eligible = append(eligible, candidate{idx: i, k: k, delta: 0})
				continue
			}
			eligible = append(eligible, candidate{idx: i, k: k, delta: (edgeWeight - paid[i]) / float64(k)})
		}
		if len(eligible) == 0 {
			return nil, ErrInfeasible
		}

		deltaStar := math.Inf(1)
		for _, c := range eligible {
			if c.delta < deltaStar {
				deltaStar = c.delta
			}
		}
		for _, c := range eligible {
			paid[c.idx] = math.Min(edgeWeight, paid[c.idx]+deltaStar*float64(c.k))
		}

		chosen := -1
		for _, c := range eligible {
			if paid[c.idx] >= edgeWeight-epsilon {
				chosen = c.idx
				break
			}
		}
		if chosen < 0 {
			return nil, ErrInfeasible
		}
		uf.union(edges[chosen].u, edges[chosen].v)
		added = append(added, chosen)
	}

	kept := reverseDelete(added, edges, n, sourceVertex, terminalVertex)

	result := &Result{
		Sources:   make(map[int]bool, len(pairs)),
		Terminals: make(map[int]bool, len(pairs)),
		Steiner:   make(map[int]bool),
	}
	used := make(map[int]bool)
	for _, idx := range kept {
		e := edges[idx]
		result.Edges = append(result.Edges, [2]int{e.u, e.v})
		result.TotalWeight += int64(edgeWeight)
		used[e.u] = true
		used[e.v] = true
	}
	for _, v := range sourceVertex {
		result.Sources[v] = true
	}
	for _, v := range terminalVertex {
		result.Terminals[v] = true
	}
	for v := range used {
		if !result.Sources[v] && !result.Terminals[v] {
			result.Steiner[v] = true
		}
	}

	return result, nil
}

func allPairsConnected(uf *unionFind, sources, terminals []int) bool {
	for i := range sources {
		if !uf.connected(sources[i], terminals[i]) {
			return false
		}
	}
	return true
}

// activeComponents returns, keyed by component root, whether that
// component contains a terminal whose partner lies in a different
// component.
func activeComponents(uf *unionFind, sources, terminals []int) map[int]bool {
	active := make(map[int]bool)
	for i := range sources {
		rs, rt := uf.find(sources[i]), uf.find(terminals[i])
		if rs != rt {
			active[rs] = true
			active[rt] = true
		}
	}
	return active
}

// reverseDelete iterates added edges in reverse order of addition,
// dropping each one if the remaining edge set still connects every pair.
func reverseDelete(added []int, edges []gridEdge, n int, sources, terminals []int) []int {
	keptSet := make(map[int]bool, len(added))
	for _, idx := range added {
		keptSet[idx] = true
	}

	for i := len(added) - 1; i >= 0; i-- {
		idx := added[i]
		delete(keptSet, idx)

		uf := newUnionFind(n)
		for e := range keptSet {
			uf.union(edges[e].u, edges[e].v)
		}
		if !allPairsConnected(uf, sources, terminals) {
			keptSet[idx] = true // removing it breaks connectivity, restore
		}
	}

	kept := make([]int, 0, len(keptSet))
	for _, idx := range added {
		if keptSet[idx] {
			kept = append(kept, idx)
		}
	}
	return kept
}
