package steinerforest

// GridPoint is a grid cell by (row, column).
type GridPoint struct {
	R, C int
}

// Pair is one net to connect: a source cell and a terminal cell.
type Pair struct {
	Source   GridPoint
	Terminal GridPoint
}

// gridEdge is an undirected unit-weight edge between two vertex ids,
// u < v.
type gridEdge struct {
	u, v int
}

// vertexOf maps a grid cell to its dense vertex id, row-major.
func vertexOf(p GridPoint, w int) int {
	return p.R*w + p.C
}

// gridEdges enumerates every 4-neighbour edge of an H*W grid exactly
// once, in row-major order of their lower endpoint (right neighbour
// before down neighbour) — the enumeration order the solver uses for
// its first-encountered tie-break.
func gridEdges(h, w int) []gridEdge {
	edges := make([]gridEdge, 0, 2*h*w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			u := r*w + c
			if c+1 < w {
				edges = append(edges, gridEdge{u, u + 1})
			}
			if r+1 < h {
				edges = append(edges, gridEdge{u, u + w})
			}
		}
	}
	return edges
}
