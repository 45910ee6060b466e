package dllist

// List is an arena of cyclic doubly-linked node slots, indexed by int. Slot
// i's neighbours are next[i] and prev[i]; a detached slot has next[i] == -1.
type List struct {
	next []int
	prev []int
}

// New builds the cycle 0 -> 1 -> ... -> n-1 -> 0. n must be >= 1.
func New(n int) *List {
	l := &List{next: make([]int, n), prev: make([]int, n)}
	for i := 0; i < n; i++ {
		l.next[i] = (i + 1) % n
		l.prev[i] = (i - 1 + n) % n
	}
	return l
}

// Len returns the arena's capacity (including detached slots).
func (l *List) Len() int {
	return len(l.next)
}

// Next returns the successor of node i.
func (l *List) Next(i int) int {
	return l.next[i]
}

// Prev returns the predecessor of node i.
func (l *List) Prev(i int) int {
	return l.prev[i]
}

// Live reports whether node i is still linked into the cycle (has not been
// Detach-ed).
func (l *List) Live(i int) bool {
	return l.next[i] != -1
}

// Detach removes node i from the cycle in O(1), splicing its neighbours
// together. i itself becomes inert (Live(i) == false) but its slot index
// remains valid for bookkeeping (e.g. a caller's map from node index to
// payload).
func (l *List) Detach(i int) {
	p, n := l.prev[i], l.next[i]
	l.next[p] = n
	l.prev[n] = p
	l.next[i] = -1
	l.prev[i] = -1
}

// InsertAfter appends a new node, linked immediately after i, and returns
// its index. The new index is always len-before-insert (indices are never
// recycled), so any external index the caller already holds stays valid.
func (l *List) InsertAfter(i int) int {
	newIdx := len(l.next)
	n := l.next[i]
	l.next = append(l.next, n)
	l.prev = append(l.prev, i)
	l.next[i] = newIdx
	l.prev[n] = newIdx
	return newIdx
}

// Cut appends a fresh node (via InsertAfter) and rewires it to split the
// cycle containing u and v into two independent cycles: one running
// u -> v -> ... -> u (the direct edge u->v replaces whatever used to lie
// between them on that side), the other running newIdx -> (u's old
// successor) -> ... -> (v's old predecessor) -> newIdx. u and v must
// already be live and belong to the same cycle, with at least one other
// node between them on each side. Cut never merges or detaches existing
// nodes; it only rewires four pointers plus the two touching the new
// slot, so indices already held by the caller remain valid in whichever
// of the two resulting cycles they now belong to.
func (l *List) Cut(u, v int) int {
	oldNextU := l.next[u]
	oldPrevV := l.prev[v]

	newIdx := l.InsertAfter(u)
	l.prev[newIdx] = oldPrevV
	l.next[oldPrevV] = newIdx
	l.next[newIdx] = oldNextU
	l.prev[oldNextU] = newIdx

	l.next[u] = v
	l.prev[v] = u

	return newIdx
}

// Walk returns the node indices reachable from start by repeated Next,
// stopping when start is reached again. The caller must pass a live start
// index; Walk never allocates beyond the result slice.
func (l *List) Walk(start int) []int {
	if !l.Live(start) {
		return nil
	}
	out := []int{start}
	for cur := l.next[start]; cur != start; cur = l.next[cur] {
		out = append(out, cur)
	}
	return out
}
