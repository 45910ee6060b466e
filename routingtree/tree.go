package routingtree

import (
	"fmt"
	"sync"
)

// Kind distinguishes the three node roles a routing tree can hold.
type Kind int

const (
	// Source is the tree's unique root.
	Source Kind = iota
	// Steiner marks an internal node inserted purely to reduce wirelength.
	Steiner
	// Terminal marks a leaf the tree must connect.
	Terminal
)

// kindPrefix names the ID prefix each kind's monotonic counter uses.
func kindPrefix(k Kind) string {
	switch k {
	case Source:
		return "SRC"
	case Steiner:
		return "STN"
	default:
		return "TRM"
	}
}

// NoParent is the sentinel parent id meaning "attach to the nearest
// existing node" on insert, and is also the Parent value of the root.
const NoParent = ""

// Position is the one capability Tree needs from its node coordinate type:
// the L1 (or L1-equivalent) distance to another position of the same type.
// point.Point2 and point.Point3 both satisfy it already.
type Position[S any] interface {
	MinDistWith(S) int64
}

// Node is one vertex of a Tree. ID is a monotonically increasing string
// per Kind (SRC0, STN0, STN1, TRM0, ...), following the vertex-ID
// convention core.Graph and gridgraph use for their own string-keyed
// vertices.
type Node[P Position[P]] struct {
	ID       string
	Kind     Kind
	Pos      P
	Parent   string
	Children []string
}

// Tree is a mutable routing tree over position type P. The zero value is
// not usable; construct with New. A Tree's mutation is exclusively by its
// owning call; the mutex exists so that read accessors remain safe to
// call from a goroutine inspecting a tree another goroutine is
// simultaneously still building, not to offer any ordering guarantee
// beyond mutual exclusion.
type Tree[P Position[P]] struct {
	mu      sync.RWMutex
	nodes   []Node[P]
	index   map[string]int
	counter [3]int
}

// New creates a Tree whose unique SOURCE node sits at sourcePos.
func New[P Position[P]](sourcePos P) *Tree[P] {
	t := &Tree[P]{index: make(map[string]int)}
	id := t.nextID(Source)
	t.nodes = append(t.nodes, Node[P]{ID: id, Kind: Source, Pos: sourcePos, Parent: NoParent})
	t.index[id] = 0
	return t
}

// nextID allocates the next monotonic ID for kind and advances its
// counter.
func (t *Tree[P]) nextID(kind Kind) string {
	id := fmt.Sprintf("%s%d", kindPrefix(kind), t.counter[kind])
	t.counter[kind]++
	return id
}

// NodeCount returns the number of nodes in the tree, including the root.
func (t *Tree[P]) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes)
}

// Nodes returns a copy of every node currently in the tree, in insertion
// order.
func (t *Tree[P]) Nodes() []Node[P] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Node[P], len(t.nodes))
	for i, n := range t.nodes {
		n.Children = append([]string(nil), n.Children...)
		out[i] = n
	}
	return out
}

// Node returns a copy of the node with the given id.
func (t *Tree[P]) Node(id string) (Node[P], error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[id]
	if !ok {
		return Node[P]{}, ErrUnknownNode
	}
	n := t.nodes[i]
	n.Children = append([]string(nil), n.Children...)
	return n, nil
}

// nearestNode returns the id of the live node whose Pos is closest to pos
// under P's distance, ties broken toward the earliest-inserted node.
func (t *Tree[P]) nearestNode(pos P) string {
	best := 0
	bestDist := t.nodes[0].Pos.MinDistWith(pos)
	for i := 1; i < len(t.nodes); i++ {
		d := t.nodes[i].Pos.MinDistWith(pos)
		if d < bestDist {
			bestDist, best = d, i
		}
	}
	return t.nodes[best].ID
}

// insert appends a new node of the given kind at pos, attached to parent
// (or to the nearest existing node, if parent == NoParent).
func (t *Tree[P]) insert(kind Kind, pos P, parent string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if parent == NoParent {
		parent = t.nearestNode(pos)
	} else if _, ok := t.index[parent]; !ok {
		return "", ErrUnknownNode
	}

	id := t.nextID(kind)
	t.index[id] = len(t.nodes)
	t.nodes = append(t.nodes, Node[P]{ID: id, Kind: kind, Pos: pos, Parent: parent})
	pi := t.index[parent]
	t.nodes[pi].Children = append(t.nodes[pi].Children, id)
	return id, nil
}

// InsertNode inserts a node of the given kind at pos, attached to parent
// (or to the nearest existing node, if parent == NoParent). Callers that
// already know they want a STEINER or TERMINAL node specifically should
// prefer InsertSteinerNode/InsertTerminalNode; this exists for callers
// (such as the router) that pick a kind dynamically.
func (t *Tree[P]) InsertNode(kind Kind, pos P, parent string) (string, error) {
	return t.insert(kind, pos, parent)
}

// InsertSteinerNode inserts a STEINER node at pos. If parent is NoParent,
// it attaches to the nearest existing node by distance.
func (t *Tree[P]) InsertSteinerNode(pos P, parent string) (string, error) {
	return t.insert(Steiner, pos, parent)
}

// InsertTerminalNode inserts a TERMINAL node at pos. If parent is
// NoParent, it attaches to the nearest existing node by distance.
func (t *Tree[P]) InsertTerminalNode(pos P, parent string) (string, error) {
	return t.insert(Terminal, pos, parent)
}

// InsertNodeOnBranch requires v to be a direct child of u, then splices a
// new node of the given kind between them at pos.
func (t *Tree[P]) InsertNodeOnBranch(kind Kind, pos P, u, v string) (string, error) {
	if kind != Steiner && kind != Terminal {
		return "", ErrInvalidKind
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ui, ok := t.index[u]
	if !ok {
		return "", ErrUnknownNode
	}
	vi, ok := t.index[v]
	if !ok {
		return "", ErrUnknownNode
	}
	if t.nodes[vi].Parent != u {
		return "", ErrNotDirectChild
	}

	id := t.nextID(kind)
	t.index[id] = len(t.nodes)
	t.nodes = append(t.nodes, Node[P]{ID: id, Kind: kind, Pos: pos, Parent: u, Children: []string{v}})
	t.nodes[vi].Parent = id

	siblings := t.nodes[ui].Children
	for i, c := range siblings {
		if c == v {
			siblings[i] = id
			break
		}
	}
	t.nodes[ui].Children = siblings

	return id, nil
}

// OptimizeSteinerPoints removes every STEINER node with exactly one child,
// reattaching that child to its grandparent, iterated to a fixed point.
func (t *Tree[P]) OptimizeSteinerPoints() {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := map[string]bool{}
	for {
		folded := false
		for i := range t.nodes {
			n := t.nodes[i]
			if n.Kind != Steiner || n.Parent == NoParent || len(n.Children) != 1 {
				continue
			}
			removed[n.ID] = true
			child := n.Children[0]
			grandparent := n.Parent
			ci := t.index[child]
			gi := t.index[grandparent]
			t.nodes[ci].Parent = grandparent
			t.nodes[i].Children = nil

			gp := t.nodes[gi].Children
			for j, c := range gp {
				if c == n.ID {
					gp[j] = child
					break
				}
			}
			t.nodes[gi].Children = gp
			folded = true
		}
		if !folded {
			kept := t.nodes[:0]
			for _, n := range t.nodes {
				if !removed[n.ID] {
					kept = append(kept, n)
				}
			}
			t.nodes = kept
			for id := range removed {
				delete(t.index, id)
			}
			for i, n := range t.nodes {
				t.index[n.ID] = i
			}
			return
		}
	}
}

// FindPathToSource walks parent pointers from id and returns the positions
// in source-to-node order.
func (t *Tree[P]) FindPathToSource(id string) ([]P, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := t.index[id]; !ok {
		return nil, ErrUnknownNode
	}

	var reversed []P
	for cur := id; ; {
		i := t.index[cur]
		reversed = append(reversed, t.nodes[i].Pos)
		if t.nodes[i].Parent == NoParent {
			break
		}
		cur = t.nodes[i].Parent
	}

	path := make([]P, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path, nil
}

// TruncateTo discards every node at slice position >= n, along with any
// reference to them in a surviving node's Children list. It exists for
// callers (such as the router's constrained variant) that speculatively
// insert a candidate route and need to undo it atomically when the
// candidate turns out to violate a constraint; it is only safe to call
// with n equal to a NodeCount() observed before the nodes being discarded
// were inserted.
func (t *Tree[P]) TruncateTo(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n >= len(t.nodes) {
		return
	}
	for i := 0; i < n; i++ {
		kept := t.nodes[i].Children[:0]
		for _, c := range t.nodes[i].Children {
			if t.index[c] < n {
				kept = append(kept, c)
			}
		}
		t.nodes[i].Children = kept
	}
	for i := n; i < len(t.nodes); i++ {
		delete(t.index, t.nodes[i].ID)
	}
	t.nodes = t.nodes[:n]
}

// CalculateWirelength returns the sum of L1 distances over every
// parent/child edge in the tree.
func (t *Tree[P]) CalculateWirelength() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total int64
	for _, n := range t.nodes {
		if n.Parent == NoParent {
			continue
		}
		total += n.Pos.MinDistWith(t.nodes[t.index[n.Parent]].Pos)
	}
	return total
}
