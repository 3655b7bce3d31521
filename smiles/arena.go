package smiles

// NodeID identifies an atom in a graph. It stays valid (and distinct from
// any id minted later) for the lifetime of the Workspace, even across
// removal of unrelated nodes — see graph for why ids are
// generation-tagged rather than raw slice indices.
type NodeID struct {
	index int
	gen   uint32
}

// EdgeID identifies a bond in a graph, with the same stability guarantee
// as NodeID.
type EdgeID struct {
	index int
	gen   uint32
}

type nodeSlot struct {
	atom  Atom
	gen   uint32
	alive bool
	out   []EdgeID
	in    []EdgeID
}

type edgeSlot struct {
	bond  Bond
	from  NodeID
	to    NodeID
	gen   uint32
	alive bool
}

// graph is a generational-arena-backed directed multigraph. Node and edge
// slots are never reused for a different logical entity: removal
// tombstones a slot and bumps its generation, so any NodeID/EdgeID minted
// before the removal reads back as invalid rather than aliasing whatever
// is added next. This also makes decode failures trivially recoverable:
// rolling back a partially-built structure is just removing every slot
// appended since a checkpoint. The one exception is rollback itself: it
// truncates those trailing slots, so their indices are handed out again
// by later additions. AddStructure never returns ids minted during a
// rolled-back decode.
type graph struct {
	nodes []nodeSlot
	edges []edgeSlot
}

func newGraph() *graph {
	return &graph{}
}

// checkpoint captures slot counts so a later rollback can undo everything
// appended since.
type checkpoint struct {
	nodes int
	edges int
}

func (g *graph) checkpoint() checkpoint {
	return checkpoint{nodes: len(g.nodes), edges: len(g.edges)}
}

// rollback removes every node and edge appended since cp was taken, along
// with their adjacency-list entries on any (possibly pre-existing) node
// they touched.
func (g *graph) rollback(cp checkpoint) {
	for i := len(g.edges) - 1; i >= cp.edges; i-- {
		id := EdgeID{index: i, gen: g.edges[i].gen}
		g.removeEdge(id)
	}
	g.edges = g.edges[:cp.edges]
	for i := len(g.nodes) - 1; i >= cp.nodes; i-- {
		g.nodes[i] = nodeSlot{}
	}
	g.nodes = g.nodes[:cp.nodes]
}

func (g *graph) addNode(a Atom) NodeID {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, nodeSlot{atom: a, gen: 1, alive: true})
	return NodeID{index: idx, gen: 1}
}

func (g *graph) nodeAlive(id NodeID) bool {
	return id.index >= 0 && id.index < len(g.nodes) &&
		g.nodes[id.index].alive && g.nodes[id.index].gen == id.gen
}

func (g *graph) node(id NodeID) (Atom, bool) {
	if !g.nodeAlive(id) {
		return Atom{}, false
	}
	return g.nodes[id.index].atom, true
}

func (g *graph) setNode(id NodeID, a Atom) bool {
	if !g.nodeAlive(id) {
		return false
	}
	g.nodes[id.index].atom = a
	return true
}

// removeNode tombstones a node and every edge incident to it.
func (g *graph) removeNode(id NodeID) bool {
	if !g.nodeAlive(id) {
		return false
	}
	slot := &g.nodes[id.index]
	for _, e := range append([]EdgeID{}, slot.out...) {
		g.removeEdge(e)
	}
	for _, e := range append([]EdgeID{}, slot.in...) {
		g.removeEdge(e)
	}
	slot.alive = false
	slot.gen++
	slot.atom = Atom{}
	slot.out = nil
	slot.in = nil
	return true
}

func (g *graph) addEdge(from, to NodeID, b Bond) EdgeID {
	idx := len(g.edges)
	id := EdgeID{index: idx, gen: 1}
	g.edges = append(g.edges, edgeSlot{bond: b, from: from, to: to, gen: 1, alive: true})
	g.nodes[from.index].out = append(g.nodes[from.index].out, id)
	g.nodes[to.index].in = append(g.nodes[to.index].in, id)
	return id
}

func (g *graph) edgeAlive(id EdgeID) bool {
	return id.index >= 0 && id.index < len(g.edges) &&
		g.edges[id.index].alive && g.edges[id.index].gen == id.gen
}

func (g *graph) edge(id EdgeID) (Bond, bool) {
	if !g.edgeAlive(id) {
		return Bond{}, false
	}
	return g.edges[id.index].bond, true
}

func (g *graph) setEdge(id EdgeID, b Bond) bool {
	if !g.edgeAlive(id) {
		return false
	}
	g.edges[id.index].bond = b
	return true
}

func (g *graph) removeEdge(id EdgeID) bool {
	if !g.edgeAlive(id) {
		return false
	}
	slot := &g.edges[id.index]
	removeEdgeID(&g.nodes[slot.from.index].out, id)
	removeEdgeID(&g.nodes[slot.to.index].in, id)
	slot.alive = false
	slot.gen++
	return true
}

func removeEdgeID(list *[]EdgeID, id EdgeID) {
	for i, e := range *list {
		if e == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}

// findEdge returns the directed edge from -> to, if one exists.
func (g *graph) findEdge(from, to NodeID) (EdgeID, bool) {
	if !g.nodeAlive(from) {
		return EdgeID{}, false
	}
	for _, e := range g.nodes[from.index].out {
		if g.edges[e.index].to == to {
			return e, true
		}
	}
	return EdgeID{}, false
}

// outgoing returns the ids of every edge leaving id, in insertion order.
func (g *graph) outgoing(id NodeID) []EdgeID {
	if !g.nodeAlive(id) {
		return nil
	}
	return append([]EdgeID{}, g.nodes[id.index].out...)
}

// incoming returns the ids of every edge entering id, in insertion order.
func (g *graph) incoming(id NodeID) []EdgeID {
	if !g.nodeAlive(id) {
		return nil
	}
	return append([]EdgeID{}, g.nodes[id.index].in...)
}

// undirected returns every edge touching id regardless of direction.
func (g *graph) undirected(id NodeID) []EdgeID {
	return append(g.outgoing(id), g.incoming(id)...)
}

func (g *graph) other(e EdgeID, id NodeID) NodeID {
	edge := g.edges[e.index]
	if edge.from == id {
		return edge.to
	}
	return edge.from
}

// nodeIDs returns every live node id, in insertion order.
func (g *graph) nodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for i, n := range g.nodes {
		if n.alive {
			ids = append(ids, NodeID{index: i, gen: n.gen})
		}
	}
	return ids
}
