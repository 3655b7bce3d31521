package smiles

import "github.com/google/uuid"

// Workspace owns a directed graph of atoms and bonds representing one or
// more SMILES structures. It is the sole owner of that graph: nothing
// outside the workspace holds a strong reference to a node or edge, only
// the stable NodeID/EdgeID handles returned by its methods.
//
// A Workspace is not safe for concurrent use; callers managing several
// independent workspaces across goroutines need no additional
// synchronization between them, only within each one.
type Workspace struct {
	// ID identifies this workspace among others a caller may be juggling
	// at once (e.g. one per reaction pathway being assembled). It plays
	// no role in the graph semantics below.
	ID uuid.UUID

	g *graph
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{ID: uuid.New(), g: newGraph()}
}

// Atom returns the atom stored at id, or ok=false if id no longer refers
// to a live node.
func (w *Workspace) Atom(id NodeID) (Atom, bool) {
	return w.g.node(id)
}

// SetAtom overwrites the atom stored at id in place. It returns false if
// id no longer refers to a live node.
func (w *Workspace) SetAtom(id NodeID, a Atom) bool {
	return w.g.setNode(id, a)
}

// Bond returns the bond and edge id of the directed edge from -> to, if
// one exists.
func (w *Workspace) Bond(from, to NodeID) (Bond, EdgeID, bool) {
	id, ok := w.g.findEdge(from, to)
	if !ok {
		return Bond{}, EdgeID{}, false
	}
	b, _ := w.g.edge(id)
	return b, id, true
}

// OutgoingNeighbors returns the nodes reachable by a single outgoing edge
// from id, in insertion order, including ring edges.
func (w *Workspace) OutgoingNeighbors(id NodeID) []NodeID {
	edges := w.g.outgoing(id)
	out := make([]NodeID, len(edges))
	for i, e := range edges {
		out[i] = w.g.other(e, id)
	}
	return out
}

// InSameStructure reports whether every given node shares the same
// structure root. It returns false for an empty slice.
func (w *Workspace) InSameStructure(ids []NodeID) bool {
	if len(ids) == 0 {
		return false
	}
	root, ok := w.FindRootOf(ids[0])
	if !ok {
		return false
	}
	for _, id := range ids[1:] {
		other, ok := w.FindRootOf(id)
		if !ok || other != root {
			return false
		}
	}
	return true
}
