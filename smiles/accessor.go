package smiles

// nonRingIncoming returns the incoming edges of id that are not ring
// bonds.
func (w *Workspace) nonRingIncoming(id NodeID) []EdgeID {
	var out []EdgeID
	for _, e := range w.g.incoming(id) {
		if b, ok := w.g.edge(e); ok && !b.Ring {
			out = append(out, e)
		}
	}
	return out
}

// FindStructureRoots returns every node with no incoming non-ring edge:
// one per top-level structure in the workspace.
func (w *Workspace) FindStructureRoots() []NodeID {
	var roots []NodeID
	for _, id := range w.g.nodeIDs() {
		if len(w.nonRingIncoming(id)) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

// FindRootOf follows incoming non-ring edges from n until none remain,
// returning that fixed point. If a node has more than one non-ring
// incoming edge (a malformed graph), the first one (in insertion order)
// is followed; this never loops indefinitely on a well-formed tree.
func (w *Workspace) FindRootOf(n NodeID) (NodeID, bool) {
	current := n
	if !w.g.nodeAlive(current) {
		return NodeID{}, false
	}
	seen := map[NodeID]bool{current: true}
	for {
		incoming := w.nonRingIncoming(current)
		if len(incoming) == 0 {
			return current, true
		}
		parent := w.g.other(incoming[0], current)
		if seen[parent] {
			// A cycle among non-ring edges is malformed input; stop
			// rather than loop forever.
			return current, true
		}
		seen[parent] = true
		current = parent
	}
}

// GetAtomsOfStructure returns every node reachable from n's structure
// root by following outgoing non-ring edges, including the root itself.
func (w *Workspace) GetAtomsOfStructure(n NodeID) ([]NodeID, bool) {
	root, ok := w.FindRootOf(n)
	if !ok {
		return nil, false
	}
	atoms := []NodeID{root}
	atoms = append(atoms, w.searchDescendants(root)...)
	return atoms, true
}

func (w *Workspace) searchDescendants(n NodeID) []NodeID {
	var children []NodeID
	for _, e := range w.g.outgoing(n) {
		if b, ok := w.g.edge(e); ok && !b.Ring {
			children = append(children, w.g.other(e, n))
		}
	}
	var all []NodeID
	all = append(all, children...)
	for _, c := range children {
		all = append(all, w.searchDescendants(c)...)
	}
	return all
}

// FilterNodes returns every node in the workspace matching pred, in
// insertion order.
func (w *Workspace) FilterNodes(pred func(Atom) bool) []NodeID {
	var out []NodeID
	for _, id := range w.g.nodeIDs() {
		if a, ok := w.g.node(id); ok && pred(a) {
			out = append(out, id)
		}
	}
	return out
}

// FindNode returns the first node (in insertion order) matching pred.
func (w *Workspace) FindNode(pred func(Atom) bool) (NodeID, bool) {
	for _, id := range w.g.nodeIDs() {
		if a, ok := w.g.node(id); ok && pred(a) {
			return id, true
		}
	}
	return NodeID{}, false
}

// FilterNodesInStructure returns every node of root's structure matching
// pred, in traversal order.
func (w *Workspace) FilterNodesInStructure(root NodeID, pred func(Atom) bool) ([]NodeID, bool) {
	atoms, ok := w.GetAtomsOfStructure(root)
	if !ok {
		return nil, false
	}
	var out []NodeID
	for _, id := range atoms {
		if a, ok := w.g.node(id); ok && pred(a) {
			out = append(out, id)
		}
	}
	return out, true
}

// FindNodeInStructure returns the first node of root's structure matching
// pred, in traversal order.
func (w *Workspace) FindNodeInStructure(root NodeID, pred func(Atom) bool) (NodeID, bool) {
	matches, ok := w.FilterNodesInStructure(root, pred)
	if !ok || len(matches) == 0 {
		return NodeID{}, false
	}
	return matches[0], true
}
