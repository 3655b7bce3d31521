package smiles

// ResetRoot re-roots the structure containing v so that v becomes its new
// root, by reversing every non-ring edge along the path from the old root
// down to v. Ring edges are left in place: the spec treats a ring as a
// closed loop with no privileged direction, so re-rooting through it would
// only relabel an arbitrary edge without changing the structure's meaning.
//
// Atom fields, including Chirality, are never touched by this operation —
// only edge direction changes.
//
// ResetRoot reports false if v is not a live node.
func (w *Workspace) ResetRoot(v NodeID) bool {
	if !w.g.nodeAlive(v) {
		return false
	}

	// Walk from v back to the structure root, collecting the non-ring
	// edges to reverse, using an explicit stack rather than recursion so
	// a pathological (very long) chain can't blow out the call stack.
	type step struct {
		edge   EdgeID
		parent NodeID
		child  NodeID
	}
	var path []step
	current := v
	seen := map[NodeID]bool{current: true}
	for {
		incoming := w.nonRingIncoming(current)
		if len(incoming) == 0 {
			break
		}
		e := incoming[0]
		parent := w.g.other(e, current)
		path = append(path, step{edge: e, parent: parent, child: current})
		if seen[parent] {
			break
		}
		seen[parent] = true
		current = parent
	}

	for _, s := range path {
		b, ok := w.g.edge(s.edge)
		if !ok {
			continue
		}
		w.g.removeEdge(s.edge)
		w.g.addEdge(s.child, s.parent, b.Reverse())
	}
	return true
}

// Connect adds a bond of the given kind from -> to and returns its id.
// The edge is marked as a ring bond exactly when from and to already
// belong to the same structure, since an edge joining two atoms already
// connected by a path of non-ring edges closes a ring rather than
// extending a tree.
func (w *Workspace) Connect(from, to NodeID, bondType BondType) (EdgeID, bool) {
	if !w.g.nodeAlive(from) || !w.g.nodeAlive(to) {
		return EdgeID{}, false
	}
	ring := w.InSameStructure([]NodeID{from, to})
	return w.g.addEdge(from, to, NewBond(bondType, ring)), true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// AddHydrogenToAtom appends new hydrogen atom nodes connected to a by a
// single bond, and returns their ids.
//
// If a has an explicit hydrogen count (as written in brackets), exactly
// that many are added and the count is then cleared on the atom, since
// it has now been materialized as real nodes. Otherwise the count is the
// element's default valence, adjusted for charge, existing neighbors,
// and aromaticity: DefaultHydrogen() + Charge - neighborCount -
// (1 if Aromatic), clamped to zero.
func (w *Workspace) AddHydrogenToAtom(a NodeID) ([]NodeID, bool) {
	atom, ok := w.g.node(a)
	if !ok {
		return nil, false
	}

	var count int
	if atom.ExplicitHydrogen != 0 {
		count = atom.ExplicitHydrogen
		atom.ExplicitHydrogen = 0
		w.g.setNode(a, atom)
	} else {
		need := atom.Element.DefaultHydrogen() + atom.Charge - len(w.g.undirected(a)) - boolToInt(atom.Aromatic)
		if need > 0 {
			count = need
		}
	}

	if count == 0 {
		return nil, true
	}
	ids := make([]NodeID, count)
	for i := 0; i < count; i++ {
		h := w.g.addNode(Atom{Element: ElementH, ReactID: -1})
		w.g.addEdge(a, h, NewBond(BondSingle, false))
		ids[i] = h
	}
	return ids, true
}

// AddHydrogenToStructure calls AddHydrogenToAtom on every atom of n's
// structure, including n itself.
func (w *Workspace) AddHydrogenToStructure(n NodeID) bool {
	atoms, ok := w.GetAtomsOfStructure(n)
	if !ok {
		return false
	}
	for _, a := range atoms {
		w.AddHydrogenToAtom(a)
	}
	return true
}

// RemoveHydrogens deletes every atom node in the workspace whose element
// is hydrogen, regardless of which structure it belongs to.
func (w *Workspace) RemoveHydrogens() {
	for _, id := range w.g.nodeIDs() {
		atom, ok := w.g.node(id)
		if ok && atom.Element == ElementH {
			w.g.removeNode(id)
		}
	}
}
