package smiles

// constructStatus tracks the decoder's current position while walking a
// token stream: the most recently placed atom, and the stack of branch
// entry points opened by unclosed "(".
type constructStatus struct {
	current NodeID
	hasNode bool
	branch  []NodeID
}

func (s *constructStatus) advanceTo(id NodeID) {
	s.current = id
	s.hasNode = true
}

func (s *constructStatus) enterBranch() {
	s.branch = append(s.branch, s.current)
}

// quitBranch pops the branch stack, reporting false if it was empty.
func (s *constructStatus) quitBranch() bool {
	if len(s.branch) == 0 {
		return false
	}
	n := len(s.branch) - 1
	s.current = s.branch[n]
	s.branch = s.branch[:n]
	return true
}

// ringWait is one not-yet-closed ring-number occurrence.
type ringWait struct {
	id      int
	node    NodeID
	bond    BondType
	hasBond bool
}

// ringStatus is the insertion-ordered table of ring numbers seen exactly
// once so far, pending their closing reference. It is a slice rather than
// a map so that DecodeRingUnclosed can report ring ids in the order they
// were first opened, and so a ring id can be safely reused (closed, then
// reopened) within the same decode.
type ringStatus struct {
	waiting []ringWait
}

// resolve records or closes a ring reference. If id was not already
// pending, it is recorded and resolve returns ok=false. If it was
// pending, it is removed from the table and resolve returns the earlier
// node together with the effective bond kind to use for the closing
// edge; mismatch is true if the two occurrences specified conflicting
// explicit bond kinds.
func (r *ringStatus) resolve(id int, node NodeID, bond BondType, hasBond bool) (earlier NodeID, effective BondType, hasEffective bool, mismatch bool, ok bool) {
	for i, w := range r.waiting {
		if w.id != id {
			continue
		}
		r.waiting = append(r.waiting[:i], r.waiting[i+1:]...)
		switch {
		case hasBond && w.hasBond:
			if bond != w.bond {
				return w.node, 0, false, true, true
			}
			return w.node, bond, true, false, true
		case hasBond:
			return w.node, bond, true, false, true
		case w.hasBond:
			return w.node, w.bond, true, false, true
		default:
			return w.node, 0, false, false, true
		}
	}
	r.waiting = append(r.waiting, ringWait{id: id, node: node, bond: bond, hasBond: hasBond})
	return NodeID{}, 0, false, false, false
}

func (r *ringStatus) pendingIDs() []int {
	ids := make([]int, len(r.waiting))
	for i, w := range r.waiting {
		ids[i] = w.id
	}
	return ids
}

// AddStructure decodes smiles and adds it to the workspace as a new
// structure, additively: existing structures are untouched. It returns
// the id of the structure's root atom (the first token decoded).
//
// If decoding fails, no nodes or edges from this call remain in the
// workspace — partial structures are never leaked on error.
func (w *Workspace) AddStructure(smiles string) (NodeID, error) {
	cp := w.g.checkpoint()
	root, err := w.decode(smiles)
	if err != nil {
		w.g.rollback(cp)
		return NodeID{}, err
	}
	return root, nil
}

func (w *Workspace) decode(smiles string) (NodeID, error) {
	stream := NewTokenStream(smiles)
	status := constructStatus{}
	rings := ringStatus{}
	var pendingBond BondType
	var hasPendingBond bool

	first, ok := stream.Next()
	if !ok {
		return NodeID{}, &DecodeError{Kind: DecodeNoInitialAtom}
	}
	firstAtom, ok := ParseAtom(first)
	if !ok {
		return NodeID{}, &DecodeError{Kind: DecodeNoInitialAtom, Token: first}
	}
	root := w.g.addNode(firstAtom)
	status.advanceTo(root)

	for {
		tok, ok := stream.Next()
		if !ok {
			break
		}

		if atom, ok := ParseAtom(tok); ok {
			node := w.g.addNode(atom)
			bond := bondBetween(w, status.current, atom, pendingBond, hasPendingBond)
			w.g.addEdge(status.current, node, bond)
			pendingBond, hasPendingBond = 0, false
			status.advanceTo(node)
			continue
		}

		if bt, ok := bondTypeFromToken(tok); ok {
			pendingBond, hasPendingBond = bt, true
			continue
		}

		if isNoBondToken(tok) {
			pendingBond, hasPendingBond = BondNoBond, true
			continue
		}

		if bond, hasBond, ringID, ok := parseRingToken(tok); ok {
			earlier, effective, hasEffective, mismatch, wasOpen := rings.resolve(ringID, status.current, bond, hasBond)
			if mismatch {
				return NodeID{}, &DecodeError{Kind: DecodeRingBondMismatch, RingID: ringID}
			}
			if wasOpen {
				var ringBond Bond
				if hasEffective {
					ringBond = NewBond(effective, true)
				} else {
					currentAtom, _ := w.g.node(status.current)
					earlierAtom, _ := w.g.node(earlier)
					ringBond = NewBond(defaultBondKind(earlierAtom, currentAtom), true)
				}
				w.g.addEdge(earlier, status.current, ringBond)
			}
			continue
		}

		if isBranchOpen(tok) {
			status.enterBranch()
			continue
		}
		if isBranchClose(tok) {
			if !status.quitBranch() {
				return NodeID{}, &DecodeError{Kind: DecodeBranchUnderflow}
			}
			continue
		}

		return NodeID{}, &DecodeError{Kind: DecodeUnexpectedToken, Token: tok}
	}

	if len(status.branch) != 0 {
		open := make([]Atom, len(status.branch))
		for i, id := range status.branch {
			open[i], _ = w.g.node(id)
		}
		return NodeID{}, &DecodeError{Kind: DecodeBranchLeftOpen, OpenBranches: open}
	}
	if len(rings.waiting) != 0 {
		return NodeID{}, &DecodeError{Kind: DecodeRingUnclosed, PendingRings: rings.pendingIDs()}
	}

	stripNoBondEdges(w.g)
	return root, nil
}

func defaultBondKind(a, b Atom) BondType {
	if a.Aromatic && b.Aromatic {
		return BondAromatic
	}
	return BondSingle
}

func bondBetween(w *Workspace, current NodeID, next Atom, pending BondType, hasPending bool) Bond {
	if hasPending {
		return NewBond(pending, false)
	}
	currentAtom, _ := w.g.node(current)
	return NewBond(defaultBondKind(currentAtom, next), false)
}

// stripNoBondEdges removes every edge whose bond kind is NoBond, the
// final step of every successful decode (invariant 2).
func stripNoBondEdges(g *graph) {
	for i := range g.edges {
		e := g.edges[i]
		if e.alive && e.bond.IsNoBond() {
			g.removeEdge(EdgeID{index: i, gen: e.gen})
		}
	}
}
