package smiles

import "testing"

func TestResetRootReEncodesFromNewRoot(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("C1CCCCC1")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	atoms, _ := w.GetAtomsOfStructure(root)
	other := atoms[3]

	if ok := w.ResetRoot(other); !ok {
		t.Fatalf("ResetRoot failed")
	}

	newRoot, ok := w.FindRootOf(other)
	if !ok || newRoot != other {
		t.Fatalf("expected %v to be the new root, got %v", other, newRoot)
	}

	out, ok := w.Encode(other)
	if !ok {
		t.Fatalf("encode failed")
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty re-encoding")
	}
}

func TestResetRootPreservesRingEdges(t *testing.T) {
	w := NewWorkspace()
	root, _ := w.AddStructure("C1CCCCC1")
	atoms, _ := w.GetAtomsOfStructure(root)

	ringEdgesBefore := countRingEdges(w, atoms)
	w.ResetRoot(atoms[2])
	ringEdgesAfter := countRingEdges(w, atoms)

	if ringEdgesBefore != ringEdgesAfter || ringEdgesBefore != 1 {
		t.Fatalf("expected ring edge count to stay 1, got before=%d after=%d", ringEdgesBefore, ringEdgesAfter)
	}
}

func countRingEdges(w *Workspace, atoms []NodeID) int {
	seen := map[EdgeID]bool{}
	count := 0
	for _, a := range atoms {
		for _, e := range append(w.g.outgoing(a), w.g.incoming(a)...) {
			if seen[e] {
				continue
			}
			seen[e] = true
			if b, ok := w.g.edge(e); ok && b.Ring {
				count++
			}
		}
	}
	return count
}

func TestAddHydrogenToAtom(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("C")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	hydrogens, ok := w.AddHydrogenToAtom(root)
	if !ok || len(hydrogens) != 4 {
		t.Fatalf("expected 4 hydrogens on methane carbon, got %d (ok=%v)", len(hydrogens), ok)
	}
	for _, h := range hydrogens {
		atom, _ := w.Atom(h)
		if atom.Element != ElementH {
			t.Fatalf("expected hydrogen atom, got %+v", atom)
		}
	}
}

func TestAddHydrogenToStructureThenRemove(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("CC")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if ok := w.AddHydrogenToStructure(root); !ok {
		t.Fatalf("AddHydrogenToStructure failed")
	}
	atoms, _ := w.GetAtomsOfStructure(root)
	if len(atoms) != 8 {
		t.Fatalf("expected 2 carbons + 6 hydrogens = 8 atoms, got %d", len(atoms))
	}

	w.RemoveHydrogens()
	atoms, _ = w.GetAtomsOfStructure(root)
	if len(atoms) != 2 {
		t.Fatalf("expected hydrogens removed, got %d atoms", len(atoms))
	}
}

func TestConnectAcrossStructures(t *testing.T) {
	w := NewWorkspace()
	a, err := w.AddStructure("C")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	b, err := w.AddStructure("O")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if _, ok := w.Connect(a, b, BondSingle); !ok {
		t.Fatalf("Connect failed")
	}
	if !w.InSameStructure([]NodeID{a, b}) {
		t.Fatalf("expected a and b to share a structure after Connect")
	}
}
