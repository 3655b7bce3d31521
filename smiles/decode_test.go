package smiles

import "testing"

func TestAddStructureSimpleChain(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("CC(=O)O")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	atoms, ok := w.GetAtomsOfStructure(root)
	if !ok || len(atoms) != 4 {
		t.Fatalf("expected 4 atoms, got %d (ok=%v)", len(atoms), ok)
	}
}

func TestAddStructureRing(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("c1ccccc1")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	atoms, _ := w.GetAtomsOfStructure(root)
	if len(atoms) != 6 {
		t.Fatalf("expected 6 atoms, got %d", len(atoms))
	}
	ringBonds := 0
	for _, a := range atoms {
		for _, nb := range w.OutgoingNeighbors(a) {
			if b, _, ok := w.Bond(a, nb); ok && b.Ring {
				ringBonds++
			}
		}
	}
	if ringBonds != 1 {
		t.Fatalf("expected exactly one ring-closing edge, got %d", ringBonds)
	}
}

func TestAddStructureDisconnected(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("[I-].[Na+].C=CCBr")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	roots := w.FindStructureRoots()
	if len(roots) != 3 {
		t.Fatalf("expected 3 disconnected structures, got %d", len(roots))
	}
	atoms, _ := w.GetAtomsOfStructure(root)
	if len(atoms) != 1 {
		t.Fatalf("expected [I-] alone to be a single-atom structure, got %d", len(atoms))
	}
}

func TestAddStructureSelectorAtom(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("[P{selected}](c1ccccc1)(c2ccccc2)CC")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	atom, ok := w.Atom(root)
	if !ok || atom.Selector == nil || *atom.Selector != "selected" {
		t.Fatalf("got %+v ok=%v", atom, ok)
	}
}

func TestAddStructureBranchLeftOpen(t *testing.T) {
	w := NewWorkspace()
	_, err := w.AddStructure("CC(C")
	if err == nil {
		t.Fatalf("expected an error for an unclosed branch")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != DecodeBranchLeftOpen {
		t.Fatalf("got %v", err)
	}
}

func TestAddStructureBranchUnderflow(t *testing.T) {
	w := NewWorkspace()
	_, err := w.AddStructure("CC)C")
	if err == nil {
		t.Fatalf("expected an error for an unmatched ')'")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != DecodeBranchUnderflow {
		t.Fatalf("got %v", err)
	}
}

func TestAddStructureRingUnclosed(t *testing.T) {
	w := NewWorkspace()
	_, err := w.AddStructure("C1CC")
	if err == nil {
		t.Fatalf("expected an error for an unclosed ring")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != DecodeRingUnclosed || len(de.PendingRings) != 1 || de.PendingRings[0] != 1 {
		t.Fatalf("got %+v", err)
	}
}

func TestAddStructureRingBondMismatch(t *testing.T) {
	w := NewWorkspace()
	_, err := w.AddStructure("C=1CCCCC-1")
	if err == nil {
		t.Fatalf("expected a ring bond mismatch error")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != DecodeRingBondMismatch {
		t.Fatalf("got %v", err)
	}
}

func TestAddStructureRollsBackOnError(t *testing.T) {
	w := NewWorkspace()
	if _, err := w.AddStructure("CC(C"); err == nil {
		t.Fatalf("expected failure")
	}
	if roots := w.FindStructureRoots(); len(roots) != 0 {
		t.Fatalf("expected no structure to remain after a failed decode, got %d", len(roots))
	}
}

func TestAddStructureIsAdditive(t *testing.T) {
	w := NewWorkspace()
	if _, err := w.AddStructure("CC"); err != nil {
		t.Fatalf("first decode failed: %v", err)
	}
	if _, err := w.AddStructure("O"); err != nil {
		t.Fatalf("second decode failed: %v", err)
	}
	if roots := w.FindStructureRoots(); len(roots) != 2 {
		t.Fatalf("expected 2 structures, got %d", len(roots))
	}
}
