package smiles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTripsSimpleStructures(t *testing.T) {
	cases := []string{
		"CC",
		"CC(=O)O",
		"C=C",
		"C#N",
	}
	for _, smi := range cases {
		w := NewWorkspace()
		root, err := w.AddStructure(smi)
		require.NoError(t, err, "decoding %q", smi)

		out, ok := w.Encode(root)
		require.True(t, ok)

		w2 := NewWorkspace()
		root2, err := w2.AddStructure(out)
		require.NoErrorf(t, err, "re-decoding %q (from %q)", out, smi)

		atoms1, _ := w.GetAtomsOfStructure(root)
		atoms2, _ := w2.GetAtomsOfStructure(root2)
		require.Equal(t, len(atoms1), len(atoms2), "atom count mismatch round-tripping %q -> %q", smi, out)
	}
}

func TestEncodeRingProducesClosureDigit(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("C1CCCCC1")
	require.NoError(t, err)

	out, ok := w.Encode(root)
	require.True(t, ok)
	require.Contains(t, out, "1")
}

func TestEncodeHighRingNumberUsesPercent(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("C1CC2CC3CC4CC5CC6CC7CC8CC9CC%10CC1CC2CC3CC4CC5CC6CC7CC8CC9CC%10")
	require.NoError(t, err)

	out, ok := w.Encode(root)
	require.True(t, ok)
	require.Contains(t, out, "%10")
}

func TestEncodeUnknownNodeFails(t *testing.T) {
	w := NewWorkspace()
	_, ok := w.Encode(NodeID{})
	require.False(t, ok)
}

func TestEncodeAromaticRingElidesBondToken(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("c1ccccc1")
	require.NoError(t, err)

	out, ok := w.Encode(root)
	require.True(t, ok)
	require.NotContains(t, out, ":", "aromatic ring closure between two aromatic atoms must be implicit")
}

func TestEncodePlainCarbocycleElidesSingleBondToken(t *testing.T) {
	w := NewWorkspace()
	root, err := w.AddStructure("C1CCCCC1")
	require.NoError(t, err)

	out, ok := w.Encode(root)
	require.True(t, ok)
	require.NotContains(t, out, "-", "default single bond ring closure must be implicit")
}

// TestEncodeBridgeheadWrapsNonEmptyRingPrefixes builds a graph by hand
// (rather than decoding) so both ring-closing bonds on the bridgehead atom
// can be forced to a non-default type, exercising §4.7 point 3's
// parenthesization rule.
func TestEncodeBridgeheadWrapsNonEmptyRingPrefixes(t *testing.T) {
	w := NewWorkspace()
	bridge := w.g.addNode(Atom{Element: ElementC, ReactID: -1})
	a := w.g.addNode(Atom{Element: ElementC, ReactID: -1})
	b := w.g.addNode(Atom{Element: ElementC, ReactID: -1})

	w.g.addEdge(bridge, a, NewBond(BondSingle, false))
	w.g.addEdge(bridge, b, NewBond(BondSingle, false))
	w.g.addEdge(bridge, a, NewBond(BondDouble, true))
	w.g.addEdge(bridge, b, NewBond(BondTriple, true))

	out, ok := w.Encode(bridge)
	require.True(t, ok)
	require.Contains(t, out, "(=")
	require.Contains(t, out, "(#")
}
