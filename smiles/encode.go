package smiles

import (
	"strconv"
	"strings"
)

// Encode serializes n's entire structure to a SMILES string, starting
// from n's structure root regardless of which atom n itself is.
//
// Ring-closure numbers are assigned in the order their first endpoint is
// visited, starting at 1 and reusing a number as soon as its ring has been
// closed; numbers 10 and above are written with a leading '%'.
func (w *Workspace) Encode(n NodeID) (string, bool) {
	root, ok := w.FindRootOf(n)
	if !ok {
		return "", false
	}
	g := &smilesGenerator{w: w, ringNumbers: map[EdgeID]int{}}
	g.writeAtom(root)
	return g.out.String(), true
}

// smilesGenerator accumulates SMILES text for one structure by walking the
// non-ring edges depth-first and interleaving ring-closure digits at each
// endpoint of a ring edge.
type smilesGenerator struct {
	w           *Workspace
	out         strings.Builder
	ringNumbers map[EdgeID]int
	nextRingNum int
	freeRingNum []int
}

func (g *smilesGenerator) allocRingNum() int {
	if n := len(g.freeRingNum); n > 0 {
		num := g.freeRingNum[n-1]
		g.freeRingNum = g.freeRingNum[:n-1]
		return num
	}
	g.nextRingNum++
	return g.nextRingNum
}

func (g *smilesGenerator) releaseRingNum(num int) {
	g.freeRingNum = append(g.freeRingNum, num)
}

func ringNumToken(num int) string {
	if num >= 10 {
		return "%" + strconv.Itoa(num)
	}
	return strconv.Itoa(num)
}

// bondPrefix returns the text written immediately before an atom token for
// the bond connecting it to its predecessor, eliding the default single
// and aromatic-on-aromatic bonds per §4.7.
func bondPrefix(b Bond, fromAromatic, toAromatic bool) string {
	switch b.Type {
	case BondSingle:
		return ""
	case BondAromatic:
		if fromAromatic && toAromatic {
			return ""
		}
		return b.Type.Token()
	default:
		return b.Type.Token()
	}
}

// writeAtom emits the atom at id and everything reachable from it via
// non-ring outgoing edges. The bond connecting id to its caller, if any,
// has already been written by the caller before this is invoked.
func (g *smilesGenerator) writeAtom(id NodeID) {
	atom, ok := g.w.g.node(id)
	if !ok {
		return
	}

	g.out.WriteString(atom.Token())

	ringEdges := g.collectRingEdges(id)
	prefixes := make([]string, len(ringEdges))
	nonEmpty := 0
	for i, e := range ringEdges {
		b, _ := g.w.g.edge(e)
		other := g.w.g.other(e, id)
		otherAtom, _ := g.w.g.node(other)
		prefixes[i] = bondPrefix(b, atom.Aromatic, otherAtom.Aromatic)
		if prefixes[i] != "" {
			nonEmpty++
		}
	}
	for i, e := range ringEdges {
		prefix := prefixes[i]
		wrap := nonEmpty > 1 && prefix != ""

		if wrap {
			g.out.WriteByte('(')
		}
		if num, open := g.ringNumbers[e]; open {
			g.out.WriteString(prefix)
			g.out.WriteString(ringNumToken(num))
			g.releaseRingNum(num)
			delete(g.ringNumbers, e)
		} else {
			num := g.allocRingNum()
			g.ringNumbers[e] = num
			g.out.WriteString(prefix)
			g.out.WriteString(ringNumToken(num))
		}
		if wrap {
			g.out.WriteByte(')')
		}
	}

	children := g.collectChildren(id)
	for i, c := range children {
		last := i == len(children)-1
		if !last {
			g.out.WriteByte('(')
		}
		b, _ := g.w.g.edge(c.edge)
		prefix := bondPrefix(b, atom.Aromatic, c.atom.Aromatic)
		g.out.WriteString(prefix)
		g.writeAtom(c.id)
		if !last {
			g.out.WriteByte(')')
		}
	}
}

type childRef struct {
	edge EdgeID
	id   NodeID
	atom Atom
}

// collectChildren returns id's non-ring outgoing edges in insertion order,
// without reordering them. writeAtom parenthesizes every child but the
// last, so the last-inserted child continues the main chain.
func (g *smilesGenerator) collectChildren(id NodeID) []childRef {
	var out []childRef
	for _, e := range g.w.g.outgoing(id) {
		b, ok := g.w.g.edge(e)
		if !ok || b.Ring {
			continue
		}
		to := g.w.g.other(e, id)
		atom, _ := g.w.g.node(to)
		out = append(out, childRef{edge: e, id: to, atom: atom})
	}
	return out
}

// collectRingEdges returns every ring edge touching id, outgoing edges
// first and then incoming ones, each group in insertion order, combining
// both directions since a ring edge's direction carries
// no semantic weight once decoded.
func (g *smilesGenerator) collectRingEdges(id NodeID) []EdgeID {
	var out []EdgeID
	for _, e := range g.w.g.undirected(id) {
		b, ok := g.w.g.edge(e)
		if ok && b.Ring {
			out = append(out, e)
		}
	}
	return dedupEdges(out)
}

func dedupEdges(edges []EdgeID) []EdgeID {
	seen := map[EdgeID]bool{}
	var out []EdgeID
	for _, e := range edges {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}
