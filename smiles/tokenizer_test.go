package smiles

import "testing"

func TestTokenizeBenzene(t *testing.T) {
	tokens := Tokenize("c1ccccc1")
	want := []string{"c", "1", "c", "c", "c", "c", "c", "1"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Fatalf("token %d: got %q, want %q", i, tok, want[i])
		}
	}
}

func TestTokenizeBracketAtom(t *testing.T) {
	tokens := Tokenize("[13cH-:2]")
	if len(tokens) != 1 {
		t.Fatalf("expected a single bracket token, got %v", tokens)
	}
	if tokens[0] != "[13cH-:2]" {
		t.Fatalf("got %q", tokens[0])
	}
}

func TestTokenizeQuadBond(t *testing.T) {
	tokens := Tokenize("C$C")
	want := []string{"C", "$", "C"}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Fatalf("token %d: got %q, want %q", i, tok, want[i])
		}
	}
}

func TestTokenizeHighRingNumber(t *testing.T) {
	tokens := Tokenize("C%12C")
	if len(tokens) != 3 || tokens[1] != "%12" {
		t.Fatalf("got %v", tokens)
	}
}

func TestParseRingTokenWithBond(t *testing.T) {
	bond, hasBond, id, ok := parseRingToken("=1")
	if !ok || !hasBond || bond != BondDouble || id != 1 {
		t.Fatalf("got bond=%v hasBond=%v id=%v ok=%v", bond, hasBond, id, ok)
	}
}

func TestParseRingTokenBare(t *testing.T) {
	_, hasBond, id, ok := parseRingToken("%42")
	if !ok || hasBond {
		t.Fatalf("unexpected result for bare ring token")
	}
	if id != 42 {
		t.Fatalf("got id %d, want 42", id)
	}
}
