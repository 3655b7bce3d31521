package smiles

import "regexp"

// tokenGrammar is the combined regular-expression surface of SMILES (plus
// the proprietary {selector} bracket-atom extension): bracket atoms,
// organic-subset shorthand atoms, branch parens, the disconnection dot,
// ring-bond references, and bare bond characters, tried in that order at
// every position so the longest, most specific alternative wins.
var tokenGrammar = regexp.MustCompile(
	`\[([1-9][0-9]*)?((?:br?|cl?|n|o|p|s|f|i)|(?:[A-Z][a-z]?))(@{0,2})(H(?:[1-9][0-9]*)?)?((?:[+-][1-9][0-9]*)|[+-]*)(:[0-9]+)?(\{[^}]+\})?\]` +
		`|(?:(?:br?|cl?|n|o|p|s|f|i)|(?:Br?|Cl?|N|O|P|S|F|I))(?:@{0,2})` +
		`|\(|\)|\.` +
		`|(?:[-=#$:/\\])?(?:[1-9]|%[1-9][0-9]+)` +
		`|[-=#$:/\\]`,
)

// TokenStream scans a SMILES string into tokens one at a time, skipping
// over any characters that match no grammar alternative. It is a
// pull-based iterator rather than an eagerly materialized slice, so very
// long inputs can be decoded without holding every token in memory at
// once.
type TokenStream struct {
	input string
	pos   int
}

// NewTokenStream prepares a lazy tokenizer over smiles.
func NewTokenStream(smiles string) *TokenStream {
	return &TokenStream{input: smiles}
}

// Next returns the next token and true, or ("", false) once the input is
// exhausted.
func (t *TokenStream) Next() (string, bool) {
	if t.pos >= len(t.input) {
		return "", false
	}
	loc := tokenGrammar.FindStringIndex(t.input[t.pos:])
	if loc == nil {
		t.pos = len(t.input)
		return "", false
	}
	start, end := t.pos+loc[0], t.pos+loc[1]
	t.pos = end
	return t.input[start:end], true
}

// Tokenize drains a TokenStream into a slice, for callers that don't need
// incremental consumption.
func Tokenize(smiles string) []string {
	stream := NewTokenStream(smiles)
	var tokens []string
	for {
		tok, ok := stream.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

var (
	branchOpenToken  = "("
	branchCloseToken = ")"
	noBondToken      = "."
)

func isBranchOpen(tok string) bool  { return tok == branchOpenToken }
func isBranchClose(tok string) bool { return tok == branchCloseToken }
func isNoBondToken(tok string) bool { return tok == noBondToken }

// bracketAtomRe decomposes a single bracket-atom token into its named
// fields, per §4.1 point 1.
var bracketAtomRe = regexp.MustCompile(
	`^\[(?P<isotope>[1-9][0-9]*)?(?P<element>(?:br?|cl?|n|o|p|s|f|i)|(?:[A-Z][a-z]?))(?P<chirality>@{0,2})(?P<hspec>H(?:[1-9][0-9]*)?)?(?:(?P<chargenum>[+-][1-9][0-9]*)|(?P<chargerun>[+-]*))(?::(?P<reactid>[0-9]+))?(?:\{(?P<selector>[^}]+)\})?\]$`,
)

// organicAtomRe decomposes a single organic-subset shorthand token, per
// §4.1 point 2.
var organicAtomRe = regexp.MustCompile(
	`^(?P<element>(?:br?|cl?|n|o|p|s|f|i)|(?:Br?|Cl?|N|O|P|S|F|I))(?P<chirality>@{0,2})$`,
)

var ringBondRe = regexp.MustCompile(`^(?:(?P<bond>[-=#$:/\\]))?(?P<ringid>[1-9]|%[1-9][0-9]+)$`)

// parseRingToken recognizes a ring-bond reference token: an optional bond
// character followed by a bare digit 1-9 or a %-prefixed two-or-more
// digit number. ok is false if tok is not a ring reference at all.
func parseRingToken(tok string) (bond BondType, hasBond bool, ringID int, ok bool) {
	m := ringBondRe.FindStringSubmatch(tok)
	if m == nil {
		return 0, false, 0, false
	}
	idx := ringBondRe.SubexpIndex("bond")
	if bondStr := m[idx]; bondStr != "" {
		bt, bok := bondTypeFromToken(bondStr)
		if !bok {
			return 0, false, 0, false
		}
		bond, hasBond = bt, true
	}
	ringIDStr := m[ringBondRe.SubexpIndex("ringid")]
	id := 0
	for i := 0; i < len(ringIDStr); i++ {
		c := ringIDStr[i]
		if c < '0' || c > '9' {
			continue
		}
		id = id*10 + int(c-'0')
	}
	return bond, hasBond, id, true
}
