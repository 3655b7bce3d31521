package smiles

import (
	"regexp"
	"strconv"
	"strings"
)

// Atom is a single node's parsed attributes, as produced by decoding one
// atom token and as required to serialize it back out again.
type Atom struct {
	Element          Element
	Isotope          int // mass number; 0 means no isotope was written
	Charge           int
	Chirality        Chirality
	ExplicitHydrogen int // H-count as written in brackets; 0 for shorthand atoms
	Aromatic         bool
	ReactID          int     // atom-map number after ':'; -1 means absent
	Selector         *string // {...} payload; nil means absent
}

// ParseAtom parses a single atom token (bracket or organic-subset form)
// into an Atom. ok is false if tok matches neither shape, signaling the
// caller (the decoder) to try a different token class.
func ParseAtom(tok string) (Atom, bool) {
	if m := bracketAtomRe.FindStringSubmatch(tok); m != nil {
		return atomFromBracketMatch(bracketAtomRe, m)
	}
	if m := organicAtomRe.FindStringSubmatch(tok); m != nil {
		return atomFromOrganicMatch(organicAtomRe, m)
	}
	return Atom{}, false
}

func elementAndAromaticity(raw string) (Element, bool, bool) {
	if el, aromatic := aromaticOrganicLower[raw]; aromatic {
		return el, true, true
	}
	capitalized := strings.ToUpper(raw[:1]) + raw[1:]
	el, err := ParseElement(capitalized)
	if err != nil {
		return "", false, false
	}
	return el, false, true
}

func atomFromOrganicMatch(re *regexp.Regexp, m []string) (Atom, bool) {
	element := m[re.SubexpIndex("element")]
	chiralityStr := m[re.SubexpIndex("chirality")]
	el, aromatic, ok := elementAndAromaticity(element)
	if !ok {
		return Atom{}, false
	}
	chirality, ok := parseChirality(chiralityStr)
	if !ok {
		return Atom{}, false
	}
	return Atom{
		Element:   el,
		Chirality: chirality,
		Aromatic:  aromatic,
		ReactID:   -1,
	}, true
}

func atomFromBracketMatch(re *regexp.Regexp, m []string) (Atom, bool) {
	element := m[re.SubexpIndex("element")]
	chiralityStr := m[re.SubexpIndex("chirality")]
	el, aromatic, ok := elementAndAromaticity(element)
	if !ok {
		return Atom{}, false
	}
	chirality, ok := parseChirality(chiralityStr)
	if !ok {
		return Atom{}, false
	}

	isotope := 0
	if iso := m[re.SubexpIndex("isotope")]; iso != "" {
		isotope, _ = strconv.Atoi(iso)
	}

	explicitHydrogen := 0
	if hspec := m[re.SubexpIndex("hspec")]; hspec != "" {
		if hspec == "H" {
			explicitHydrogen = 1
		} else {
			explicitHydrogen, _ = strconv.Atoi(hspec[1:])
		}
	}

	charge := 0
	if chargeNum := m[re.SubexpIndex("chargenum")]; chargeNum != "" {
		charge, _ = strconv.Atoi(chargeNum)
	} else if chargeRun := m[re.SubexpIndex("chargerun")]; chargeRun != "" {
		sign := 1
		if chargeRun[0] == '-' {
			sign = -1
		}
		charge = sign * len(chargeRun)
	}

	reactID := -1
	if rid := m[re.SubexpIndex("reactid")]; rid != "" {
		reactID, _ = strconv.Atoi(rid)
	}

	var selector *string
	if sel := m[re.SubexpIndex("selector")]; sel != "" {
		s := sel
		selector = &s
	}

	return Atom{
		Element:          el,
		Isotope:          isotope,
		Charge:           charge,
		Chirality:        chirality,
		ExplicitHydrogen: explicitHydrogen,
		Aromatic:         aromatic,
		ReactID:          reactID,
		Selector:         selector,
	}, true
}

// Token renders the atom back to a SMILES atom token. The short,
// bracket-free form is used exactly when the element is in the organic
// subset and every bracket-only field (isotope, charge, explicit
// hydrogen, react id, selector) is at its default.
func (a Atom) Token() string {
	if a.Element.IsOrganicSubset() && a.Isotope == 0 && a.Charge == 0 &&
		a.ExplicitHydrogen == 0 && a.Selector == nil && a.ReactID < 0 {
		return a.coreToken()
	}

	var b strings.Builder
	b.WriteByte('[')
	if a.Isotope != 0 {
		b.WriteString(strconv.Itoa(a.Isotope))
	}
	b.WriteString(a.coreToken())
	if a.ExplicitHydrogen != 0 {
		b.WriteByte('H')
		if a.ExplicitHydrogen > 1 {
			b.WriteString(strconv.Itoa(a.ExplicitHydrogen))
		}
	}
	b.WriteString(a.chargeToken())
	if a.ReactID >= 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(a.ReactID))
	}
	if a.Selector != nil {
		b.WriteByte('{')
		b.WriteString(*a.Selector)
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return b.String()
}

func (a Atom) coreToken() string {
	symbol := string(a.Element)
	if a.Aromatic && a.Element.IsOrganicSubset() {
		symbol = strings.ToLower(symbol)
	}
	return symbol + a.Chirality.token()
}

func (a Atom) chargeToken() string {
	if a.Charge == 0 {
		return ""
	}
	sign := "+"
	if a.Charge < 0 {
		sign = "-"
	}
	magnitude := a.Charge
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude > 1 {
		return sign + strconv.Itoa(magnitude)
	}
	return sign
}
