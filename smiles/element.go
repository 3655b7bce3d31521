// Package smiles parses, edits, and re-serializes SMILES strings onto a
// directed-graph workspace.
package smiles

import "fmt"

// Element is a chemical element symbol, written exactly as it appears in
// canonical (non-aromatic) SMILES notation: "C", "Cl", "Fe", and so on.
type Element string

// The closed set of elements the tokenizer and atom parser recognize,
// hydrogen through radon.
const (
	ElementH  Element = "H"
	ElementHe Element = "He"
	ElementLi Element = "Li"
	ElementBe Element = "Be"
	ElementB  Element = "B"
	ElementC  Element = "C"
	ElementN  Element = "N"
	ElementO  Element = "O"
	ElementF  Element = "F"
	ElementNe Element = "Ne"
	ElementNa Element = "Na"
	ElementMg Element = "Mg"
	ElementAl Element = "Al"
	ElementSi Element = "Si"
	ElementP  Element = "P"
	ElementS  Element = "S"
	ElementCl Element = "Cl"
	ElementAr Element = "Ar"
	ElementK  Element = "K"
	ElementCa Element = "Ca"
	ElementSc Element = "Sc"
	ElementTi Element = "Ti"
	ElementV  Element = "V"
	ElementCr Element = "Cr"
	ElementMn Element = "Mn"
	ElementFe Element = "Fe"
	ElementCo Element = "Co"
	ElementNi Element = "Ni"
	ElementCu Element = "Cu"
	ElementZn Element = "Zn"
	ElementGa Element = "Ga"
	ElementGe Element = "Ge"
	ElementAs Element = "As"
	ElementSe Element = "Se"
	ElementBr Element = "Br"
	ElementKr Element = "Kr"
	ElementRb Element = "Rb"
	ElementSr Element = "Sr"
	ElementY  Element = "Y"
	ElementZr Element = "Zr"
	ElementNb Element = "Nb"
	ElementMo Element = "Mo"
	ElementTc Element = "Tc"
	ElementRu Element = "Ru"
	ElementRh Element = "Rh"
	ElementPd Element = "Pd"
	ElementAg Element = "Ag"
	ElementCd Element = "Cd"
	ElementIn Element = "In"
	ElementSn Element = "Sn"
	ElementSb Element = "Sb"
	ElementTe Element = "Te"
	ElementI  Element = "I"
	ElementXe Element = "Xe"
	ElementCs Element = "Cs"
	ElementBa Element = "Ba"
	ElementLa Element = "La"
	ElementCe Element = "Ce"
	ElementPr Element = "Pr"
	ElementNd Element = "Nd"
	ElementPm Element = "Pm"
	ElementSm Element = "Sm"
	ElementEu Element = "Eu"
	ElementGd Element = "Gd"
	ElementTb Element = "Tb"
	ElementDy Element = "Dy"
	ElementHo Element = "Ho"
	ElementEr Element = "Er"
	ElementTm Element = "Tm"
	ElementYb Element = "Yb"
	ElementLu Element = "Lu"
	ElementHf Element = "Hf"
	ElementTa Element = "Ta"
	ElementW  Element = "W"
	ElementRe Element = "Re"
	ElementOs Element = "Os"
	ElementIr Element = "Ir"
	ElementPt Element = "Pt"
	ElementAu Element = "Au"
	ElementHg Element = "Hg"
	ElementTl Element = "Tl"
	ElementPb Element = "Pb"
	ElementBi Element = "Bi"
	ElementPo Element = "Po"
	ElementAt Element = "At"
	ElementRn Element = "Rn"
)

var knownElements = map[Element]bool{
	ElementH: true, ElementHe: true, ElementLi: true, ElementBe: true, ElementB: true,
	ElementC: true, ElementN: true, ElementO: true, ElementF: true, ElementNe: true,
	ElementNa: true, ElementMg: true, ElementAl: true, ElementSi: true, ElementP: true,
	ElementS: true, ElementCl: true, ElementAr: true, ElementK: true, ElementCa: true,
	ElementSc: true, ElementTi: true, ElementV: true, ElementCr: true, ElementMn: true,
	ElementFe: true, ElementCo: true, ElementNi: true, ElementCu: true, ElementZn: true,
	ElementGa: true, ElementGe: true, ElementAs: true, ElementSe: true, ElementBr: true,
	ElementKr: true, ElementRb: true, ElementSr: true, ElementY: true, ElementZr: true,
	ElementNb: true, ElementMo: true, ElementTc: true, ElementRu: true, ElementRh: true,
	ElementPd: true, ElementAg: true, ElementCd: true, ElementIn: true, ElementSn: true,
	ElementSb: true, ElementTe: true, ElementI: true, ElementXe: true, ElementCs: true,
	ElementBa: true, ElementLa: true, ElementCe: true, ElementPr: true, ElementNd: true,
	ElementPm: true, ElementSm: true, ElementEu: true, ElementGd: true, ElementTb: true,
	ElementDy: true, ElementHo: true, ElementEr: true, ElementTm: true, ElementYb: true,
	ElementLu: true, ElementHf: true, ElementTa: true, ElementW: true, ElementRe: true,
	ElementOs: true, ElementIr: true, ElementPt: true, ElementAu: true, ElementHg: true,
	ElementTl: true, ElementPb: true, ElementBi: true, ElementPo: true, ElementAt: true,
	ElementRn: true,
}

// ParseElement validates a capitalized element symbol.
func ParseElement(symbol string) (Element, error) {
	el := Element(symbol)
	if !knownElements[el] {
		return "", fmt.Errorf("smiles: unknown element symbol %q", symbol)
	}
	return el, nil
}

// DefaultHydrogen returns the implicit-hydrogen table value used by
// AddHydrogenToAtom when an atom has no explicit hydrogen count.
func (e Element) DefaultHydrogen() int {
	switch e {
	case ElementF, ElementCl, ElementBr, ElementI:
		return 1
	case ElementO, ElementS:
		return 2
	case ElementB, ElementN, ElementP:
		return 3
	case ElementC, ElementSi:
		return 4
	default:
		return 0
	}
}

// IsOrganicSubset reports whether the element may be written without
// brackets in the organic subset shorthand.
func (e Element) IsOrganicSubset() bool {
	switch e {
	case ElementB, ElementC, ElementN, ElementO, ElementF, ElementP, ElementS, ElementCl, ElementBr, ElementI:
		return true
	default:
		return false
	}
}

// aromaticOrganicLower is the restricted set of elements that may be
// spelled lowercase to indicate aromaticity: b, c, n, o, p, s, br, cl, f, i.
var aromaticOrganicLower = map[string]Element{
	"b": ElementB, "c": ElementC, "n": ElementN, "o": ElementO, "p": ElementP,
	"s": ElementS, "br": ElementBr, "cl": ElementCl, "f": ElementF, "i": ElementI,
}
