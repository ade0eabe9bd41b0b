package ephemeris

import "strings"

// HouseSystem selects how the twelve cusps are constructed.
type HouseSystem string

const (
	Equal         HouseSystem = "equal"
	Placidus      HouseSystem = "placidus"
	Koch          HouseSystem = "koch"
	Porphyry      HouseSystem = "porphyry"
	Regiomontanus HouseSystem = "regiomontanus"
	Campanus      HouseSystem = "campanus"
	WholeSign     HouseSystem = "whole-sign"
)

// NodeModel selects the mean or the true (osculating) lunar node.
type NodeModel string

const (
	MeanNode NodeModel = "mean"
	TrueNode NodeModel = "true"
)

// Ayanamsa names the sidereal reference. Only Lahiri is implemented.
type Ayanamsa string

const Lahiri Ayanamsa = "lahiri"

var houseAliases = map[string]HouseSystem{
	"equal":         Equal,
	"e":             Equal,
	"placidus":      Placidus,
	"p":             Placidus,
	"koch":          Koch,
	"k":             Koch,
	"porphyry":      Porphyry,
	"porphyrius":    Porphyry,
	"o":             Porphyry,
	"regiomontanus": Regiomontanus,
	"r":             Regiomontanus,
	"campanus":      Campanus,
	"c":             Campanus,
	"whole":         WholeSign,
	"w":             WholeSign,
	"whole_sign":    WholeSign,
	"whole-sign":    WholeSign,
	"wholesign":     WholeSign,
	"whole sign":    WholeSign,
}

// ParseHouseSystem accepts the usual spellings case-insensitively; anything else is Equal.
func ParseHouseSystem(s string) HouseSystem {
	if hs, ok := houseAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return hs
	}
	return Equal
}

// ParseNodeModel accepts "mean"/"m" and "true"/"t"; anything else is the mean node.
func ParseNodeModel(s string) NodeModel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "osculating":
		return TrueNode
	default:
		return MeanNode
	}
}

// ParseAyanamsa maps every name to Lahiri; "kp" and "krishnamurti" are accepted aliases.
func ParseAyanamsa(string) Ayanamsa {
	return Lahiri
}
