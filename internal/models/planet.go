package models

import "fmt"

// Planet identifies one of the nine Vedic grahas.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu

	// Lagna is the ascendant treated as a pseudo-body in divisional charts.
	// It is not part of AllPlanets or ClassicalPlanets.
	Lagna
)

// ClassicalPlanets are the seven visible planets used by the dignity and strength calculators.
var ClassicalPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// AllPlanets are the classical seven plus the lunar nodes, in chart order.
var AllPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

var planetNames = [...]string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu", "Lagna"}
var planetAbbr = [...]string{"Su", "Mo", "Ma", "Me", "Ju", "Ve", "Sa", "Ra", "Ke", "La"}

func (p Planet) String() string {
	if p < Sun || p > Lagna {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetNames[p]
}

// Abbr returns the two-letter chart abbreviation.
func (p Planet) Abbr() string {
	if p < Sun || p > Lagna {
		return "??"
	}
	return planetAbbr[p]
}

// IsClassical reports whether p is one of the seven visible planets.
func (p Planet) IsClassical() bool {
	return p >= Sun && p <= Saturn
}

// MarshalText lets planets serialise by name, including as JSON map keys.
func (p Planet) MarshalText() ([]byte, error) {
	if p < Sun || p > Lagna {
		return nil, fmt.Errorf("invalid planet %d", int(p))
	}
	return []byte(planetNames[p]), nil
}

// UnmarshalText parses a planet name.
func (p *Planet) UnmarshalText(b []byte) error {
	parsed, err := ParsePlanet(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePlanet resolves a planet from its name or abbreviation.
func ParsePlanet(s string) (Planet, error) {
	for i, name := range planetNames {
		if s == name || s == planetAbbr[i] {
			return Planet(i), nil
		}
	}
	return 0, fmt.Errorf("unknown planet %q", s)
}
