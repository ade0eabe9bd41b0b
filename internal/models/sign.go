package models

import "fmt"

// Sign is a zodiac sign index, Aries = 0 through Pisces = 11.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signLords = [12]Planet{Mars, Venus, Mercury, Moon, Sun, Mercury, Venus, Mars, Jupiter, Saturn, Saturn, Jupiter}

// Element is the classical triplicity of a sign.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// MarshalText serialises a sign by name.
func (s Sign) MarshalText() ([]byte, error) {
	if s < Aries || s > Pisces {
		return nil, fmt.Errorf("invalid sign %d", int(s))
	}
	return []byte(signNames[s]), nil
}

// Lord returns the planet ruling the sign.
func (s Sign) Lord() Planet {
	return signLords[s.Norm()]
}

// Norm wraps any integer sign offset into [0, 11].
func (s Sign) Norm() Sign {
	return Sign(((int(s) % 12) + 12) % 12)
}

// Add advances the sign by n places around the zodiac.
func (s Sign) Add(n int) Sign {
	return Sign(int(s) + n).Norm()
}

// IsOdd reports whether the sign is odd under the 1-indexed convention
// (Aries is the 1st sign and therefore odd).
func (s Sign) IsOdd() bool {
	return s.Norm()%2 == 0
}

// Element returns the sign's triplicity.
func (s Sign) Element() Element {
	return Element(s.Norm() % 4)
}
