package service

import (
	"math"

	g "vedic-backend/internal/geometry"
	"vedic-backend/internal/models"
)

// prefersOddSigns is true for planets strong in odd signs (Sun, Mars, Mercury,
// Jupiter, Saturn) and false for Moon and Venus.
var prefersOddSigns = map[models.Planet]bool{
	models.Sun: true, models.Mars: true, models.Mercury: true, models.Jupiter: true, models.Saturn: true,
	models.Moon: false, models.Venus: false,
}

// genderDecanate is the 10-degree decanate (0, 1, 2) favoured by the planet's gender:
// male first, hermaphrodite second, female third.
var genderDecanate = map[models.Planet]int{
	models.Sun: 0, models.Mars: 0, models.Jupiter: 0,
	models.Mercury: 1, models.Saturn: 1,
	models.Moon: 2, models.Venus: 2,
}

// DignityCalculator holds the auxiliary scoring rules: Yugmayugma, Kendra and Dreshkon.
type DignityCalculator struct {
	divisional *DivisionalCalculator
}

// NewDignityCalculator creates a new calculator
func NewDignityCalculator(dc *DivisionalCalculator) *DignityCalculator {
	return &DignityCalculator{divisional: dc}
}

// ParityMatches reports whether the sign's parity is the one p prefers.
func ParityMatches(p models.Planet, sign models.Sign) bool {
	return prefersOddSigns[p] == sign.IsOdd()
}

// Yugmayugma scores 15 for a preferred-parity rashi sign and 15 more for a
// preferred-parity navamsa sign.
func (dc *DignityCalculator) Yugmayugma(p models.Planet, lon float64) float64 {
	score := 0.0
	sign := models.Sign(g.SignIndex(lon))
	if ParityMatches(p, sign) {
		score += 15
	}
	if d9, err := dc.divisional.PlaceLongitude(9, lon); err == nil && ParityMatches(p, d9.Sign) {
		score += 15
	}
	return score
}

// Kendra scores 60 for angular, 30 for succedent and 15 for cadent houses.
func (dc *DignityCalculator) Kendra(lon float64, cusps [12]float64) float64 {
	switch g.HouseOf(lon, cusps) % 3 {
	case 1: // 1, 4, 7, 10
		return 60
	case 2: // 2, 5, 8, 11
		return 30
	default: // 3, 6, 9, 12
		return 15
	}
}

// Decanate returns 0, 1 or 2 for the 10-degree third of the sign.
func Decanate(lon float64) int {
	d := int(math.Floor(g.DegInSign(lon) / 10))
	if d > 2 {
		d = 2
	}
	return d
}

// Dreshkon scores 15 when the planet occupies the decanate of its gender.
func (dc *DignityCalculator) Dreshkon(p models.Planet, lon float64) float64 {
	want, ok := genderDecanate[p]
	if !ok || Decanate(lon) != want {
		return 0
	}
	return 15
}

// Calculate returns all three auxiliary scores for each classical planet.
func (dc *DignityCalculator) Calculate(positions map[models.Planet]models.SiderealPosition, cusps [12]float64) map[models.Planet]models.AuxiliaryDignity {
	out := make(map[models.Planet]models.AuxiliaryDignity, 7)
	for _, p := range models.ClassicalPlanets {
		pos, ok := positions[p]
		if !ok {
			continue
		}
		out[p] = models.AuxiliaryDignity{
			Yugmayugma: dc.Yugmayugma(p, pos.Longitude),
			Kendra:     dc.Kendra(pos.Longitude, cusps),
			Dreshkon:   dc.Dreshkon(p, pos.Longitude),
		}
	}
	return out
}
