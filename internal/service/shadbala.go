package service

import (
	"math"

	g "vedic-backend/internal/geometry"
	"vedic-backend/internal/models"
)

// Strength categories, strongest first.
const (
	CategoryExcellent = "Excellent"
	CategoryStrong    = "Strong"
	CategoryGood      = "Good"
	CategoryAverage   = "Average"
	CategoryWeak      = "Weak"
)

const (
	sthanaCap = 120.0
	digCap    = 60.0
	uchchaCap = 60.0
	drikBase  = 15.0
	drikMax   = 30.0
)

// powerlessCusp is the index of the cusp at which each planet has no directional strength.
var powerlessCusp = map[models.Planet]int{
	models.Jupiter: 6, models.Mercury: 6, // 7th
	models.Sun: 3, models.Mars: 3, // 4th
	models.Saturn: 0, // 1st
	models.Moon: 9, models.Venus: 9, // 10th
}

// ShadbalaInput is the classified chart the aggregator scores.
type ShadbalaInput struct {
	Positions map[models.Planet]models.SiderealPosition
	Cusps     [12]float64
	// Saptavargiya replaces the simplified own-sign bonus when present.
	Saptavargiya map[models.Planet]models.SaptavargiyaResult
	Kala         KalaInput
}

// ShadbalaCalculator aggregates the six strengths per planet.
type ShadbalaCalculator struct {
	kala *KalaCalculator
}

// NewShadbalaCalculator creates a new calculator
func NewShadbalaCalculator(kc *KalaCalculator) *ShadbalaCalculator {
	return &ShadbalaCalculator{kala: kc}
}

// Calculate scores every classical planet present in the input.
func (sc *ShadbalaCalculator) Calculate(in ShadbalaInput) map[models.Planet]models.ShadbalaResult {
	ctx := sc.kala.Context(in.Kala)
	out := make(map[models.Planet]models.ShadbalaResult, 7)
	for _, p := range models.ClassicalPlanets {
		pos, ok := in.Positions[p]
		if !ok {
			continue
		}
		sthana := sc.Sthana(p, pos, in.Cusps, in.Saptavargiya)
		kala := sc.kala.Breakdown(ctx, p, pos.Longitude)
		comp := models.ShadbalaComponents{
			Sthana:     math.Min(sthana.Uncapped, sthanaCap),
			Dig:        sc.Dig(p, pos.Longitude, in.Cusps),
			Kala:       kala.Sum(),
			Chesta:     chestaBala[p],
			Naisargika: naisargikaBala[p],
			Drik:       sc.Drik(p, in.Positions),
		}
		out[p] = Classify(p, comp, sthana, kala)
	}
	return out
}

// Sthana returns the positional breakdown; the caller caps Uncapped at 120.
func (sc *ShadbalaCalculator) Sthana(p models.Planet, pos models.SiderealPosition, cusps [12]float64, sapta map[models.Planet]models.SaptavargiyaResult) models.SthanaBreakdown {
	b := models.SthanaBreakdown{
		Uchcha: math.Min(g.Distance(pos.Longitude, debilitationPoint(p))/3, uchchaCap),
	}
	if res, ok := sapta[p]; ok {
		b.Vargiya = res.Total
		b.Detailed = true
	} else if isOwnSign(p, pos.Sign) {
		b.Vargiya = 20
	} else {
		b.Vargiya = 10
	}
	if ParityMatches(p, pos.Sign) {
		b.OjaYugma = 15
	}
	switch g.HouseOf(pos.Longitude, cusps) % 3 {
	case 1:
		b.Kendradi = 30
	case 2:
		b.Kendradi = 15
	default:
		b.Kendradi = 5
	}
	b.Drekkana = [3]float64{15, 10, 5}[Decanate(pos.Longitude)]
	b.Uncapped = b.Uchcha + b.Vargiya + b.OjaYugma + b.Kendradi + b.Drekkana
	return b
}

// Dig is the shorter-arc distance from the planet's powerless cusp, divided by three.
func (sc *ShadbalaCalculator) Dig(p models.Planet, lon float64, cusps [12]float64) float64 {
	i, ok := powerlessCusp[p]
	if !ok {
		return 0
	}
	return math.Min(g.Distance(lon, cusps[i])/3, digCap)
}

// Drik adjusts a base of 15 by the aspects other classical planets cast on p.
func (sc *ShadbalaCalculator) Drik(p models.Planet, positions map[models.Planet]models.SiderealPosition) float64 {
	self, ok := positions[p]
	if !ok {
		return drikBase
	}
	score := drikBase
	for _, other := range models.ClassicalPlanets {
		if other == p {
			continue
		}
		pos, ok := positions[other]
		if !ok {
			continue
		}
		d := g.Distance(self.Longitude, pos.Longitude)
		switch {
		case d <= 8:
			if other == models.Jupiter || other == models.Venus {
				score += 5
			} else {
				score -= 5
			}
		case d >= 112 && d <= 128:
			score += 3
		case d >= 172 && d <= 188:
			score -= 2
		case d >= 82 && d <= 98:
			score--
		}
	}
	return math.Max(0, math.Min(drikMax, score))
}

// Classify totals the components and grades them against the planet's required strength.
func Classify(p models.Planet, comp models.ShadbalaComponents, sthana models.SthanaBreakdown, kala models.KalaBreakdown) models.ShadbalaResult {
	total := comp.Sum()
	required := requiredStrength[p]
	ratio := total / required
	return models.ShadbalaResult{
		Total:              total,
		Rupas:              total / 60,
		RequiredStrength:   required,
		StrengthPercentage: math.Max(0, math.Min(100, ratio*100)),
		Category:           Category(ratio),
		Components:         comp,
		Sthana:             sthana,
		Kala:               kala,
	}
}

// Category grades total/required.
func Category(ratio float64) string {
	switch {
	case ratio >= 1.2:
		return CategoryExcellent
	case ratio >= 1:
		return CategoryStrong
	case ratio >= 0.75:
		return CategoryGood
	case ratio >= 0.5:
		return CategoryAverage
	default:
		return CategoryWeak
	}
}
