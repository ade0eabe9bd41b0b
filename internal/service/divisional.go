package service

import (
	"errors"
	"fmt"
	"math"

	g "vedic-backend/internal/geometry"
	"vedic-backend/internal/models"
)

// Divisions are the harmonic charts computed for every chart, in display order.
var Divisions = []int{2, 3, 7, 9, 12, 30}

var divisionNames = map[int]string{
	1:  "Rashi",
	2:  "Hora",
	3:  "Drekkana",
	7:  "Saptamsa",
	9:  "Navamsa",
	12: "Dwadasamsa",
	30: "Trimsamsa",
}

// divisionalDegree is the placeholder degree emitted for every divisional placement.
const divisionalDegree = 15.0

var (
	ErrUnknownDivision = errors.New("unknown division")
	ErrBadPosition     = errors.New("position is not finite")
)

// trimsamsaRange binds a degree range of a sign to its ruler and the sign it maps to.
type trimsamsaRange struct {
	upTo  float64
	ruler models.Planet
	sign  models.Sign
}

var (
	oddTrimsamsa = []trimsamsaRange{
		{5, models.Mars, models.Aries},
		{10, models.Saturn, models.Aquarius},
		{18, models.Jupiter, models.Sagittarius},
		{25, models.Mercury, models.Gemini},
		{30, models.Venus, models.Libra},
	}
	evenTrimsamsa = []trimsamsaRange{
		{5, models.Venus, models.Taurus},
		{12, models.Mercury, models.Virgo},
		{20, models.Jupiter, models.Pisces},
		{25, models.Saturn, models.Capricorn},
		{30, models.Mars, models.Scorpio},
	}
	navamsaStart = map[models.Element]models.Sign{
		models.Fire:  models.Aries,
		models.Earth: models.Capricorn,
		models.Air:   models.Libra,
		models.Water: models.Cancer,
	}
)

// DivisionalCalculator maps a rashi placement into the harmonic charts.
type DivisionalCalculator struct{}

// NewDivisionalCalculator creates a new calculator
func NewDivisionalCalculator() *DivisionalCalculator {
	return &DivisionalCalculator{}
}

// Place returns the sign and ruler of a position in division n. Division 1 is the identity.
func (dc *DivisionalCalculator) Place(n int, sign models.Sign, deg float64) (models.DivisionalPlacement, error) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) || deg < 0 || deg >= 30 {
		return models.DivisionalPlacement{}, fmt.Errorf("D%d at %v: %w", n, deg, ErrBadPosition)
	}
	sign = sign.Norm()

	var out models.Sign
	var ruler models.Planet
	switch n {
	case 1:
		return models.DivisionalPlacement{Sign: sign, Degree: deg, Ruler: sign.Lord()}, nil
	case 2:
		out = hora(sign, deg)
		ruler = out.Lord()
	case 3:
		out = sign.Add(4 * part(deg, 3))
		ruler = out.Lord()
	case 7:
		start := sign
		if !sign.IsOdd() {
			start = sign.Add(6)
		}
		out = start.Add(part(deg, 7))
		ruler = out.Lord()
	case 9:
		out = navamsaStart[sign.Element()].Add(part(deg, 9))
		ruler = out.Lord()
	case 12:
		out = sign.Add(part(deg, 12))
		ruler = out.Lord()
	case 30:
		out, ruler = trimsamsa(sign, deg)
	default:
		return models.DivisionalPlacement{}, fmt.Errorf("D%d: %w", n, ErrUnknownDivision)
	}
	return models.DivisionalPlacement{Sign: out, Degree: divisionalDegree, Ruler: ruler}, nil
}

// PlaceLongitude is Place for an absolute sidereal longitude.
func (dc *DivisionalCalculator) PlaceLongitude(n int, lon float64) (models.DivisionalPlacement, error) {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return models.DivisionalPlacement{}, fmt.Errorf("D%d at %v: %w", n, lon, ErrBadPosition)
	}
	return dc.Place(n, models.Sign(g.SignIndex(lon)), g.DegInSign(lon))
}

// Chart computes division n for every body and the Lagna. A body that fails
// gets an error marker and the others are still placed. Houses are counted
// from the divisional Lagna.
func (dc *DivisionalCalculator) Chart(n int, positions map[models.Planet]models.SiderealPosition, ascendant float64) models.DivisionalChart {
	chart := models.DivisionalChart{
		Division:   n,
		Name:       divisionNames[n],
		Placements: make(map[models.Planet]models.DivisionalPlacement, len(positions)+1),
		ByHouse:    make(map[int][]models.Planet, 12),
	}
	for h := 1; h <= 12; h++ {
		chart.ByHouse[h] = []models.Planet{}
	}

	lagna, err := dc.PlaceLongitude(n, ascendant)
	if err != nil {
		lagna.Error = err.Error()
	}
	chart.Placements[models.Lagna] = lagna

	for _, p := range models.AllPlanets {
		pos, ok := positions[p]
		if !ok {
			continue
		}
		placement, err := dc.Place(n, pos.Sign, pos.DegInSign)
		if err != nil {
			chart.Placements[p] = models.DivisionalPlacement{Error: err.Error()}
			continue
		}
		chart.Placements[p] = placement
		if lagna.Error == "" {
			house := int((placement.Sign-lagna.Sign).Norm()) + 1
			chart.ByHouse[house] = append(chart.ByHouse[house], p)
		}
	}
	return chart
}

// AllCharts computes every division in Divisions.
func (dc *DivisionalCalculator) AllCharts(positions map[models.Planet]models.SiderealPosition, ascendant float64) map[string]models.DivisionalChart {
	out := make(map[string]models.DivisionalChart, len(Divisions))
	for _, n := range Divisions {
		out[fmt.Sprintf("D%d", n)] = dc.Chart(n, positions, ascendant)
	}
	return out
}

// part returns which of n equal sub-divisions of a sign deg falls into.
func part(deg float64, n int) int {
	k := int(math.Floor(deg / (30 / float64(n))))
	if k >= n {
		k = n - 1
	}
	return k
}

// hora: odd signs give Leo then Cancer, even signs Cancer then Leo.
func hora(sign models.Sign, deg float64) models.Sign {
	firstHalf := deg < 15
	if sign.IsOdd() == firstHalf {
		return models.Leo
	}
	return models.Cancer
}

func trimsamsa(sign models.Sign, deg float64) (models.Sign, models.Planet) {
	ranges := evenTrimsamsa
	if sign.IsOdd() {
		ranges = oddTrimsamsa
	}
	for _, r := range ranges {
		if deg < r.upTo {
			return r.sign, r.ruler
		}
	}
	last := ranges[len(ranges)-1]
	return last.sign, last.ruler
}
