package service

import (
	"fmt"

	"vedic-backend/internal/models"
)

// Dignity labels and their Saptavargiya points.
const (
	DignityMooltrikona = "Mooltrikona"
	DignityOwn         = "Own"
	DignityFastFriend  = "Fast Friend"
	DignityFriend      = "Friend"
	DignityNeutral     = "Neutral"
	DignityEnemy       = "Enemy"
	DignityBitterEnemy = "Bitter Enemy"
	DignityError       = "Error"
)

var dignityPoints = map[string]float64{
	DignityMooltrikona: 45,
	DignityOwn:         30,
	DignityFastFriend:  22.5,
	DignityFriend:      15,
	DignityNeutral:     7.5,
	DignityEnemy:       3.75,
	DignityBitterEnemy: 1.875,
}

var compoundDignity = map[models.CompoundRelation]string{
	models.ExtremeFriend:   DignityFastFriend,
	models.CompoundFriend:  DignityFriend,
	models.CompoundNeutral: DignityNeutral,
	models.CompoundEnemy:   DignityEnemy,
	models.ExtremeEnemy:    DignityBitterEnemy,
}

// SaptavargaCharts are the seven charts scored, rashi first.
var SaptavargaCharts = []int{1, 2, 3, 7, 9, 12, 30}

// SaptavargiyaCalculator scores each planet's dignity across the seven vargas.
type SaptavargiyaCalculator struct {
	divisional *DivisionalCalculator
	friendship *FriendshipEngine
}

// NewSaptavargiyaCalculator creates a new calculator
func NewSaptavargiyaCalculator(dc *DivisionalCalculator, fe *FriendshipEngine) *SaptavargiyaCalculator {
	return &SaptavargiyaCalculator{divisional: dc, friendship: fe}
}

// Calculate scores every classical planet present in positions. The compound
// table is built once from the rashi signs. A failing cell scores zero and is
// marked "Error"; the rest of the grid is still computed.
func (sc *SaptavargiyaCalculator) Calculate(positions map[models.Planet]models.SiderealPosition) map[models.Planet]models.SaptavargiyaResult {
	signs := make(map[models.Planet]models.Sign, 7)
	for _, p := range models.ClassicalPlanets {
		if pos, ok := positions[p]; ok {
			signs[p] = pos.Sign
		}
	}
	tables := sc.friendship.Tables(signs)

	out := make(map[models.Planet]models.SaptavargiyaResult, 7)
	for _, p := range models.ClassicalPlanets {
		pos, ok := positions[p]
		if !ok {
			continue
		}
		res := models.SaptavargiyaResult{Charts: make([]models.VargaDignity, 0, len(SaptavargaCharts))}
		for _, n := range SaptavargaCharts {
			cell := sc.cell(p, pos, n, tables.Compound[p])
			res.Charts = append(res.Charts, cell)
			res.Total += cell.Points
		}
		out[p] = res
	}
	return out
}

func (sc *SaptavargiyaCalculator) cell(p models.Planet, pos models.SiderealPosition, n int, compound map[models.Planet]models.CompoundRelation) models.VargaDignity {
	name := fmt.Sprintf("D%d", n)
	placement, err := sc.divisional.Place(n, pos.Sign, pos.DegInSign)
	if err != nil {
		return models.VargaDignity{Chart: name, Dignity: DignityError, Error: err.Error()}
	}
	dignity, err := sc.dignity(p, placement.Sign, pos.DegInSign, n == 1, compound)
	if err != nil {
		return models.VargaDignity{Chart: name, Sign: placement.Sign, Dignity: DignityError, Error: err.Error()}
	}
	return models.VargaDignity{
		Chart:   name,
		Sign:    placement.Sign,
		Dignity: dignity,
		Points:  dignityPoints[dignity],
	}
}

func (sc *SaptavargiyaCalculator) dignity(p models.Planet, sign models.Sign, deg float64, rashi bool, compound map[models.Planet]models.CompoundRelation) (string, error) {
	if rashi {
		if mt, ok := mooltrikonas[p]; ok && mt.sign == sign && deg >= mt.from && deg < mt.to {
			return DignityMooltrikona, nil
		}
	}
	if isOwnSign(p, sign) {
		return DignityOwn, nil
	}
	lord := sign.Lord()
	rel, ok := compound[lord]
	if !ok {
		return "", fmt.Errorf("no compound relation from %s to %s", p, lord)
	}
	return compoundDignity[rel], nil
}
