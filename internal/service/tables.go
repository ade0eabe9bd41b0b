package service

import "vedic-backend/internal/models"

// Classical rule tables. They are data, not control flow, so each can be
// audited against the texts on its own.

// ownSigns lists the signs ruled by each planet.
var ownSigns = map[models.Planet][]models.Sign{
	models.Sun:     {models.Leo},
	models.Moon:    {models.Cancer},
	models.Mars:    {models.Aries, models.Scorpio},
	models.Mercury: {models.Gemini, models.Virgo},
	models.Jupiter: {models.Sagittarius, models.Pisces},
	models.Venus:   {models.Taurus, models.Libra},
	models.Saturn:  {models.Capricorn, models.Aquarius},
}

// mooltrikona is a planet's sign and degree window [from, to).
type mooltrikona struct {
	sign     models.Sign
	from, to float64
}

var mooltrikonas = map[models.Planet]mooltrikona{
	models.Sun:     {models.Leo, 0, 20},
	models.Moon:    {models.Taurus, 3, 30},
	models.Mars:    {models.Aries, 0, 12},
	models.Mercury: {models.Virgo, 15, 20},
	models.Jupiter: {models.Sagittarius, 0, 10},
	models.Venus:   {models.Libra, 0, 15},
	models.Saturn:  {models.Aquarius, 0, 20},
}

// exaltationPoints are the deep-exaltation longitudes; debilitation is 180 degrees opposite.
var exaltationPoints = map[models.Planet]float64{
	models.Sun:     10,  // Aries 10
	models.Moon:    33,  // Taurus 3
	models.Mars:    298, // Capricorn 28
	models.Mercury: 165, // Virgo 15
	models.Jupiter: 95,  // Cancer 5
	models.Venus:   357, // Pisces 27
	models.Saturn:  200, // Libra 20
}

func debilitationPoint(p models.Planet) float64 {
	return exaltationPoints[p] + 180
}

// permanentFriendship is the naisargika table. Planets not listed are neutral.
var permanentFriendship = map[models.Planet]struct{ friends, enemies []models.Planet }{
	models.Sun:     {friends: []models.Planet{models.Moon, models.Mars, models.Jupiter}, enemies: []models.Planet{models.Venus, models.Saturn}},
	models.Moon:    {friends: []models.Planet{models.Sun, models.Mercury}},
	models.Mars:    {friends: []models.Planet{models.Sun, models.Moon, models.Jupiter}, enemies: []models.Planet{models.Mercury}},
	models.Mercury: {friends: []models.Planet{models.Sun, models.Venus}, enemies: []models.Planet{models.Moon}},
	models.Jupiter: {friends: []models.Planet{models.Sun, models.Moon, models.Mars}, enemies: []models.Planet{models.Mercury, models.Venus}},
	models.Venus:   {friends: []models.Planet{models.Mercury, models.Saturn}, enemies: []models.Planet{models.Sun, models.Moon}},
	models.Saturn:  {friends: []models.Planet{models.Mercury, models.Venus}, enemies: []models.Planet{models.Sun, models.Moon, models.Mars}},
}

// Shadbala constants, in virupas.
var (
	chestaBala = map[models.Planet]float64{
		models.Sun: 15, models.Moon: 20, models.Mercury: 25, models.Venus: 20, models.Mars: 30, models.Jupiter: 35, models.Saturn: 40,
	}
	naisargikaBala = map[models.Planet]float64{
		models.Sun: 60, models.Moon: 51.43, models.Venus: 42.86, models.Jupiter: 34.29, models.Mercury: 25.71, models.Mars: 17.14, models.Saturn: 8.57,
	}
	requiredStrength = map[models.Planet]float64{
		models.Sun: 390, models.Moon: 360, models.Mars: 300, models.Mercury: 420, models.Jupiter: 390, models.Venus: 330, models.Saturn: 300,
	}
)

// Vimshottari sequence and mahadasha lengths in years; the lengths sum to 120.
var (
	vimshottariSequence = [9]models.Planet{models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars, models.Rahu, models.Jupiter, models.Saturn, models.Mercury}
	vimshottariYears    = map[models.Planet]float64{
		models.Ketu: 7, models.Venus: 20, models.Sun: 6, models.Moon: 10, models.Mars: 7, models.Rahu: 18, models.Jupiter: 16, models.Saturn: 19, models.Mercury: 17,
	}
)

const vimshottariCycle = 120.0

func isOwnSign(p models.Planet, s models.Sign) bool {
	for _, own := range ownSigns[p] {
		if own == s {
			return true
		}
	}
	return false
}
