package service

import (
	"time"

	g "vedic-backend/internal/geometry"
	"vedic-backend/internal/models"
)

// Coimbatore, 1996-08-22 12:23 IST, Lahiri.
var referenceLongitudes = map[models.Planet]float64{
	models.Sun:     125.63,
	models.Moon:    217.35,
	models.Mars:    84.37,
	models.Mercury: 152.95,
	models.Jupiter: 254.23,
	models.Venus:   79.9,
	models.Saturn:  342.62,
	models.Rahu:    164.1,
	models.Ketu:    344.1,
}

const referenceAscendant = 215.42

var referenceBirth = time.Date(1996, 8, 22, 12, 23, 0, 0, time.FixedZone("UTC+05:30", 5*3600+1800))

func referencePositions() map[models.Planet]models.SiderealPosition {
	out := make(map[models.Planet]models.SiderealPosition, len(referenceLongitudes))
	for p, lon := range referenceLongitudes {
		out[p] = NewPosition(p, lon)
	}
	return out
}

func equalCusps(asc float64) [12]float64 {
	var c [12]float64
	for i := range c {
		c[i] = g.DegNorm(asc + float64(i)*30)
	}
	return c
}
