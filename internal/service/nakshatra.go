package service

import (
	"math"

	g "vedic-backend/internal/geometry"
	"vedic-backend/internal/models"
)

// NakshatraSpan is 13 degrees 20 minutes.
const NakshatraSpan = 360.0 / 27.0

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra", "Punarvasu", "Pushya", "Ashlesha",
	"Magha", "Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// NakshatraIndex returns the lunar mansion index in [0, 26].
func NakshatraIndex(lon float64) int {
	idx := int(math.Floor(g.DegNorm(lon) / NakshatraSpan))
	if idx > 26 {
		idx = 26
	}
	return idx
}

// NakshatraName returns the name of mansion idx.
func NakshatraName(idx int) string {
	return nakshatraNames[((idx%27)+27)%27]
}

// NakshatraLord reads the 27-slot cyclic lord table: the nine Vimshottari lords repeated three times.
func NakshatraLord(idx int) models.Planet {
	return vimshottariSequence[((idx%27)+27)%27%9]
}

// Pada returns the quarter of the nakshatra in [1, 4].
func Pada(lon float64) int {
	offset := g.DegNorm(lon) - float64(NakshatraIndex(lon))*NakshatraSpan
	pada := int(math.Floor(offset/(NakshatraSpan/4))) + 1
	if pada > 4 {
		pada = 4
	}
	return pada
}

// NewPosition builds the canonical per-body placement once per chart.
func NewPosition(p models.Planet, lon float64) models.SiderealPosition {
	lon = g.DegNorm(lon)
	idx := NakshatraIndex(lon)
	return models.SiderealPosition{
		Planet:         p,
		Longitude:      lon,
		Sign:           models.Sign(g.SignIndex(lon)),
		DegInSign:      g.DegInSign(lon),
		NakshatraIndex: idx,
		Nakshatra:      NakshatraName(idx),
		NakshatraLord:  NakshatraLord(idx),
		Pada:           Pada(lon),
	}
}

// NakshatraDetailFor returns the nakshatra table row for one body.
func NakshatraDetailFor(pos models.SiderealPosition) models.NakshatraDetail {
	start := float64(pos.NakshatraIndex) * NakshatraSpan
	traversed := pos.Longitude - start
	return models.NakshatraDetail{
		Index:     pos.NakshatraIndex,
		Name:      pos.Nakshatra,
		Lord:      pos.NakshatraLord,
		Pada:      pos.Pada,
		Start:     start,
		End:       start + NakshatraSpan,
		Traversed: traversed,
		Remaining: NakshatraSpan - traversed,
	}
}
