package ephemeris

import "github.com/soniakeys/meeus/v3/base"

const lahiriJ2000 = 23.857092

// MeanAyanamsa returns the Lahiri precession offset in degrees, referred to the
// mean equinox of date.
func MeanAyanamsa(_ Ayanamsa, jde float64) float64 {
	t := base.J2000Century(jde)
	return lahiriJ2000 + (5029.0966*t+1.11113*t*t)/3600
}
