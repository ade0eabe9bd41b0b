package ephemeris

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// JulianDay converts an instant to a Julian day on the UT scale.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	day := float64(u.Day()) +
		(float64(u.Hour())+float64(u.Minute())/60+(float64(u.Second())+float64(u.Nanosecond())/1e9)/3600)/24
	return julian.CalendarGregorianToJD(u.Year(), int(u.Month()), day)
}

// deltaT returns TT-UT in seconds from the Espenak-Meeus polynomials.
func deltaT(t time.Time) float64 {
	y := float64(t.Year()) + (float64(t.YearDay())-0.5)/365.25
	switch {
	case y >= 2005 && y < 2050:
		u := y - 2000
		return 62.92 + 0.32217*u + 0.005589*u*u
	case y >= 1986 && y < 2005:
		u := y - 2000
		return 63.86 + 0.3345*u - 0.060374*u*u + 0.0017275*u*u*u + 0.000651814*u*u*u*u + 0.00002373599*u*u*u*u*u
	case y >= 1961 && y < 1986:
		u := y - 1975
		return 45.45 + 1.067*u - u*u/260 - u*u*u/718
	case y >= 1941 && y < 1961:
		u := y - 1950
		return 29.07 + 0.407*u - u*u/233 + u*u*u/2547
	case y >= 1920 && y < 1941:
		u := y - 1920
		return 21.20 + 0.84493*u - 0.076100*u*u + 0.0020936*u*u*u
	case y >= 1900 && y < 1920:
		u := y - 1900
		return -2.79 + 1.494119*u - 0.0598939*u*u + 0.0061966*u*u*u - 0.000197*u*u*u*u
	case y >= 2050 && y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}

// ephemerisDay converts a UT Julian day to the dynamical (TT) scale.
func ephemerisDay(t time.Time) float64 {
	return JulianDay(t) + deltaT(t)/86400
}
