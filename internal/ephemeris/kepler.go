package ephemeris

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"

	g "vedic-backend/internal/geometry"
	"vedic-backend/internal/models"
)

// orbit holds J2000 mean elements and their rates per Julian century, from
// JPL's "Keplerian Elements for Approximate Positions of the Major Planets".
type orbit struct {
	a, aDot       float64 // au
	e, eDot       float64
	i, iDot       float64 // degrees
	l, lDot       float64 // mean longitude
	peri, periDot float64 // longitude of perihelion
	node, nodeDot float64 // longitude of ascending node
}

var (
	earthOrbit = orbit{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
		100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0}

	planetOrbits = map[models.Planet]orbit{
		models.Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
			252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
		models.Venus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
			181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
		models.Mars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
			-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
		models.Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
			34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
		models.Saturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
			49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
	}
)

// heliocentric returns J2000 ecliptic rectangular coordinates in au.
func (o orbit) heliocentric(t float64) (x, y, z float64) {
	a := o.a + o.aDot*t
	e := o.e + o.eDot*t
	inc := o.i + o.iDot*t
	l := o.l + o.lDot*t
	peri := o.peri + o.periDot*t
	node := o.node + o.nodeDot*t

	argPeri := peri - node
	m := g.DegNorm(l-peri) * math.Pi / 180

	ecc := m + e*math.Sin(m)
	for k := 0; k < 30; k++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}

	xp := a * (math.Cos(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	cw, sw := g.Cos(argPeri), g.Sin(argPeri)
	cn, sn := g.Cos(node), g.Sin(node)
	ci, si := g.Cos(inc), g.Sin(inc)

	x = (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp
	y = (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp
	z = (sw*si)*xp + (cw*si)*yp
	return x, y, z
}

// analyticalLongitude returns the geocentric longitude of a planet referred to
// the mean equinox of date, corrected once for light-time.
func analyticalLongitude(p models.Planet, jde float64) float64 {
	o := planetOrbits[p]
	t := base.J2000Century(jde)
	ex, ey, ez := earthOrbit.heliocentric(t)

	px, py, pz := o.heliocentric(t)
	dist := math.Sqrt((px-ex)*(px-ex) + (py-ey)*(py-ey) + (pz-ez)*(pz-ez))
	tau := 0.0057755183 * dist / 36525
	px, py, _ = o.heliocentric(t - tau)

	lonJ2000 := g.Atan2(py-ey, px-ex)
	return g.DegNorm(lonJ2000 + (5029.0966*t+1.11113*t*t)/3600)
}
