package ephemeris

import (
	"math"

	g "vedic-backend/internal/geometry"
)

// houseFrame is the local sky used by every quadrant system: right ascension of
// the meridian, true obliquity and geographic latitude, all in degrees.
type houseFrame struct {
	ramc, eps, lat float64
}

// cuspAt returns the ecliptic longitude cut by the house circle of the given pole
// at oblique ascension r.
func (f houseFrame) cuspAt(r, pole float64) float64 {
	return g.Atan2(g.Sin(r), g.Cos(r)*g.Cos(f.eps)-g.Tan(pole)*g.Sin(f.eps))
}

func (f houseFrame) midheaven() float64 {
	return f.cuspAt(f.ramc, 0)
}

func (f houseFrame) ascendant() float64 {
	asc := f.cuspAt(f.ramc+90, f.lat)
	// The ascendant always lies in the eastern half, within 180 degrees after the MC.
	if g.Forward(f.midheaven(), asc) > 180 {
		asc = g.DegNorm(asc + 180)
	}
	return asc
}

// houses returns the tropical ascendant, MC and twelve cusps. Placidus and Koch
// are undefined inside the polar circles and fall back to Porphyry there, as do
// Regiomontanus and Campanus whenever their cusps stop running in zodiac order.
// The system actually used is returned.
func (f houseFrame) houses(sys HouseSystem) (asc, mc float64, cusps [12]float64, used HouseSystem) {
	asc, mc = f.ascendant(), f.midheaven()
	used = sys

	polar := math.Abs(f.lat) >= 90-f.eps
	if (sys == Placidus || sys == Koch) && polar {
		used = Porphyry
	}

	var c11, c12, c2, c3 float64
	switch used {
	case Placidus:
		var ok bool
		if c11, c12, c2, c3, ok = f.placidus(); !ok {
			used = Porphyry
			c11, c12, c2, c3 = f.porphyry(asc, mc)
		}
	case Koch:
		c11, c12, c2, c3 = f.koch(mc)
	case Regiomontanus:
		c11, c12, c2, c3 = f.regiomontanus()
	case Campanus:
		c11, c12, c2, c3 = f.campanus()
	case Porphyry:
		c11, c12, c2, c3 = f.porphyry(asc, mc)
	default:
		for i := range cusps {
			cusps[i] = g.DegNorm(asc + float64(i)*30)
		}
		return asc, mc, cusps, used
	}

	cusps = quadrantCusps(asc, mc, c11, c12, c2, c3)
	if polar && !tiles(cusps) {
		used = Porphyry
		c11, c12, c2, c3 = f.porphyry(asc, mc)
		cusps = quadrantCusps(asc, mc, c11, c12, c2, c3)
	}
	return asc, mc, cusps, used
}

// quadrantCusps fills the twelve cusps from the angles and the four
// intermediate cusps of the eastern quadrants.
func quadrantCusps(asc, mc, c11, c12, c2, c3 float64) (cusps [12]float64) {
	cusps[0], cusps[1], cusps[2] = asc, c2, c3
	cusps[9], cusps[10], cusps[11] = mc, c11, c12
	for i := 0; i < 3; i++ {
		cusps[i+3] = g.DegNorm(cusps[i+9] + 180)
		cusps[i+6] = g.DegNorm(cusps[i] + 180)
	}
	return cusps
}

// tiles reports whether the forward arcs between consecutive cusps go round
// the circle exactly once.
func tiles(cusps [12]float64) bool {
	total := 0.0
	for i := range cusps {
		arc := g.Forward(cusps[i], cusps[(i+1)%12])
		if arc == 0 {
			return false
		}
		total += arc
	}
	return math.Abs(total-360) < 1e-6
}

func (f houseFrame) porphyry(asc, mc float64) (c11, c12, c2, c3 float64) {
	upper := g.Forward(mc, asc) / 3
	lower := g.Forward(asc, mc+180) / 3
	return g.DegNorm(mc + upper), g.DegNorm(mc + 2*upper), g.DegNorm(asc + lower), g.DegNorm(asc + 2*lower)
}

// placidus trisects the semi-arcs in time. Each cusp is found by iterating on the
// declination of the cusp point itself.
func (f houseFrame) placidus() (c11, c12, c2, c3 float64, ok bool) {
	type rule struct{ offset, frac float64 }
	rules := [4]rule{{0, 1.0 / 3}, {0, 2.0 / 3}, {60, 2.0 / 3}, {120, 1.0 / 3}}
	var out [4]float64
	for i, r := range rules {
		lon := f.cuspAt(f.ramc+r.offset+r.frac*90, 0)
		converged := false
		for iter := 0; iter < 100; iter++ {
			decl := g.Asin(g.Sin(f.eps) * g.Sin(lon))
			x := -g.Tan(f.lat) * g.Tan(decl)
			if x < -1 || x > 1 {
				return 0, 0, 0, 0, false
			}
			semiArc := math.Acos(x) * 180 / math.Pi
			next := f.cuspAt(f.ramc+r.offset+r.frac*semiArc, 0)
			if g.Distance(next, lon) < 1e-10 {
				lon, converged = next, true
				break
			}
			lon = next
		}
		if !converged {
			return 0, 0, 0, 0, false
		}
		out[i] = lon
	}
	return out[0], out[1], out[2], out[3], true
}

// koch trisects the MC's diurnal semi-arc and projects through the birth latitude.
func (f houseFrame) koch(mc float64) (c11, c12, c2, c3 float64) {
	sina := g.Sin(mc) * g.Sin(f.eps) / g.Cos(f.lat)
	sina = math.Max(-1, math.Min(1, sina))
	cosa := math.Sqrt(1 - sina*sina)
	c := g.Atan(g.Tan(f.lat) / cosa)
	ad3 := g.Asin(g.Sin(c)*sina) / 3
	return f.cuspAt(f.ramc+30-2*ad3, f.lat),
		f.cuspAt(f.ramc+60-ad3, f.lat),
		f.cuspAt(f.ramc+120+ad3, f.lat),
		f.cuspAt(f.ramc+150+2*ad3, f.lat)
}

// regiomontanus divides the celestial equator into twelve equal arcs.
func (f houseFrame) regiomontanus() (c11, c12, c2, c3 float64) {
	cusp := func(h float64) float64 {
		pole := g.Atan(g.Tan(f.lat) * g.Sin(h))
		return f.cuspAt(f.ramc+h, pole)
	}
	return cusp(30), cusp(60), cusp(120), cusp(150)
}

// campanus divides the prime vertical into twelve equal arcs.
func (f houseFrame) campanus() (c11, c12, c2, c3 float64) {
	cusp := func(h float64) float64 {
		pole := g.Asin(g.Sin(f.lat) * g.Sin(h))
		r := g.Atan(g.Cos(f.lat) * g.Tan(h))
		if h > 90 {
			r += 180
		}
		return f.cuspAt(f.ramc+r, pole)
	}
	return cusp(30), cusp(60), cusp(120), cusp(150)
}
