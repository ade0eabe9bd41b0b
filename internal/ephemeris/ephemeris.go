// Package ephemeris turns a birth instant and place into sidereal longitudes,
// an ascendant and house cusps.
//
// Positions come from the meeus implementations of VSOP87 (planets), the ELP
// lunar theory (Moon and mean node) and the low-precision solar theory. When
// no VSOP87 files are available the planets fall back to approximate Keplerian
// elements. The sidereal reference is a per-call parameter, so one Adapter can
// serve concurrent charts.
package ephemeris

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	g "vedic-backend/internal/geometry"
	"vedic-backend/internal/models"
)

const (
	PrecisionVSOP87     = "vsop87"
	PrecisionAnalytical = "analytical"
)

// ErrNonFinite is returned when a computed coordinate is NaN or infinite.
var ErrNonFinite = errors.New("ephemeris produced a non-finite value")

var vsopBodies = map[models.Planet]int{
	models.Mercury: pp.Mercury,
	models.Venus:   pp.Venus,
	models.Mars:    pp.Mars,
	models.Jupiter: pp.Jupiter,
	models.Saturn:  pp.Saturn,
}

// Request is one ephemeris query.
type Request struct {
	UT          time.Time
	Latitude    float64
	Longitude   float64
	Ayanamsa    Ayanamsa
	HouseSystem HouseSystem
	Node        NodeModel
}

// Positions is the sidereal snapshot for one instant and place.
type Positions struct {
	JulianDayUT      float64
	Ayanamsa         float64 // true ayanamsa (mean + nutation in longitude)
	Longitudes       map[models.Planet]float64
	Ascendant        float64
	Midheaven        float64
	Cusps            [12]float64
	HouseSystem      HouseSystem // after any polar fallback
	Precision        string
	SolarDeclination float64 // degrees
	EquationOfTime   float64 // minutes, apparent minus mean solar time
}

// Adapter computes positions. It is safe for concurrent use once constructed.
type Adapter struct {
	earth   *pp.V87Planet
	planets map[models.Planet]*pp.V87Planet
}

// NewAdapter loads VSOP87 files from dir when present. A missing or incomplete
// directory is not an error: the adapter runs on the analytical model instead.
func NewAdapter(dir string) *Adapter {
	a := &Adapter{}
	if dir == "" {
		return a
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return a
	}
	earth, err := pp.LoadPlanetPath(pp.Earth, dir)
	if err != nil {
		return a
	}
	planets := make(map[models.Planet]*pp.V87Planet, len(vsopBodies))
	for p, ibody := range vsopBodies {
		v, err := pp.LoadPlanetPath(ibody, dir)
		if err != nil {
			return a
		}
		planets[p] = v
	}
	a.earth, a.planets = earth, planets
	return a
}

// Precision reports which planetary theory the adapter uses.
func (a *Adapter) Precision() string {
	if a.earth != nil {
		return PrecisionVSOP87
	}
	return PrecisionAnalytical
}

// Compute returns sidereal longitudes of the nine bodies, the ascendant and cusps.
func (a *Adapter) Compute(req Request) (Positions, error) {
	jd := JulianDay(req.UT)
	jde := ephemerisDay(req.UT)

	dPsi, dEps := nutation.Nutation(jde)
	eps := nutation.MeanObliquity(jde).Deg() + dEps.Deg()
	meanAyan := MeanAyanamsa(req.Ayanamsa, jde)
	trueAyan := meanAyan + dPsi.Deg()

	lons, err := a.bodies(jde, meanAyan, trueAyan, req.Node)
	if err != nil {
		return Positions{}, err
	}

	gast := float64(sidereal.Apparent(jd)) / 240
	frame := houseFrame{ramc: g.DegNorm(gast + req.Longitude), eps: eps, lat: req.Latitude}
	sys := req.HouseSystem
	if sys == WholeSign {
		sys = Equal
	}
	asc, mc, tropCusps, used := frame.houses(sys)

	pos := Positions{
		JulianDayUT: jd,
		Ayanamsa:    trueAyan,
		Longitudes:  lons,
		Ascendant:   g.DegNorm(asc - trueAyan),
		Midheaven:   g.DegNorm(mc - trueAyan),
		HouseSystem: used,
		Precision:   a.Precision(),
	}
	if req.HouseSystem == WholeSign {
		start := float64(g.SignIndex(pos.Ascendant)) * 30
		for i := range pos.Cusps {
			pos.Cusps[i] = g.DegNorm(start + float64(i)*30)
		}
		pos.HouseSystem = WholeSign
	} else {
		for i, c := range tropCusps {
			pos.Cusps[i] = g.DegNorm(c - trueAyan)
		}
	}

	alpha, delta := solar.ApparentEquatorial(jde)
	pos.SolarDeclination = delta.Deg()
	pos.EquationOfTime = equationOfTime(jde, float64(alpha)*180/math.Pi, dPsi.Deg(), eps)

	for _, v := range append([]float64{pos.Ascendant, pos.Midheaven, pos.Ayanamsa, pos.SolarDeclination, pos.EquationOfTime}, pos.Cusps[:]...) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Positions{}, fmt.Errorf("houses at %s: %w", req.UT.Format(time.RFC3339), ErrNonFinite)
		}
	}
	return pos, nil
}

// Bodies returns only the sidereal longitudes at an instant; transits use it.
func (a *Adapter) Bodies(ut time.Time, ayan Ayanamsa, node NodeModel) (map[models.Planet]float64, error) {
	jde := ephemerisDay(ut)
	dPsi, _ := nutation.Nutation(jde)
	meanAyan := MeanAyanamsa(ayan, jde)
	return a.bodies(jde, meanAyan, meanAyan+dPsi.Deg(), node)
}

func (a *Adapter) bodies(jde, meanAyan, trueAyan float64, node NodeModel) (map[models.Planet]float64, error) {
	lons := make(map[models.Planet]float64, len(models.AllPlanets))

	// The solar theory is apparent (nutation included); the lunar, nodal and
	// planetary longitudes are referred to the mean equinox of date.
	lons[models.Sun] = solar.ApparentLongitude(base.J2000Century(jde)).Deg() - trueAyan

	moonLon, _, _ := moonposition.Position(jde)
	lons[models.Moon] = moonLon.Deg() - meanAyan

	for _, p := range []models.Planet{models.Mars, models.Mercury, models.Jupiter, models.Venus, models.Saturn} {
		lons[p] = a.planetLongitude(p, jde) - meanAyan
	}

	rahu := moonposition.Node(jde).Deg()
	if node == TrueNode {
		rahu += trueNodeCorrection(jde)
	}
	lons[models.Rahu] = rahu - meanAyan
	lons[models.Ketu] = rahu + 180 - meanAyan

	for p, v := range lons {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s at JDE %.5f: %w", p, jde, ErrNonFinite)
		}
		lons[p] = g.DegNorm(v)
	}
	return lons, nil
}

func (a *Adapter) planetLongitude(p models.Planet, jde float64) float64 {
	v, ok := a.planets[p]
	if !ok || a.earth == nil {
		return analyticalLongitude(p, jde)
	}
	l0, b0, r0 := a.earth.Position(jde)
	x, y, z := geoRect(v, jde, l0.Rad(), b0.Rad(), r0)
	tau := 0.0057755183 * math.Sqrt(x*x+y*y+z*z)
	x, y, _ = geoRect(v, jde-tau, l0.Rad(), b0.Rad(), r0)
	return g.Atan2(y, x)
}

func geoRect(v *pp.V87Planet, jde, l0, b0, r0 float64) (x, y, z float64) {
	l, b, r := v.Position(jde)
	lr, br := l.Rad(), b.Rad()
	x = r*math.Cos(br)*math.Cos(lr) - r0*math.Cos(b0)*math.Cos(l0)
	y = r*math.Cos(br)*math.Sin(lr) - r0*math.Cos(b0)*math.Sin(l0)
	z = r*math.Sin(br) - r0*math.Sin(b0)
	return x, y, z
}

// trueNodeCorrection returns the principal periodic terms of the true node, in degrees.
func trueNodeCorrection(jde float64) float64 {
	t := base.J2000Century(jde)
	d := 297.8501921 + 445267.1114034*t - 0.0018819*t*t + t*t*t/545868 - t*t*t*t/113065000
	m := 357.5291092 + 35999.0502909*t - 0.0001536*t*t + t*t*t/24490000
	mp := 134.9633964 + 477198.8675055*t + 0.0087414*t*t + t*t*t/69699 - t*t*t*t/14712000
	f := 93.2720950 + 483202.0175233*t - 0.0036539*t*t - t*t*t/3526000 + t*t*t*t/863310000
	return -1.4979*g.Sin(2*(d-f)) - 0.1500*g.Sin(m) - 0.1226*g.Sin(2*d) + 0.1176*g.Sin(2*f) - 0.0801*g.Sin(2*(mp-f))
}

// equationOfTime returns apparent minus mean solar time in minutes.
func equationOfTime(jde, alphaDeg, dPsiDeg, eps float64) float64 {
	tau := base.J2000Century(jde) / 10
	l0 := 280.4664567 + 360007.6982779*tau + 0.03032028*tau*tau + tau*tau*tau/49931 -
		tau*tau*tau*tau/15300 - tau*tau*tau*tau*tau/2000000
	e := g.DegNorm(l0 - 0.0057183 - alphaDeg + dPsiDeg*g.Cos(eps))
	if e > 180 {
		e -= 360
	}
	return e * 4
}
