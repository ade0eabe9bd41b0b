package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"vedic-backend/internal/ephemeris"
	g "vedic-backend/internal/geometry"
	"vedic-backend/internal/models"
)

// DefaultCalendarYears is the length of the yearly dasha calendar.
const DefaultCalendarYears = 10

// Ephemeris is the position source a chart is computed from.
type Ephemeris interface {
	Compute(req ephemeris.Request) (ephemeris.Positions, error)
	Bodies(ut time.Time, ayan ephemeris.Ayanamsa, node ephemeris.NodeModel) (map[models.Planet]float64, error)
}

// ChartOptions carries the inputs that are not part of the birth data.
type ChartOptions struct {
	// Now is the transit instant. Zero means the current time.
	Now time.Time
	// CalendarFromYear is the first calendar year. Zero means the birth year.
	CalendarFromYear int
	// CalendarYears defaults to DefaultCalendarYears.
	CalendarYears int
}

// ChartService assembles a complete chart from a birth context.
type ChartService struct {
	eph          Ephemeris
	log          *zap.Logger
	divisional   *DivisionalCalculator
	friendship   *FriendshipEngine
	saptavargiya *SaptavargiyaCalculator
	dignity      *DignityCalculator
	shadbala     *ShadbalaCalculator
	dasha        *DashaBuilder
	calendar     *CalendarBuilder
}

// NewChartService creates a new chart service
func NewChartService(eph Ephemeris, log *zap.Logger) *ChartService {
	if log == nil {
		log = zap.NewNop()
	}
	dc := NewDivisionalCalculator()
	fe := NewFriendshipEngine()
	return &ChartService{
		eph:          eph,
		log:          log,
		divisional:   dc,
		friendship:   fe,
		saptavargiya: NewSaptavargiyaCalculator(dc, fe),
		dignity:      NewDignityCalculator(dc),
		shadbala:     NewShadbalaCalculator(NewKalaCalculator()),
		dasha:        NewDashaBuilder(),
		calendar:     NewCalendarBuilder(),
	}
}

// Compute runs the whole pipeline. Apart from Transits the result depends only on birth and opts.
func (cs *ChartService) Compute(birth models.BirthContext, opts ChartOptions) (*models.ChartResult, error) {
	if err := birth.Validate(); err != nil {
		return nil, err
	}
	req := ephemeris.Request{
		UT:          birth.UT(),
		Latitude:    birth.Latitude,
		Longitude:   birth.Longitude,
		Ayanamsa:    ephemeris.ParseAyanamsa(birth.Ayanamsa),
		HouseSystem: ephemeris.ParseHouseSystem(birth.HouseSystem),
		Node:        ephemeris.ParseNodeModel(birth.NodeType),
	}
	eph, err := cs.eph.Compute(req)
	if err != nil {
		return nil, fmt.Errorf("compute positions: %w", err)
	}

	positions := make(map[models.Planet]models.SiderealPosition, len(models.AllPlanets))
	for _, p := range models.AllPlanets {
		positions[p] = NewPosition(p, eph.Longitudes[p])
	}
	local := birth.Local()

	res := &models.ChartResult{
		Meta: models.ChartMeta{
			JulianDayUT:   eph.JulianDayUT,
			Ayanamsa:      string(req.Ayanamsa),
			AyanamsaValue: eph.Ayanamsa,
			HouseSystem:   string(eph.HouseSystem),
			NodeType:      string(req.Node),
			Precision:     eph.Precision,
			BirthLocal:    local.Format(time.RFC3339),
			BirthUTC:      req.UT.Format(time.RFC3339),
		},
		Ascendant:      eph.Ascendant,
		AscendantSign:  models.Sign(g.SignIndex(eph.Ascendant)),
		Houses:         make(map[int]float64, 12),
		Planets:        positions,
		PlanetsByHouse: make(map[int][]models.HousePlacement, 12),
		PlanetAnalysis: make(map[models.Planet]models.PlanetAnalysis, len(positions)),
		Nakshatras:     make(map[models.Planet]models.NakshatraDetail, len(positions)),
	}
	for i, c := range eph.Cusps {
		res.Houses[i+1] = c
		res.PlanetsByHouse[i+1] = []models.HousePlacement{}
	}

	houseOf := make(map[models.Planet]int, len(positions))
	for _, p := range models.AllPlanets {
		pos := positions[p]
		h := g.HouseOf(pos.Longitude, eph.Cusps)
		houseOf[p] = h
		res.PlanetsByHouse[h] = append(res.PlanetsByHouse[h], models.HousePlacement{
			Name:      p.String(),
			Abbr:      p.Abbr(),
			Sign:      pos.Sign,
			DegInSign: pos.DegInSign,
		})
		res.PlanetAnalysis[p] = planetAnalysis(pos, h)
		res.Nakshatras[p] = NakshatraDetailFor(pos)
	}
	res.HouseAnalysis = houseAnalysis(eph.Cusps, houseOf)

	res.Vimshottari = cs.dasha.Build(local, positions[models.Moon].Longitude)
	from := opts.CalendarFromYear
	if from == 0 {
		from = local.Year()
	}
	years := opts.CalendarYears
	if years <= 0 {
		years = DefaultCalendarYears
	}
	res.DashaCalendar = cs.calendar.Build(res.Vimshottari, from, years, local.Location())

	res.DivisionalCharts = cs.divisional.AllCharts(positions, eph.Ascendant)
	for name, chart := range res.DivisionalCharts {
		for p, placement := range chart.Placements {
			if placement.Error != "" {
				cs.log.Warn("divisional placement failed", zap.String("chart", name), zap.Stringer("body", p), zap.String("error", placement.Error))
			}
		}
	}

	signs := make(map[models.Planet]models.Sign, 7)
	for _, p := range models.ClassicalPlanets {
		signs[p] = positions[p].Sign
	}
	res.Friendship = cs.friendship.Tables(signs)
	res.Saptavargiya = cs.saptavargiya.Calculate(positions)
	res.Dignities = cs.dignity.Calculate(positions, eph.Cusps)
	res.Shadbala = cs.shadbala.Calculate(ShadbalaInput{
		Positions:    positions,
		Cusps:        eph.Cusps,
		Saptavargiya: res.Saptavargiya,
		Kala: KalaInput{
			Local:            local,
			Latitude:         birth.Latitude,
			Longitude:        birth.Longitude,
			SunLongitude:     positions[models.Sun].Longitude,
			MoonLongitude:    positions[models.Moon].Longitude,
			Ayanamsa:         eph.Ayanamsa,
			SolarDeclination: eph.SolarDeclination,
			EquationOfTime:   eph.EquationOfTime,
		},
	})

	res.Transits = cs.transits(req, positions, eph.Cusps, opts.Now)

	cs.log.Debug("chart computed",
		zap.Float64("jd_ut", eph.JulianDayUT),
		zap.String("house_system", res.Meta.HouseSystem),
		zap.String("precision", eph.Precision),
		zap.Stringer("ascendant_sign", res.AscendantSign),
	)
	return res, nil
}

// transits compares current positions with the natal ones. A failure is
// reported inside the block and never fails the chart.
func (cs *ChartService) transits(req ephemeris.Request, natal map[models.Planet]models.SiderealPosition, cusps [12]float64, now time.Time) models.Transits {
	if now.IsZero() {
		now = time.Now()
	}
	t := models.Transits{
		ComputedAt: now.UTC(),
		Bodies:     make(map[models.Planet]models.TransitEntry, len(natal)),
	}
	current, err := cs.eph.Bodies(now.UTC(), req.Ayanamsa, req.Node)
	if err != nil {
		cs.log.Warn("transit computation failed", zap.Error(err))
		t.Error = err.Error()
		return t
	}
	for _, p := range models.AllPlanets {
		n := natal[p]
		lon, ok := current[p]
		if !ok {
			t.Bodies[p] = models.TransitEntry{NatalLongitude: n.Longitude, NatalSign: n.Sign, Error: "no current position"}
			continue
		}
		cur := NewPosition(p, lon)
		t.Bodies[p] = models.TransitEntry{
			Longitude:      cur.Longitude,
			Sign:           cur.Sign,
			DegInSign:      cur.DegInSign,
			NatalLongitude: n.Longitude,
			NatalSign:      n.Sign,
			HouseFromNatal: g.HouseOf(cur.Longitude, cusps),
			SignChanged:    cur.Sign != n.Sign,
			Motion:         g.Forward(n.Longitude, cur.Longitude),
		}
	}
	return t
}

func planetAnalysis(pos models.SiderealPosition, house int) models.PlanetAnalysis {
	a := models.PlanetAnalysis{
		House:         house,
		Sign:          pos.Sign,
		SignLord:      pos.Sign.Lord(),
		DegInSign:     pos.DegInSign,
		Nakshatra:     pos.Nakshatra,
		NakshatraLord: pos.NakshatraLord,
		Pada:          pos.Pada,
		OwnSign:       isOwnSign(pos.Planet, pos.Sign),
	}
	if ex, ok := exaltationPoints[pos.Planet]; ok {
		a.Exalted = pos.Sign == models.Sign(g.SignIndex(ex))
		a.Debilitated = pos.Sign == models.Sign(g.SignIndex(ex+180))
	}
	return a
}

func houseAnalysis(cusps [12]float64, houseOf map[models.Planet]int) []models.HouseAnalysis {
	out := make([]models.HouseAnalysis, 0, 12)
	for i, c := range cusps {
		h := i + 1
		sign := models.Sign(g.SignIndex(c))
		occupants := []models.Planet{}
		for _, p := range models.AllPlanets {
			if houseOf[p] == h {
				occupants = append(occupants, p)
			}
		}
		out = append(out, models.HouseAnalysis{
			House:         h,
			Cusp:          c,
			Sign:          sign,
			Lord:          sign.Lord(),
			Occupants:     occupants,
			Significances: HouseSignificances(h),
		})
	}
	return out
}
