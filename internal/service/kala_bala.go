package service

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	g "vedic-backend/internal/geometry"
	"vedic-backend/internal/models"
)

// aharganaEpoch is the Julian day the classical day count starts from.
const aharganaEpoch = 588464.5

// horaOffset is added to hours-since-sunrise before picking the hour lord.
const horaOffset = 2.0

var (
	weekdayLords = [7]models.Planet{models.Sun, models.Moon, models.Mars, models.Mercury, models.Jupiter, models.Venus, models.Saturn}
	// horaOrder is the order the hour lords advance in, fastest planet first.
	horaOrder = [7]models.Planet{models.Moon, models.Mercury, models.Venus, models.Sun, models.Mars, models.Jupiter, models.Saturn}

	dayStrong   = map[models.Planet]bool{models.Sun: true, models.Jupiter: true, models.Venus: true}
	nightStrong = map[models.Planet]bool{models.Moon: true, models.Mars: true, models.Saturn: true}
	benefics    = map[models.Planet]bool{models.Jupiter: true, models.Venus: true, models.Moon: true}

	dayThirdLords   = [3]models.Planet{models.Mercury, models.Sun, models.Saturn}
	nightThirdLords = [3]models.Planet{models.Moon, models.Venus, models.Mars}

	// declination in arc-minutes for Bhuja 0, 15, ... 90
	krantiTable = [7]float64{0, 362, 703, 1002, 1238, 1388, 1440}
)

// KalaInput is everything temporal strength needs about the birth moment.
type KalaInput struct {
	Local            time.Time // birth instant in the birth zone
	Latitude         float64
	Longitude        float64
	SunLongitude     float64 // sidereal
	MoonLongitude    float64 // sidereal
	Ayanamsa         float64
	SolarDeclination float64 // degrees
	EquationOfTime   float64 // minutes
}

// KalaContext holds the per-chart quantities shared by all seven planets.
type KalaContext struct {
	ApparentTime float64 // local apparent time, hours in [0, 24)
	Sunrise      float64
	Sunset       float64
	DayCount     int
	Daytime      bool

	YearLord  models.Planet
	MonthLord models.Planet
	DayLord   models.Planet
	HourLord  models.Planet
	ThirdLord models.Planet

	sunMoonSeparation float64
	ayanamsa          float64
}

// KalaCalculator computes the nine sub-components of temporal strength.
type KalaCalculator struct{}

// NewKalaCalculator creates a new calculator
func NewKalaCalculator() *KalaCalculator {
	return &KalaCalculator{}
}

// Context derives the shared quantities for one birth.
func (kc *KalaCalculator) Context(in KalaInput) KalaContext {
	ut := in.Local.UTC()
	hours := float64(ut.Hour()) + float64(ut.Minute())/60 + (float64(ut.Second())+float64(ut.Nanosecond())/1e9)/3600
	lat := math.Mod(hours+in.Longitude/15+in.EquationOfTime/60, 24)
	if lat < 0 {
		lat += 24
	}

	sunrise, sunset := sunriseSunset(in.Latitude, in.SolarDeclination)
	ctx := KalaContext{
		ApparentTime:      lat,
		Sunrise:           sunrise,
		Sunset:            sunset,
		Daytime:           lat >= sunrise && lat < sunset,
		sunMoonSeparation: g.Distance(in.SunLongitude, in.MoonLongitude),
		ayanamsa:          in.Ayanamsa,
	}

	y, m, d := in.Local.Date()
	days := int(math.Round(julian.CalendarGregorianToJD(y, int(m), float64(d)) - aharganaEpoch))
	if lat < sunrise {
		days--
	}
	ctx.DayCount = days
	ctx.YearLord = weekdayLord(days - mod(days, 360))
	ctx.MonthLord = weekdayLord(days - mod(days, 30))
	ctx.DayLord = weekdayLord(days)
	ctx.HourLord = hourLord(ctx.DayLord, lat-sunrise)
	ctx.ThirdLord = thirdLord(lat, sunrise, sunset, ctx.Daytime)
	return ctx
}

// Breakdown returns the Kala Bala sub-components for p at sidereal longitude lon.
func (kc *KalaCalculator) Breakdown(ctx KalaContext, p models.Planet, lon float64) models.KalaBreakdown {
	k := models.KalaBreakdown{
		Nathonnatha: nathonnatha(p, ctx.ApparentTime),
		Paksha:      paksha(p, ctx.sunMoonSeparation),
		Ayana:       ayana(p, lon+ctx.ayanamsa),
	}
	if p == models.Jupiter || p == ctx.ThirdLord {
		k.Tribhaga = 60
	}
	if p == ctx.YearLord {
		k.Abda = 15
	}
	if p == ctx.MonthLord {
		k.Masa = 30
	}
	if p == ctx.DayLord {
		k.Vara = 45
	}
	if p == ctx.HourLord {
		k.Hora = 60
	}
	return k
}

// sunriseSunset returns sunrise and sunset in local apparent hours.
func sunriseSunset(latitude, declination float64) (float64, float64) {
	x := -g.Tan(latitude) * g.Tan(declination)
	x = math.Max(-1, math.Min(1, x))
	h0 := math.Acos(x) * 180 / math.Pi
	return 12 - h0/15, 12 + h0/15
}

func nathonnatha(p models.Planet, apparent float64) float64 {
	fromMidnight := math.Min(apparent, 24-apparent) * 15
	switch {
	case dayStrong[p]:
		return 60 * fromMidnight / 180
	case nightStrong[p]:
		return 60 * (180 - fromMidnight) / 180
	default:
		return 60
	}
}

func paksha(p models.Planet, separation float64) float64 {
	v := (180 - separation) / 3
	if benefics[p] {
		v = separation / 3
	}
	if p == models.Moon {
		v *= 2
	}
	return v
}

func thirdLord(apparent, sunrise, sunset float64, daytime bool) models.Planet {
	dayLen := sunset - sunrise
	if daytime {
		return dayThirdLords[third(apparent-sunrise, dayLen)]
	}
	elapsed := apparent - sunset
	if elapsed < 0 {
		elapsed += 24
	}
	return nightThirdLords[third(elapsed, 24-dayLen)]
}

func third(elapsed, length float64) int {
	if length <= 0 {
		return 0
	}
	i := int(math.Floor(elapsed / (length / 3)))
	return max(0, min(2, i))
}

func weekdayLord(days int) models.Planet {
	return weekdayLords[mod(4+days, 7)]
}

func hourLord(dayLord models.Planet, sinceSunrise float64) models.Planet {
	if sinceSunrise < 0 {
		sinceSunrise += 24
	}
	hour := mod(int(math.Floor(sinceSunrise+horaOffset)), 24)
	start := 0
	for i, p := range horaOrder {
		if p == dayLord {
			start = i
		}
	}
	return horaOrder[(start+hour)%7]
}

// Kranti interpolates the declination table, in arc-minutes, for a Bhuja in [0, 90].
func Kranti(bhuja float64) float64 {
	bhuja = math.Max(0, math.Min(90, bhuja))
	i := int(bhuja / 15)
	if i >= 6 {
		return krantiTable[6]
	}
	frac := (bhuja - float64(i)*15) / 15
	return krantiTable[i] + (krantiTable[i+1]-krantiTable[i])*frac
}

func ayana(p models.Planet, sayana float64) float64 {
	sayana = g.DegNorm(sayana)
	bhuja := g.Distance(sayana, 0)
	if bhuja > 90 {
		bhuja = 180 - bhuja
	}
	k := Kranti(bhuja)
	north := sayana < 180

	sign := 1.0
	switch p {
	case models.Sun, models.Mars, models.Jupiter, models.Venus:
		if !north {
			sign = -1
		}
	case models.Moon, models.Saturn:
		if north {
			sign = -1
		}
	}
	v := (1440 + sign*k) / 2880 * 60
	if p == models.Sun {
		v *= 2
	}
	return v
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
