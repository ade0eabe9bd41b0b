package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedic-backend/internal/models"
)

func referenceKalaInput() KalaInput {
	return KalaInput{
		Local:            referenceBirth,
		Latitude:         10 + 59.0/60,
		Longitude:        76 + 57.0/60,
		SunLongitude:     referenceLongitudes[models.Sun],
		MoonLongitude:    referenceLongitudes[models.Moon],
		Ayanamsa:         23.81,
		SolarDeclination: 11.6,
		EquationOfTime:   -2.8,
	}
}

func TestKala_ReferenceContext(t *testing.T) {
	ctx := NewKalaCalculator().Context(referenceKalaInput())

	assert.InDelta(t, 11.97, ctx.ApparentTime, 0.02)
	assert.True(t, ctx.Daytime)
	assert.InDelta(t, 5.85, ctx.Sunrise, 0.05)
	assert.Equal(t, 1861853, ctx.DayCount)
	assert.Equal(t, models.Venus, ctx.YearLord)
	assert.Equal(t, models.Mars, ctx.MonthLord)
	assert.Equal(t, models.Jupiter, ctx.DayLord)
	assert.Equal(t, models.Saturn, ctx.HourLord)
	assert.Equal(t, models.Sun, ctx.ThirdLord)
}

func TestKala_ReferenceBreakdown(t *testing.T) {
	kc := NewKalaCalculator()
	ctx := kc.Context(referenceKalaInput())

	want := map[models.Planet]models.KalaBreakdown{
		models.Sun:     {Nathonnatha: 59.83, Paksha: 29.43, Tribhaga: 60, Ayana: 89.74},
		models.Moon:    {Nathonnatha: 0.17, Paksha: 61.14, Ayana: 56.04},
		models.Mars:    {Nathonnatha: 0.17, Paksha: 29.43, Masa: 30, Ayana: 58.25},
		models.Mercury: {Nathonnatha: 60, Paksha: 29.43, Ayana: 31.62},
		models.Jupiter: {Nathonnatha: 59.83, Paksha: 30.57, Tribhaga: 60, Vara: 45, Ayana: 0.58},
		models.Venus:   {Nathonnatha: 59.83, Paksha: 30.57, Abda: 15, Ayana: 59.01},
		models.Saturn:  {Nathonnatha: 0.17, Paksha: 29.43, Hora: 60, Ayana: 26.76},
	}
	for p, w := range want {
		t.Run(p.String(), func(t *testing.T) {
			got := kc.Breakdown(ctx, p, referenceLongitudes[p])
			assert.InDelta(t, w.Nathonnatha, got.Nathonnatha, 0.15, "nathonnatha")
			assert.InDelta(t, w.Paksha, got.Paksha, 0.05, "paksha")
			assert.Equal(t, w.Tribhaga, got.Tribhaga, "tribhaga")
			assert.Equal(t, w.Abda, got.Abda, "abda")
			assert.Equal(t, w.Masa, got.Masa, "masa")
			assert.Equal(t, w.Vara, got.Vara, "vara")
			assert.Equal(t, w.Hora, got.Hora, "hora")
			assert.InDelta(t, w.Ayana, got.Ayana, 0.1, "ayana")
			assert.Zero(t, got.Yuddha)
			assert.InDelta(t, w.Sum(), got.Sum(), 0.4)
		})
	}
}

func TestKranti(t *testing.T) {
	assert.Equal(t, 0.0, Kranti(0))
	assert.Equal(t, 362.0, Kranti(15))
	assert.InDelta(t, (703+1002)/2.0, Kranti(37.5), 1e-9)
	assert.Equal(t, 1440.0, Kranti(90))
	assert.Equal(t, 1440.0, Kranti(120))
}

func TestSunriseSunset_PolarClamp(t *testing.T) {
	rise, set := sunriseSunset(80, 20)
	assert.InDelta(t, 0, rise, 1e-9)
	assert.InDelta(t, 24, set, 1e-9)

	rise, set = sunriseSunset(-80, 20)
	assert.InDelta(t, 12, rise, 1e-9)
	assert.InDelta(t, 12, set, 1e-9)
}

func referenceShadbalaInput() ShadbalaInput {
	return ShadbalaInput{
		Positions: referencePositions(),
		Cusps:     equalCusps(referenceAscendant),
		Kala:      referenceKalaInput(),
	}
}

func TestShadbala_Invariants(t *testing.T) {
	in := referenceShadbalaInput()
	in.Saptavargiya = newSaptavargiya().Calculate(in.Positions)

	categories := map[string]bool{
		CategoryExcellent: true, CategoryStrong: true, CategoryGood: true, CategoryAverage: true, CategoryWeak: true,
	}
	res := NewShadbalaCalculator(NewKalaCalculator()).Calculate(in)
	require.Len(t, res, 7)
	for p, r := range res {
		assert.True(t, r.StrengthPercentage >= 0 && r.StrengthPercentage <= 100, "%s percentage %v", p, r.StrengthPercentage)
		assert.True(t, categories[r.Category], "%s category %q", p, r.Category)
		assert.Equal(t, Category(r.Total/r.RequiredStrength), r.Category)
		assert.InDelta(t, r.Components.Sum(), r.Total, 1e-9)
		assert.InDelta(t, r.Total/60, r.Rupas, 1e-9)
		assert.LessOrEqual(t, r.Components.Sthana, 120.0)
		assert.LessOrEqual(t, r.Components.Dig, 60.0)
		assert.True(t, r.Components.Drik >= 0 && r.Components.Drik <= 30)
		assert.True(t, r.Sthana.Detailed)
		assert.Equal(t, in.Saptavargiya[p].Total, r.Sthana.Vargiya)
		assert.InDelta(t, r.Kala.Sum(), r.Components.Kala, 1e-9)
		assert.Equal(t, chestaBala[p], r.Components.Chesta)
		assert.Equal(t, naisargikaBala[p], r.Components.Naisargika)
	}
}

func TestSthana_SimplifiedWithoutSaptavargiya(t *testing.T) {
	sc := NewShadbalaCalculator(NewKalaCalculator())
	pos := referencePositions()
	cusps := equalCusps(referenceAscendant)

	sun := sc.Sthana(models.Sun, pos[models.Sun], cusps, nil)
	assert.False(t, sun.Detailed)
	assert.Equal(t, 20.0, sun.Vargiya)
	assert.Equal(t, 15.0, sun.OjaYugma)
	assert.Equal(t, 30.0, sun.Kendradi)
	assert.Equal(t, 15.0, sun.Drekkana)
	// 64.37 degrees from the debilitation point at Libra 10.
	assert.InDelta(t, (190-125.63)/3, sun.Uchcha, 1e-9)
	assert.InDelta(t, sun.Uchcha+20+15+30+15, sun.Uncapped, 1e-9)

	moon := sc.Sthana(models.Moon, pos[models.Moon], cusps, nil)
	assert.Equal(t, 10.0, moon.Vargiya)
}

func TestDig(t *testing.T) {
	sc := NewShadbalaCalculator(NewKalaCalculator())
	cusps := equalCusps(0)
	// The Sun is powerless on the 4th cusp and strongest on the 10th.
	assert.InDelta(t, 0, sc.Dig(models.Sun, 90, cusps), 1e-9)
	assert.InDelta(t, 60, sc.Dig(models.Sun, 270, cusps), 1e-9)
	assert.InDelta(t, 30, sc.Dig(models.Saturn, 90, cusps), 1e-9)
	assert.InDelta(t, 60, sc.Dig(models.Jupiter, 0, cusps), 1e-9)
	assert.InDelta(t, 0, sc.Dig(models.Venus, 270, cusps), 1e-9)
}

func TestDrik(t *testing.T) {
	sc := NewShadbalaCalculator(NewKalaCalculator())
	positions := map[models.Planet]models.SiderealPosition{
		models.Mars:    NewPosition(models.Mars, 10),
		models.Jupiter: NewPosition(models.Jupiter, 12),
		models.Saturn:  NewPosition(models.Saturn, 130),
		models.Sun:     NewPosition(models.Sun, 190),
	}
	// Mars: Jupiter conjunct (+5), Saturn trine (+3), Sun opposite (-2).
	assert.Equal(t, 21.0, sc.Drik(models.Mars, positions))
	// Jupiter: Mars conjunct (-5), Saturn trine (+3), Sun opposite (-2).
	assert.Equal(t, 11.0, sc.Drik(models.Jupiter, positions))

	crowded := map[models.Planet]models.SiderealPosition{}
	for _, p := range models.ClassicalPlanets {
		crowded[p] = NewPosition(p, 100)
	}
	crowded[models.Jupiter] = NewPosition(models.Jupiter, 300)
	crowded[models.Venus] = NewPosition(models.Venus, 300)
	assert.Equal(t, 0.0, sc.Drik(models.Sun, crowded))
}

func TestCategory(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{1.5, CategoryExcellent},
		{1.2, CategoryExcellent},
		{1.1, CategoryStrong},
		{1.0, CategoryStrong},
		{0.8, CategoryGood},
		{0.75, CategoryGood},
		{0.6, CategoryAverage},
		{0.5, CategoryAverage},
		{0.49, CategoryWeak},
		{0, CategoryWeak},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Category(tt.ratio), "ratio %v", tt.ratio)
	}
}

func TestClassify_PercentageCapped(t *testing.T) {
	r := Classify(models.Saturn, models.ShadbalaComponents{Sthana: 120, Dig: 60, Kala: 300}, models.SthanaBreakdown{}, models.KalaBreakdown{})
	assert.Equal(t, 480.0, r.Total)
	assert.Equal(t, 100.0, r.StrengthPercentage)
	assert.Equal(t, CategoryExcellent, r.Category)
}
