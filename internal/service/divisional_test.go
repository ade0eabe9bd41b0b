package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedic-backend/internal/models"
)

func TestPlace_SignAlwaysInRange(t *testing.T) {
	dc := NewDivisionalCalculator()
	for _, n := range append([]int{1}, Divisions...) {
		for lon := 0.0; lon < 360; lon += 0.01 {
			p, err := dc.PlaceLongitude(n, lon)
			require.NoError(t, err, "D%d at %v", n, lon)
			if p.Sign < models.Aries || p.Sign > models.Pisces {
				t.Fatalf("D%d at %v: sign %d out of range", n, lon, p.Sign)
			}
		}
	}
}

func TestPlace_KnownPlacements(t *testing.T) {
	dc := NewDivisionalCalculator()
	tests := []struct {
		name  string
		n     int
		lon   float64
		sign  models.Sign
		ruler models.Planet
	}{
		{"hora odd first half", 2, 125.63, models.Leo, models.Sun},
		{"hora odd second half", 2, 140, models.Cancer, models.Moon},
		{"hora even first half", 2, 217.35, models.Cancer, models.Moon},
		{"drekkana first", 3, 125.63, models.Leo, models.Sun},
		{"drekkana third", 3, 145, models.Aries, models.Mars},
		{"saptamsa odd", 7, 125.63, models.Virgo, models.Mercury},
		{"saptamsa even", 7, 217.35, models.Gemini, models.Mercury},
		{"navamsa fire", 9, 125.63, models.Taurus, models.Venus},
		{"navamsa water", 9, 217.35, models.Virgo, models.Mercury},
		{"navamsa earth", 9, 30.5, models.Capricorn, models.Saturn},
		{"navamsa air", 9, 89.9, models.Gemini, models.Mercury},
		{"dwadasamsa", 12, 125.63, models.Libra, models.Venus},
		{"trimsamsa odd", 30, 125.63, models.Aquarius, models.Saturn},
		{"trimsamsa even", 30, 217.35, models.Virgo, models.Mercury},
		{"trimsamsa odd last", 30, 29.99, models.Libra, models.Venus},
		{"trimsamsa even last", 30, 59.99, models.Scorpio, models.Mars},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := dc.PlaceLongitude(tt.n, tt.lon)
			require.NoError(t, err)
			assert.Equal(t, tt.sign, p.Sign)
			assert.Equal(t, tt.ruler, p.Ruler)
			assert.Equal(t, divisionalDegree, p.Degree)
		})
	}
}

func TestPlace_RashiIsIdentity(t *testing.T) {
	dc := NewDivisionalCalculator()
	p, err := dc.Place(1, models.Scorpio, 7.35)
	require.NoError(t, err)
	assert.Equal(t, models.Scorpio, p.Sign)
	assert.Equal(t, 7.35, p.Degree)
	assert.Equal(t, models.Mars, p.Ruler)
}

func TestPlace_Errors(t *testing.T) {
	dc := NewDivisionalCalculator()

	_, err := dc.Place(5, models.Aries, 10)
	assert.ErrorIs(t, err, ErrUnknownDivision)

	for _, deg := range []float64{math.NaN(), math.Inf(1), -1, 30} {
		_, err = dc.Place(9, models.Aries, deg)
		assert.ErrorIs(t, err, ErrBadPosition, "deg %v", deg)
	}

	_, err = dc.PlaceLongitude(9, math.NaN())
	assert.ErrorIs(t, err, ErrBadPosition)
}

func TestChart_GroupsFromDivisionalLagna(t *testing.T) {
	dc := NewDivisionalCalculator()
	chart := dc.Chart(9, referencePositions(), referenceAscendant)

	assert.Equal(t, "Navamsa", chart.Name)
	require.Contains(t, chart.Placements, models.Lagna)
	lagna := chart.Placements[models.Lagna]
	assert.Empty(t, lagna.Error)

	total := 0
	for h, bodies := range chart.ByHouse {
		for _, p := range bodies {
			want := int((chart.Placements[p].Sign-lagna.Sign).Norm()) + 1
			assert.Equal(t, want, h, "%s", p)
		}
		total += len(bodies)
	}
	assert.Equal(t, len(models.AllPlanets), total)
	assert.Len(t, chart.ByHouse, 12)
}

func TestChart_MarksFailedBody(t *testing.T) {
	dc := NewDivisionalCalculator()
	positions := referencePositions()
	bad := positions[models.Mars]
	bad.DegInSign = math.NaN()
	positions[models.Mars] = bad

	chart := dc.Chart(3, positions, referenceAscendant)
	assert.NotEmpty(t, chart.Placements[models.Mars].Error)
	assert.Empty(t, chart.Placements[models.Sun].Error)
	for _, bodies := range chart.ByHouse {
		assert.NotContains(t, bodies, models.Mars)
	}
}

func TestAllCharts_Keys(t *testing.T) {
	charts := NewDivisionalCalculator().AllCharts(referencePositions(), referenceAscendant)
	assert.Len(t, charts, 6)
	for _, key := range []string{"D2", "D3", "D7", "D9", "D12", "D30"} {
		assert.Contains(t, charts, key)
	}
}
