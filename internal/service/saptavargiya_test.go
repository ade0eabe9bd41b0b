package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedic-backend/internal/models"
)

func newSaptavargiya() *SaptavargiyaCalculator {
	return NewSaptavargiyaCalculator(NewDivisionalCalculator(), NewFriendshipEngine())
}

func TestSaptavargiya_TotalsInRange(t *testing.T) {
	res := newSaptavargiya().Calculate(referencePositions())
	require.Len(t, res, 7)
	for p, r := range res {
		require.Len(t, r.Charts, 7, "%s", p)
		assert.GreaterOrEqual(t, r.Total, 7*1.875, "%s", p)
		assert.LessOrEqual(t, r.Total, 7*45.0, "%s", p)

		sum := 0.0
		for _, c := range r.Charts {
			assert.NotEqual(t, DignityError, c.Dignity)
			sum += c.Points
		}
		assert.InDelta(t, sum, r.Total, 1e-9)
	}
}

func TestSaptavargiya_ChartOrder(t *testing.T) {
	res := newSaptavargiya().Calculate(referencePositions())
	names := []string{}
	for _, c := range res[models.Sun].Charts {
		names = append(names, c.Chart)
	}
	assert.Equal(t, []string{"D1", "D2", "D3", "D7", "D9", "D12", "D30"}, names)
}

func TestSaptavargiya_KnownCells(t *testing.T) {
	res := newSaptavargiya().Calculate(referencePositions())

	sun := res[models.Sun].Charts
	// Leo 5 38: mooltrikona in the rashi, own sign in hora and drekkana.
	assert.Equal(t, DignityMooltrikona, sun[0].Dignity)
	assert.Equal(t, 45.0, sun[0].Points)
	assert.Equal(t, DignityOwn, sun[1].Dignity)
	assert.Equal(t, DignityOwn, sun[2].Dignity)

	// Moon in Scorpio: Mars is a permanent neutral and, in Gemini, a
	// temporary enemy.
	assert.Equal(t, DignityEnemy, res[models.Moon].Charts[0].Dignity)
	assert.Equal(t, 3.75, res[models.Moon].Charts[0].Points)
}

func TestSaptavargiya_MooltrikonaOnlyInRashi(t *testing.T) {
	positions := referencePositions()
	// Moon at Taurus 10: mooltrikona in the rashi; D12 puts it in Virgo.
	positions[models.Moon] = NewPosition(models.Moon, 40)
	res := newSaptavargiya().Calculate(positions)
	assert.Equal(t, DignityMooltrikona, res[models.Moon].Charts[0].Dignity)
	for _, c := range res[models.Moon].Charts[1:] {
		assert.NotEqual(t, DignityMooltrikona, c.Dignity, c.Chart)
	}
}

func TestSaptavargiya_ErrorCellsScoreZero(t *testing.T) {
	positions := referencePositions()
	bad := positions[models.Jupiter]
	bad.DegInSign = math.NaN()
	positions[models.Jupiter] = bad

	res := newSaptavargiya().Calculate(positions)
	jup := res[models.Jupiter]
	assert.Zero(t, jup.Total)
	for _, c := range jup.Charts {
		assert.Equal(t, DignityError, c.Dignity)
		assert.NotEmpty(t, c.Error)
	}
	assert.Positive(t, res[models.Sun].Total)
}

func TestSaptavargiya_MissingLordIsAnErrorCell(t *testing.T) {
	positions := referencePositions()
	delete(positions, models.Mars)

	res := newSaptavargiya().Calculate(positions)
	require.Len(t, res, 6)
	assert.NotContains(t, res, models.Mars)

	// Moon in Scorpio: the sign's lord has no row in the compound table.
	moon := res[models.Moon].Charts[0]
	assert.Equal(t, DignityError, moon.Dignity)
	assert.Zero(t, moon.Points)
	assert.Contains(t, moon.Error, "no compound relation")

	assert.Equal(t, DignityMooltrikona, res[models.Sun].Charts[0].Dignity)
}
