package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vedic-backend/internal/models"
)

func TestPermanent(t *testing.T) {
	fe := NewFriendshipEngine()
	assert.Equal(t, models.Friend, fe.Permanent(models.Sun, models.Moon))
	assert.Equal(t, models.Enemy, fe.Permanent(models.Sun, models.Venus))
	assert.Equal(t, models.Neutral, fe.Permanent(models.Sun, models.Mercury))
	assert.Equal(t, models.Self, fe.Permanent(models.Saturn, models.Saturn))
	// The table is not symmetric.
	assert.Equal(t, models.Enemy, fe.Permanent(models.Mercury, models.Moon))
	assert.Equal(t, models.Friend, fe.Permanent(models.Moon, models.Mercury))
}

func TestTemporaryHouse(t *testing.T) {
	assert.Equal(t, 2, TemporaryHouse(models.Aries, models.Aries))
	assert.Equal(t, 3, TemporaryHouse(models.Aries, models.Taurus))
	assert.Equal(t, 12, TemporaryHouse(models.Aries, models.Aquarius))
	assert.Equal(t, 1, TemporaryHouse(models.Aries, models.Pisces))
	assert.Equal(t, 1, TemporaryHouse(models.Taurus, models.Aries))

	for a := models.Aries; a <= models.Pisces; a++ {
		for b := models.Aries; b <= models.Pisces; b++ {
			h := TemporaryHouse(a, b)
			assert.True(t, h >= 1 && h <= 12, "%s->%s = %d", a, b, h)
		}
	}
}

func TestTemporary(t *testing.T) {
	fe := NewFriendshipEngine()
	assert.Equal(t, models.Friend, fe.Temporary(models.Leo, models.Leo))
	assert.Equal(t, models.Friend, fe.Temporary(models.Leo, models.Virgo))
	assert.Equal(t, models.Enemy, fe.Temporary(models.Leo, models.Cancer))
	assert.Equal(t, models.Enemy, fe.Temporary(models.Aries, models.Virgo))
}

func TestCompound(t *testing.T) {
	fe := NewFriendshipEngine()
	tests := []struct {
		perm, temp models.Relation
		want       models.CompoundRelation
	}{
		{models.Friend, models.Friend, models.ExtremeFriend},
		{models.Friend, models.Enemy, models.CompoundNeutral},
		{models.Neutral, models.Friend, models.CompoundFriend},
		{models.Neutral, models.Enemy, models.CompoundEnemy},
		{models.Enemy, models.Friend, models.CompoundNeutral},
		{models.Enemy, models.Enemy, models.ExtremeEnemy},
		{models.Self, models.Friend, models.CompoundNeutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fe.Compound(tt.perm, tt.temp), "%s+%s", tt.perm, tt.temp)
	}
	assert.Equal(t, "EF", models.ExtremeFriend.Code())
	assert.Equal(t, "EE", models.ExtremeEnemy.Code())
}

func TestTables_OmitSelfPairs(t *testing.T) {
	signs := map[models.Planet]models.Sign{}
	for p, pos := range referencePositions() {
		signs[p] = pos.Sign
	}
	tables := NewFriendshipEngine().Tables(signs)

	for _, a := range models.ClassicalPlanets {
		assert.Len(t, tables.Permanent[a], 6)
		assert.Len(t, tables.Temporary[a], 6)
		assert.Len(t, tables.Compound[a], 6)
		assert.NotContains(t, tables.Compound[a], a)
	}
	// Sun in Leo, Moon in Scorpio: house 5 from the Sun, a temporary enemy,
	// while the Moon is a permanent friend.
	assert.Equal(t, models.Enemy, tables.Temporary[models.Sun][models.Moon])
	assert.Equal(t, models.CompoundNeutral, tables.Compound[models.Sun][models.Moon])
}

func TestTables_OnlyPresentPlanets(t *testing.T) {
	signs := map[models.Planet]models.Sign{}
	for p, pos := range referencePositions() {
		if p != models.Mars {
			signs[p] = pos.Sign
		}
	}
	tables := NewFriendshipEngine().Tables(signs)

	assert.Len(t, tables.Compound, 6)
	assert.NotContains(t, tables.Permanent, models.Mars)
	assert.NotContains(t, tables.Temporary, models.Mars)
	assert.NotContains(t, tables.Compound, models.Mars)
	for a, row := range tables.Compound {
		assert.Len(t, row, 5, "%s", a)
		assert.NotContains(t, row, models.Mars, "%s", a)
	}
	assert.Empty(t, NewFriendshipEngine().Tables(nil).Compound)
}
