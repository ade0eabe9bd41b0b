package service

import "vedic-backend/internal/models"

type compoundKey struct {
	permanent, temporary models.Relation
}

// compoundRules combines permanent and temporary relations (panchadha maitri).
var compoundRules = map[compoundKey]models.CompoundRelation{
	{models.Friend, models.Friend}:   models.ExtremeFriend,
	{models.Friend, models.Neutral}:  models.CompoundFriend,
	{models.Friend, models.Enemy}:    models.CompoundNeutral,
	{models.Neutral, models.Friend}:  models.CompoundFriend,
	{models.Neutral, models.Neutral}: models.CompoundNeutral,
	{models.Neutral, models.Enemy}:   models.CompoundEnemy,
	{models.Enemy, models.Friend}:    models.CompoundNeutral,
	{models.Enemy, models.Neutral}:   models.CompoundEnemy,
	{models.Enemy, models.Enemy}:     models.ExtremeEnemy,
}

var (
	temporaryFriendHouses = map[int]bool{2: true, 3: true, 4: true, 10: true, 11: true, 12: true}
	temporaryEnemyHouses  = map[int]bool{1: true, 5: true, 6: true, 7: true, 8: true, 9: true}
)

// FriendshipEngine builds the planetary relationship tables.
type FriendshipEngine struct{}

// NewFriendshipEngine creates a new engine
func NewFriendshipEngine() *FriendshipEngine {
	return &FriendshipEngine{}
}

// Permanent returns how a views b under the fixed classical table.
func (fe *FriendshipEngine) Permanent(a, b models.Planet) models.Relation {
	if a == b {
		return models.Self
	}
	rel := permanentFriendship[a]
	for _, f := range rel.friends {
		if f == b {
			return models.Friend
		}
	}
	for _, e := range rel.enemies {
		if e == b {
			return models.Enemy
		}
	}
	return models.Neutral
}

// TemporaryHouse is the house of signB counted with signA as house 1, using
// ((signB - signA) mod 12) + 2 wrapped into [1, 12].
func TemporaryHouse(signA, signB models.Sign) int {
	diff := int((signB - signA).Norm())
	return (diff+1)%12 + 1
}

// Temporary classifies b as seen from a by their current signs.
func (fe *FriendshipEngine) Temporary(signA, signB models.Sign) models.Relation {
	house := TemporaryHouse(signA, signB)
	switch {
	case temporaryFriendHouses[house]:
		return models.Friend
	case temporaryEnemyHouses[house]:
		return models.Enemy
	default:
		return models.Neutral
	}
}

// Compound combines a permanent and a temporary relation.
func (fe *FriendshipEngine) Compound(permanent, temporary models.Relation) models.CompoundRelation {
	if c, ok := compoundRules[compoundKey{permanent, temporary}]; ok {
		return c
	}
	return models.CompoundNeutral
}

// Tables builds the three tables from the rashi signs of the classical planets.
// Rows and columns cover only the planets present in signs.
func (fe *FriendshipEngine) Tables(signs map[models.Planet]models.Sign) models.FriendshipTables {
	present := make([]models.Planet, 0, len(models.ClassicalPlanets))
	for _, p := range models.ClassicalPlanets {
		if _, ok := signs[p]; ok {
			present = append(present, p)
		}
	}

	t := models.FriendshipTables{
		Permanent: make(map[models.Planet]map[models.Planet]models.Relation, len(present)),
		Temporary: make(map[models.Planet]map[models.Planet]models.Relation, len(present)),
		Compound:  make(map[models.Planet]map[models.Planet]models.CompoundRelation, len(present)),
	}
	for _, a := range present {
		t.Permanent[a] = make(map[models.Planet]models.Relation, len(present)-1)
		t.Temporary[a] = make(map[models.Planet]models.Relation, len(present)-1)
		t.Compound[a] = make(map[models.Planet]models.CompoundRelation, len(present)-1)
		for _, b := range present {
			if a == b {
				continue
			}
			perm := fe.Permanent(a, b)
			temp := fe.Temporary(signs[a], signs[b])
			t.Permanent[a][b] = perm
			t.Temporary[a][b] = temp
			t.Compound[a][b] = fe.Compound(perm, temp)
		}
	}
	return t
}
