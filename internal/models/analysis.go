package models

import "time"

// DashaPeriod is one node of the Vimshottari tree. Children exactly partition [Start, End).
type DashaPeriod struct {
	Lord     Planet        `json:"lord"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Years    float64       `json:"years"`
	Children []DashaPeriod `json:"children,omitempty"`
}

// Vimshottari is the full three-level dasha timeline.
type Vimshottari struct {
	NakshatraIndex      int           `json:"nakshatraIndex"`
	NakshatraLord       Planet        `json:"nakshatraLord"`
	BalanceAtBirthYears float64       `json:"balanceAtBirthYears"`
	Mahadashas          []DashaPeriod `json:"mahadashas"`
}

// DashaChange records a sub-period beginning inside a calendar year.
type DashaChange struct {
	Level string    `json:"level"`
	Lord  Planet    `json:"lord"`
	Start time.Time `json:"start"`
	Path  []Planet  `json:"path"`
}

// DashaQuarter summarises the periods running during one quarter.
type DashaQuarter struct {
	Quarter          int       `json:"quarter"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	Mahadasha        Planet    `json:"mahadasha"`
	Antardasha       Planet    `json:"antardasha"`
	Pratyantardashas []Planet  `json:"pratyantardashas"`
}

// DashaYear is one row of the yearly dasha calendar.
type DashaYear struct {
	Year       int            `json:"year"`
	Mahadasha  Planet         `json:"mahadasha"`
	Antardasha Planet         `json:"antardasha"`
	Changes    []DashaChange  `json:"changes"`
	Quarters   []DashaQuarter `json:"quarters"`
}

// DivisionalPlacement is a body's sign in one varga. Degree is a sign-midpoint placeholder.
type DivisionalPlacement struct {
	Sign   Sign    `json:"sign"`
	Degree float64 `json:"degree"`
	Ruler  Planet  `json:"ruler"`
	Error  string  `json:"error,omitempty"`
}

// DivisionalChart is one harmonic chart for every body plus the Lagna.
type DivisionalChart struct {
	Division   int                            `json:"division"`
	Name       string                         `json:"name"`
	Placements map[Planet]DivisionalPlacement `json:"placements"`
	ByHouse    map[int][]Planet               `json:"byHouse"`
}

// Relation is a permanent or temporary friendship classification.
type Relation int

const (
	Neutral Relation = iota
	Friend
	Enemy
	Self
)

var relationNames = [...]string{"Neutral", "Friend", "Enemy", "Self"}

func (r Relation) String() string { return relationNames[r] }

// MarshalText serialises a relation by name.
func (r Relation) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// CompoundRelation is the five-fold relationship obtained by combining permanent and temporary.
type CompoundRelation int

const (
	CompoundNeutral CompoundRelation = iota
	ExtremeFriend
	CompoundFriend
	CompoundEnemy
	ExtremeEnemy
)

var compoundNames = [...]string{"Neutral", "Extreme Friend", "Friend", "Enemy", "Extreme Enemy"}
var compoundCodes = [...]string{"N", "EF", "F", "E", "EE"}

func (c CompoundRelation) String() string { return compoundNames[c] }

// Code returns the short code (EF, F, N, E, EE).
func (c CompoundRelation) Code() string { return compoundCodes[c] }

// MarshalText serialises a compound relation by its code.
func (c CompoundRelation) MarshalText() ([]byte, error) { return []byte(c.Code()), nil }

// FriendshipTables holds the three 7x7 matrices; self pairs are omitted.
type FriendshipTables struct {
	Permanent map[Planet]map[Planet]Relation         `json:"permanent"`
	Temporary map[Planet]map[Planet]Relation         `json:"temporary"`
	Compound  map[Planet]map[Planet]CompoundRelation `json:"compound"`
}

// VargaDignity is one cell of the Saptavargiya grid.
type VargaDignity struct {
	Chart   string  `json:"chart"`
	Sign    Sign    `json:"sign"`
	Dignity string  `json:"dignity"`
	Points  float64 `json:"points"`
	Error   string  `json:"error,omitempty"`
}

// SaptavargiyaResult is a planet's seven-chart dignity score.
type SaptavargiyaResult struct {
	Charts []VargaDignity `json:"charts"`
	Total  float64        `json:"total"`
}

// AuxiliaryDignity collects the odd/even, angular and decanate scores.
type AuxiliaryDignity struct {
	Yugmayugma float64 `json:"yugmayugma"`
	Kendra     float64 `json:"kendra"`
	Dreshkon   float64 `json:"dreshkon"`
}

// ShadbalaComponents are the six strengths in virupas.
type ShadbalaComponents struct {
	Sthana     float64 `json:"sthana_bala"`
	Dig        float64 `json:"dig_bala"`
	Kala       float64 `json:"kala_bala"`
	Chesta     float64 `json:"chesta_bala"`
	Naisargika float64 `json:"naisargika_bala"`
	Drik       float64 `json:"drik_bala"`
}

// Sum returns the composite total.
func (c ShadbalaComponents) Sum() float64 {
	return c.Sthana + c.Dig + c.Kala + c.Chesta + c.Naisargika + c.Drik
}

// SthanaBreakdown itemises positional strength before the cap.
type SthanaBreakdown struct {
	Uchcha   float64 `json:"uchcha_bala"`
	Vargiya  float64 `json:"vargiya_bala"`
	OjaYugma float64 `json:"oja_yugma_bala"`
	Kendradi float64 `json:"kendradi_bala"`
	Drekkana float64 `json:"drekkana_bala"`
	Uncapped float64 `json:"uncapped_total"`
	Detailed bool    `json:"detailed"`
}

// KalaBreakdown itemises temporal strength.
type KalaBreakdown struct {
	Nathonnatha float64 `json:"nathonnatha_bala"`
	Paksha      float64 `json:"paksha_bala"`
	Tribhaga    float64 `json:"tribhaga_bala"`
	Abda        float64 `json:"abda_bala"`
	Masa        float64 `json:"masa_bala"`
	Vara        float64 `json:"vara_bala"`
	Hora        float64 `json:"hora_bala"`
	Ayana       float64 `json:"ayana_bala"`
	Yuddha      float64 `json:"yuddha_bala"`
}

// Sum returns the Kala Bala total.
func (k KalaBreakdown) Sum() float64 {
	return k.Nathonnatha + k.Paksha + k.Tribhaga + k.Abda + k.Masa + k.Vara + k.Hora + k.Ayana + k.Yuddha
}

// ShadbalaResult is a planet's six-fold strength and its classification.
type ShadbalaResult struct {
	Total              float64            `json:"total_shadbala"`
	Rupas              float64            `json:"rupas"`
	RequiredStrength   float64            `json:"required_strength"`
	StrengthPercentage float64            `json:"strength_percentage"`
	Category           string             `json:"category"`
	Components         ShadbalaComponents `json:"components"`
	Sthana             SthanaBreakdown    `json:"sthana_bala_breakdown"`
	Kala               KalaBreakdown      `json:"kala_bala_breakdown"`
}
