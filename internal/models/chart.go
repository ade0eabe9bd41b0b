package models

import "time"

// SiderealPosition is the canonical per-body placement computed once per chart.
type SiderealPosition struct {
	Planet         Planet  `json:"-"`
	Longitude      float64 `json:"longitude"`
	Sign           Sign    `json:"sign"`
	DegInSign      float64 `json:"degInSign"`
	NakshatraIndex int     `json:"nakshatraIndex"`
	Nakshatra      string  `json:"nakshatra"`
	NakshatraLord  Planet  `json:"nakshatraLord"`
	Pada           int     `json:"pada"`
}

// ChartMeta describes how the chart was computed.
type ChartMeta struct {
	JulianDayUT   float64 `json:"jd_ut"`
	Ayanamsa      string  `json:"ayanamsa"`
	AyanamsaValue float64 `json:"ayanamsa_value"`
	HouseSystem   string  `json:"house_system"`
	NodeType      string  `json:"node_type"`
	Precision     string  `json:"precision"`
	BirthLocal    string  `json:"birth_local"`
	BirthUTC      string  `json:"birth_utc"`
}

// HousePlacement is a body listed inside a house.
type HousePlacement struct {
	Name      string  `json:"name"`
	Abbr      string  `json:"abbr"`
	Sign      Sign    `json:"sign"`
	DegInSign float64 `json:"degInSign"`
}

// TransitEntry compares a body's natal and current placement.
type TransitEntry struct {
	Longitude      float64 `json:"longitude"`
	Sign           Sign    `json:"sign"`
	DegInSign      float64 `json:"degInSign"`
	NatalLongitude float64 `json:"natalLongitude"`
	NatalSign      Sign    `json:"natalSign"`
	HouseFromNatal int     `json:"houseFromNatal"`
	SignChanged    bool    `json:"signChanged"`
	Motion         float64 `json:"motion"`
	Error          string  `json:"error,omitempty"`
}

// Transits is the only time-dependent section of a chart.
type Transits struct {
	ComputedAt time.Time               `json:"computedAt"`
	Bodies     map[Planet]TransitEntry `json:"bodies"`
	Error      string                  `json:"error,omitempty"`
}

// PlanetAnalysis summarises one body's natal placement.
type PlanetAnalysis struct {
	House         int     `json:"house"`
	Sign          Sign    `json:"sign"`
	SignLord      Planet  `json:"signLord"`
	DegInSign     float64 `json:"degInSign"`
	Nakshatra     string  `json:"nakshatra"`
	NakshatraLord Planet  `json:"nakshatraLord"`
	Pada          int     `json:"pada"`
	OwnSign       bool    `json:"ownSign"`
	Exalted       bool    `json:"exalted"`
	Debilitated   bool    `json:"debilitated"`
}

// HouseAnalysis describes one bhava.
type HouseAnalysis struct {
	House         int      `json:"house"`
	Cusp          float64  `json:"cusp"`
	Sign          Sign     `json:"sign"`
	Lord          Planet   `json:"lord"`
	Occupants     []Planet `json:"occupants"`
	Significances []string `json:"significances"`
}

// NakshatraDetail is one row of the nakshatra table.
type NakshatraDetail struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Lord      Planet  `json:"lord"`
	Pada      int     `json:"pada"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Traversed float64 `json:"traversed"`
	Remaining float64 `json:"remaining"`
}

// ChartResult is the nested output of one chart computation.
type ChartResult struct {
	Meta             ChartMeta                     `json:"meta"`
	Ascendant        float64                       `json:"ascendant"`
	AscendantSign    Sign                          `json:"ascendantSign"`
	Houses           map[int]float64               `json:"houses"`
	Planets          map[Planet]SiderealPosition   `json:"planets"`
	PlanetsByHouse   map[int][]HousePlacement      `json:"planetsByHouse"`
	Transits         Transits                      `json:"transits"`
	Vimshottari      Vimshottari                   `json:"vimshottari"`
	PlanetAnalysis   map[Planet]PlanetAnalysis     `json:"planetAnalysis"`
	HouseAnalysis    []HouseAnalysis               `json:"houseAnalysis"`
	Nakshatras       map[Planet]NakshatraDetail    `json:"nakshatras"`
	DashaCalendar    []DashaYear                   `json:"dashaCalendar"`
	Shadbala         map[Planet]ShadbalaResult     `json:"shadbala"`
	Saptavargiya     map[Planet]SaptavargiyaResult `json:"saptavargiya"`
	Dignities        map[Planet]AuxiliaryDignity   `json:"dignities"`
	DivisionalCharts map[string]DivisionalChart    `json:"divisionalCharts"`
	Friendship       FriendshipTables              `json:"friendship"`
}
