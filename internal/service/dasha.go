package service

import (
	"math"
	"time"

	g "vedic-backend/internal/geometry"
	"vedic-backend/internal/models"
)

// daysPerYear converts fractional dasha years to elapsed time.
const daysPerYear = 365.2425

// DashaBuilder generates the three-level Vimshottari tree.
type DashaBuilder struct{}

// NewDashaBuilder creates a new builder
func NewDashaBuilder() *DashaBuilder {
	return &DashaBuilder{}
}

// Build derives the nine mahadashas, each with nine antardashas of nine
// pratyantardashas, from the Moon's sidereal longitude at birth.
func (db *DashaBuilder) Build(birth time.Time, moonLon float64) models.Vimshottari {
	moonLon = g.DegNorm(moonLon)
	idx := NakshatraIndex(moonLon)
	lord := NakshatraLord(idx)
	total := vimshottariYears[lord]

	offset := moonLon - float64(idx)*NakshatraSpan
	remaining := total * (1 - offset/NakshatraSpan)
	elapsed := total - remaining

	start := birth
	whole := math.Floor(elapsed)
	if whole != 0 {
		start = addYearsCalendar(start, -int(whole))
	}
	if frac := elapsed - whole; math.Abs(frac) > 1e-9 {
		start = addYearsFractional(start, -frac)
	}

	v := models.Vimshottari{
		NakshatraIndex:      idx,
		NakshatraLord:       lord,
		BalanceAtBirthYears: remaining,
		Mahadashas:          make([]models.DashaPeriod, 0, 9),
	}
	cur := start
	for _, md := range rotateSequence(lord) {
		years := vimshottariYears[md]
		end := addYearsCalendar(cur, int(years))
		v.Mahadashas = append(v.Mahadashas, models.DashaPeriod{
			Lord:     md,
			Start:    cur,
			End:      end,
			Years:    years,
			Children: subPeriods(md, cur, end, years, 2),
		})
		cur = end
	}
	return v
}

// subPeriods splits [start, end) among the nine lords starting at parent.
// depth counts the levels still to generate below the parent.
func subPeriods(parent models.Planet, start, end time.Time, years float64, depth int) []models.DashaPeriod {
	if depth == 0 {
		return nil
	}
	seq := rotateSequence(parent)
	out := make([]models.DashaPeriod, 0, len(seq))
	cur := start
	for i, lord := range seq {
		span := years * vimshottariYears[lord] / vimshottariCycle
		next := addYearsFractional(cur, span)
		if i == len(seq)-1 {
			next = end
		}
		out = append(out, models.DashaPeriod{
			Lord:     lord,
			Start:    cur,
			End:      next,
			Years:    span,
			Children: subPeriods(lord, cur, next, span, depth-1),
		})
		cur = next
	}
	return out
}

func rotateSequence(first models.Planet) []models.Planet {
	start := 0
	for i, p := range vimshottariSequence {
		if p == first {
			start = i
			break
		}
	}
	out := make([]models.Planet, 0, len(vimshottariSequence))
	out = append(out, vimshottariSequence[start:]...)
	return append(out, vimshottariSequence[:start]...)
}

// addYearsCalendar moves t by whole calendar years; Feb 29 lands on Feb 28 in common years.
func addYearsCalendar(t time.Time, years int) time.Time {
	y := t.Year() + years
	m, d := t.Month(), t.Day()
	if m == time.February && d == 29 && !isLeap(y) {
		d = 28
	}
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func addYearsFractional(t time.Time, years float64) time.Time {
	return t.Add(time.Duration(years * daysPerYear * 24 * float64(time.Hour)))
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// ActiveAt returns the period in periods containing t, or false.
func ActiveAt(periods []models.DashaPeriod, t time.Time) (models.DashaPeriod, bool) {
	for _, p := range periods {
		if !t.Before(p.Start) && t.Before(p.End) {
			return p, true
		}
	}
	return models.DashaPeriod{}, false
}
