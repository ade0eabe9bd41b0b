package service

import (
	"time"

	"vedic-backend/internal/models"
)

// Change levels reported in a calendar year.
const (
	LevelMahadasha       = "mahadasha"
	LevelAntardasha      = "antardasha"
	LevelPratyantardasha = "pratyantardasha"
)

// CalendarBuilder lays the dasha tree out year by year.
type CalendarBuilder struct{}

// NewCalendarBuilder creates a new builder
func NewCalendarBuilder() *CalendarBuilder {
	return &CalendarBuilder{}
}

// Build returns one row per year starting on January 1 of fromYear in loc.
func (cb *CalendarBuilder) Build(v models.Vimshottari, fromYear, years int, loc *time.Location) []models.DashaYear {
	if len(v.Mahadashas) == 0 || years <= 0 {
		return []models.DashaYear{}
	}
	out := make([]models.DashaYear, 0, years)
	for y := fromYear; y < fromYear+years; y++ {
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		end := start.AddDate(1, 0, 0)
		md, ad := lordsAt(v.Mahadashas, start)
		row := models.DashaYear{
			Year:       y,
			Mahadasha:  md.Lord,
			Antardasha: ad.Lord,
			Changes:    changesBetween(v.Mahadashas, start, end),
			Quarters:   make([]models.DashaQuarter, 0, 4),
		}
		for q := 0; q < 4; q++ {
			qs := start.AddDate(0, 3*q, 0)
			qe := qs.AddDate(0, 3, 0)
			qmd, qad := lordsAt(v.Mahadashas, qs)
			row.Quarters = append(row.Quarters, models.DashaQuarter{
				Quarter:          q + 1,
				Start:            qs,
				End:              qe,
				Mahadasha:        qmd.Lord,
				Antardasha:       qad.Lord,
				Pratyantardashas: overlapping(v.Mahadashas, qs, qe),
			})
		}
		out = append(out, row)
	}
	return out
}

// periodAt is ActiveAt clamped to the ends of the timeline.
func periodAt(periods []models.DashaPeriod, t time.Time) models.DashaPeriod {
	if p, ok := ActiveAt(periods, t); ok {
		return p
	}
	if t.Before(periods[0].Start) {
		return periods[0]
	}
	return periods[len(periods)-1]
}

func lordsAt(mds []models.DashaPeriod, t time.Time) (models.DashaPeriod, models.DashaPeriod) {
	md := periodAt(mds, t)
	if len(md.Children) == 0 {
		return md, md
	}
	return md, periodAt(md.Children, t)
}

// changesBetween lists every period of any level that starts in [start, end), in time order.
func changesBetween(mds []models.DashaPeriod, start, end time.Time) []models.DashaChange {
	changes := []models.DashaChange{}
	in := func(t time.Time) bool { return !t.Before(start) && t.Before(end) }
	for _, md := range mds {
		if !md.End.After(start) || !md.Start.Before(end) {
			continue
		}
		if in(md.Start) {
			changes = append(changes, models.DashaChange{Level: LevelMahadasha, Lord: md.Lord, Start: md.Start, Path: []models.Planet{md.Lord}})
		}
		for _, ad := range md.Children {
			if !ad.End.After(start) || !ad.Start.Before(end) {
				continue
			}
			if in(ad.Start) {
				changes = append(changes, models.DashaChange{Level: LevelAntardasha, Lord: ad.Lord, Start: ad.Start, Path: []models.Planet{md.Lord, ad.Lord}})
			}
			for _, pd := range ad.Children {
				if in(pd.Start) {
					changes = append(changes, models.DashaChange{Level: LevelPratyantardasha, Lord: pd.Lord, Start: pd.Start, Path: []models.Planet{md.Lord, ad.Lord, pd.Lord}})
				}
			}
		}
	}
	return changes
}

// overlapping lists the pratyantardasha lords whose periods intersect [start, end).
func overlapping(mds []models.DashaPeriod, start, end time.Time) []models.Planet {
	lords := []models.Planet{}
	for _, md := range mds {
		if !md.End.After(start) || !md.Start.Before(end) {
			continue
		}
		for _, ad := range md.Children {
			if !ad.End.After(start) || !ad.Start.Before(end) {
				continue
			}
			for _, pd := range ad.Children {
				if pd.End.After(start) && pd.Start.Before(end) {
					lords = append(lords, pd.Lord)
				}
			}
		}
	}
	return lords
}
