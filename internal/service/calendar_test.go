package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedic-backend/internal/models"
)

func TestCalendar_Shape(t *testing.T) {
	v := NewDashaBuilder().Build(referenceBirth, referenceLongitudes[models.Moon])
	rows := NewCalendarBuilder().Build(v, 2024, 10, referenceBirth.Location())

	require.Len(t, rows, 10)
	for i, row := range rows {
		assert.Equal(t, 2024+i, row.Year)
		require.Len(t, row.Quarters, 4)

		yearStart := time.Date(row.Year, time.January, 1, 0, 0, 0, 0, referenceBirth.Location())
		md, ok := ActiveAt(v.Mahadashas, yearStart)
		require.True(t, ok)
		assert.Equal(t, md.Lord, row.Mahadasha)
		ad, ok := ActiveAt(md.Children, yearStart)
		require.True(t, ok)
		assert.Equal(t, ad.Lord, row.Antardasha)

		for q, quarter := range row.Quarters {
			assert.Equal(t, q+1, quarter.Quarter)
			assert.True(t, quarter.Start.Equal(yearStart.AddDate(0, 3*q, 0)))
			assert.NotEmpty(t, quarter.Pratyantardashas)
		}
		assert.True(t, row.Quarters[3].End.Equal(yearStart.AddDate(1, 0, 0)))

		for j := 1; j < len(row.Changes); j++ {
			assert.False(t, row.Changes[j].Start.Before(row.Changes[j-1].Start))
		}
		for _, c := range row.Changes {
			assert.Equal(t, row.Year, c.Start.In(referenceBirth.Location()).Year())
			assert.Equal(t, c.Lord, c.Path[len(c.Path)-1])
		}
	}
}

func TestCalendar_ReportsMahadashaChange(t *testing.T) {
	v := NewDashaBuilder().Build(referenceBirth, referenceLongitudes[models.Moon])
	second := v.Mahadashas[1]
	rows := NewCalendarBuilder().Build(v, second.Start.Year(), 1, referenceBirth.Location())
	require.Len(t, rows, 1)

	var levels []string
	for _, c := range rows[0].Changes {
		if c.Start.Equal(second.Start) {
			levels = append(levels, c.Level)
		}
	}
	assert.Equal(t, []string{LevelMahadasha, LevelAntardasha, LevelPratyantardasha}, levels)
}

func TestCalendar_ClampsOutsideTimeline(t *testing.T) {
	v := NewDashaBuilder().Build(referenceBirth, referenceLongitudes[models.Moon])
	rows := NewCalendarBuilder().Build(v, 1900, 1, time.UTC)
	require.Len(t, rows, 1)
	assert.Equal(t, v.Mahadashas[0].Lord, rows[0].Mahadasha)
	assert.Empty(t, rows[0].Changes)

	assert.Empty(t, NewCalendarBuilder().Build(models.Vimshottari{}, 2024, 10, time.UTC))
}
