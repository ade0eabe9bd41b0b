package places

import (
	"context"
	"fmt"
	"math"
	"time"
)

// OffsetResolver returns the UTC offset in hours in force at a civil
// date-time and location.
type OffsetResolver interface {
	Offset(ctx context.Context, local time.Time, lat, lon float64) (float64, error)
}

// LongitudeResolver estimates the offset from the mean solar time of the
// longitude, rounded to the nearest half hour. It ignores political zones
// and daylight saving.
type LongitudeResolver struct{}

// Offset implements OffsetResolver.
func (LongitudeResolver) Offset(_ context.Context, _ time.Time, lat, lon float64) (float64, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return 0, fmt.Errorf("latitude %v out of range", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return 0, fmt.Errorf("longitude %v out of range", lon)
	}
	offset := math.Round(lon/15*2) / 2
	if offset == 0 {
		// avoid -0 in JSON
		offset = 0
	}
	return offset, nil
}
