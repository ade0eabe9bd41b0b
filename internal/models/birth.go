package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidInput marks a chart request that cannot be computed.
var ErrInvalidInput = errors.New("invalid input")

// BirthContext is the immutable input to one chart computation.
type BirthContext struct {
	// LocalTime carries the civil wall-clock reading; its location is ignored
	// in favour of UTCOffset.
	LocalTime   time.Time
	Latitude    float64
	Longitude   float64
	UTCOffset   float64 // hours east of Greenwich
	Ayanamsa    string
	HouseSystem string
	NodeType    string
}

// Local returns the birth instant with its wall clock in a fixed zone of UTCOffset.
func (b BirthContext) Local() time.Time {
	offset := int(math.Round(b.UTCOffset * 3600))
	zone := time.FixedZone(formatOffset(b.UTCOffset), offset)
	t := b.LocalTime
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), zone)
}

// UT returns the birth instant in UTC.
func (b BirthContext) UT() time.Time {
	return b.Local().UTC()
}

// Validate rejects inputs the pipeline cannot place on the sky.
func (b BirthContext) Validate() error {
	if b.LocalTime.IsZero() {
		return fmt.Errorf("%w: missing date-time", ErrInvalidInput)
	}
	if !finite(b.Latitude) || b.Latitude < -90 || b.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidInput, b.Latitude)
	}
	if !finite(b.Longitude) || b.Longitude < -180 || b.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidInput, b.Longitude)
	}
	if !finite(b.UTCOffset) || b.UTCOffset < -14 || b.UTCOffset > 14 {
		return fmt.Errorf("%w: utc offset %v out of range [-14, 14]", ErrInvalidInput, b.UTCOffset)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func formatOffset(hours float64) string {
	sign := "+"
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	total := int(math.Round(hours * 60))
	return fmt.Sprintf("UTC%s%02d:%02d", sign, total/60, total%60)
}
