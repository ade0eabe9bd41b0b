package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OptionalFloat decodes a JSON number, a numeric string, null or "".
type OptionalFloat struct {
	Value float64
	Set   bool
}

// Float returns an OptionalFloat holding v.
func Float(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	*o = OptionalFloat{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
		}
		*o = Float(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %s is not a number", ErrInvalidInput, data)
	}
	*o = Float(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ChartRequest is the body of POST /api/chart.
type ChartRequest struct {
	DateTime    string        `json:"datetime"`
	Place       string        `json:"place,omitempty"`
	Lat         OptionalFloat `json:"lat"`
	Lon         OptionalFloat `json:"lon"`
	TZOffset    OptionalFloat `json:"tz_offset"`
	Ayanamsa    string        `json:"ayanamsa,omitempty"`
	HouseSystem string        `json:"house_system,omitempty"`
	NodeType    string        `json:"node_type,omitempty"`
	// CalendarFromYear overrides the first year of the dasha calendar.
	CalendarFromYear int `json:"calendar_from_year,omitempty"`
}

// TZResponse is the data of GET /api/tz.
type TZResponse struct {
	TZOffset float64 `json:"tz_offset"`
}

// Envelope wraps every API response.
type Envelope struct {
	OK        bool        `json:"ok"`
	RequestID string      `json:"requestId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Code      string      `json:"code,omitempty"`
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseLocalDateTime reads an ISO-8601 civil date-time without zone. A zone
// suffix, if present, is dropped and only the wall clock is kept.
func ParseLocalDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: missing date-time", ErrInvalidInput)
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date-time %q", ErrInvalidInput, s)
}
