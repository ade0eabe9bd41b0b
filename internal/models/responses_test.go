package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalFloat_Decode(t *testing.T) {
	tests := []struct {
		in   string
		want OptionalFloat
	}{
		{`{"v": 11.5}`, Float(11.5)},
		{`{"v": "76.96"}`, Float(76.96)},
		{`{"v": " -5 "}`, Float(-5)},
		{`{"v": ""}`, OptionalFloat{}},
		{`{"v": null}`, OptionalFloat{}},
		{`{}`, OptionalFloat{}},
	}
	for _, tt := range tests {
		var got struct {
			V OptionalFloat `json:"v"`
		}
		require.NoError(t, json.Unmarshal([]byte(tt.in), &got), tt.in)
		assert.Equal(t, tt.want, got.V, tt.in)
	}

	var bad struct {
		V OptionalFloat `json:"v"`
	}
	err := json.Unmarshal([]byte(`{"v":"north"}`), &bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Error(t, json.Unmarshal([]byte(`{"v":true}`), &bad))
}

func TestParseLocalDateTime(t *testing.T) {
	want := time.Date(1996, 8, 22, 12, 23, 0, 0, time.UTC)
	for _, in := range []string{
		"1996-08-22T12:23",
		"1996-08-22T12:23:00",
		"1996-08-22 12:23",
		" 1996-08-22 12:23:00 ",
		"1996-08-22T12:23:00+05:30",
	} {
		got, err := ParseLocalDateTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s parsed as %s", in, got)
	}

	day, err := ParseLocalDateTime("1996-08-22")
	require.NoError(t, err)
	assert.Equal(t, 0, day.Hour())

	for _, in := range []string{"", "22/08/1996", "noon"} {
		_, err := ParseLocalDateTime(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}
}

func TestBirthContext_LocalAndUT(t *testing.T) {
	b := BirthContext{LocalTime: time.Date(1996, 8, 22, 12, 23, 0, 0, time.UTC), UTCOffset: 5.5}
	assert.Equal(t, "1996-08-22T12:23:00+05:30", b.Local().Format(time.RFC3339))
	assert.Equal(t, "1996-08-22T06:53:00Z", b.UT().Format(time.RFC3339))
	assert.NoError(t, b.Validate())

	b.UTCOffset = 15
	assert.ErrorIs(t, b.Validate(), ErrInvalidInput)
}
