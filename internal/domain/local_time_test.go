package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDateTime_UnmarshalJSON(t *testing.T) {
	var f Flight
	err := json.Unmarshal([]byte(`{"flightNumber":"SP100","origin":"JFK","destination":"LAX","departureTime":"2024-03-15T08:00:00","arrivalTime":"2024-03-15T11:15","price":299.0}`), &f)
	require.NoError(t, err)

	assert.Equal(t, NewLocalDateTime(2024, time.March, 15, 8, 0), f.DepartureTime)
	assert.Equal(t, NewLocalDateTime(2024, time.March, 15, 11, 15), f.ArrivalTime)
	assert.Equal(t, 299.0, f.Price)
}

func TestLocalDateTime_UnmarshalJSON_Invalid(t *testing.T) {
	var l LocalDateTime
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024 08:00"`), &l))
	assert.Error(t, json.Unmarshal([]byte(`1710489600`), &l))
}

func TestLocalDateTime_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewLocalDateTime(2024, time.March, 15, 8, 5))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T08:05:00"`, string(data))
}

func TestLocalDateTime_In(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	instant := NewLocalDateTime(2024, time.March, 15, 8, 0).In(ny)

	assert.Equal(t, "2024-03-15T08:00:00-04:00", instant.Format(time.RFC3339))
	assert.Equal(t, 12, instant.UTC().Hour())
}

func TestLocalDateTime_In_DaylightSaving(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	tests := []struct {
		name  string
		local LocalDateTime
		loc   *time.Location
		want  string
	}{
		{name: "before gap", local: NewLocalDateTime(2024, time.March, 10, 1, 59), loc: ny, want: "2024-03-10T01:59:00-05:00"},
		{name: "inside gap west of UTC", local: NewLocalDateTime(2024, time.March, 10, 2, 30), loc: ny, want: "2024-03-10T03:30:00-04:00"},
		{name: "gap start", local: NewLocalDateTime(2024, time.March, 10, 2, 0), loc: ny, want: "2024-03-10T03:00:00-04:00"},
		{name: "after gap", local: NewLocalDateTime(2024, time.March, 10, 3, 0), loc: ny, want: "2024-03-10T03:00:00-04:00"},
		{name: "inside gap at UTC", local: NewLocalDateTime(2024, time.March, 31, 1, 30), loc: london, want: "2024-03-31T02:30:00+01:00"},
		{name: "overlap takes earlier offset", local: NewLocalDateTime(2024, time.November, 3, 1, 30), loc: ny, want: "2024-11-03T01:30:00-04:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.local.In(tt.loc).Format(time.RFC3339))
		})
	}
}

func TestLocalDateTime_Date(t *testing.T) {
	l := NewLocalDateTime(2024, time.March, 15, 23, 59)
	assert.Equal(t, LocalDate{Year: 2024, Month: time.March, Day: 15}, l.Date())
}

func TestParseLocalDate(t *testing.T) {
	d, err := ParseLocalDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", d.String())

	_, err = ParseLocalDate("2024-02-30")
	assert.Error(t, err)

	_, err = ParseLocalDate("15-03-2024")
	assert.Error(t, err)
}
