package domain

import (
	"bytes"
	"fmt"
	"time"
)

const (
	LocalDateTimeLayout = "2006-01-02T15:04:05"
	LocalDateLayout     = "2006-01-02"
)

var localDateTimeLayouts = []string{LocalDateTimeLayout, "2006-01-02T15:04"}

// LocalDateTime is a wall-clock reading without a zone. It only becomes an
// instant once attached to the timezone of the airport it was read at.
type LocalDateTime struct {
	t time.Time
}

func NewLocalDateTime(year int, month time.Month, day, hour, min int) LocalDateTime {
	return LocalDateTime{t: time.Date(year, month, day, hour, min, 0, 0, time.UTC)}
}

// LocalDateTimeOf drops the zone of t and keeps its clock reading.
func LocalDateTimeOf(t time.Time) LocalDateTime {
	return LocalDateTime{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

func ParseLocalDateTime(s string) (LocalDateTime, error) {
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return LocalDateTime{t: t}, nil
		}
	}
	return LocalDateTime{}, fmt.Errorf("invalid local date-time %q", s)
}

// In attaches loc to the clock reading. A reading that falls in a
// daylight-saving gap is moved forward by the length of the gap; in an
// overlap the earlier offset wins.
func (l LocalDateTime) In(loc *time.Location) time.Time {
	t := time.Date(l.t.Year(), l.t.Month(), l.t.Day(), l.t.Hour(), l.t.Minute(), l.t.Second(), l.t.Nanosecond(), loc)
	if LocalDateTimeOf(t).t.Equal(l.t) {
		return t
	}

	// The two offsets around the gap; the one before the transition is the
	// smaller of them.
	_, offset := t.Zone()
	_, other := l.t.Add(-time.Duration(offset) * time.Second).In(loc).Zone()
	if other < offset {
		offset = other
	}
	return l.t.Add(-time.Duration(offset) * time.Second).In(loc)
}

// Date is the calendar date component, no zone shift applied.
func (l LocalDateTime) Date() LocalDate {
	return LocalDate{Year: l.t.Year(), Month: l.t.Month(), Day: l.t.Day()}
}

func (l LocalDateTime) IsZero() bool {
	return l.t.IsZero()
}

func (l LocalDateTime) String() string {
	return l.t.Format(LocalDateTimeLayout)
}

func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("local date-time must be a JSON string, got %s", data)
	}
	parsed, err := ParseLocalDateTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.ParseInLocation(LocalDateLayout, s, time.UTC)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
