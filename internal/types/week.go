// Package types implements special types for the meal planner.
package types

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Week is an ISO 8601 week. It is stored as the instant of Monday 00:00 UTC
// of that week.
type Week time.Time

var ErrInvalidWeek = errors.New("the week must be in ISO 8601 week format, e.g. 2024-W05")

var weekPattern = regexp.MustCompile(`^([0-9]{4})-?W([0-9]{2})$`)

// NewWeek returns the ISO week with the given year and week number.
//
// Week numbers that overflow the ISO year are normalized in the same way
// time.Date normalizes days, e.g. week 53 of a 52 week year is week 1 of
// the next year.
func NewWeek(year, week int) Week {
	// January 4th is always in week 1
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -offset+(week-1)*7)

	return Week(monday)
}

// WeekOf returns the ISO week that t falls in, evaluated in t's location.
func WeekOf(t time.Time) Week {
	year, week := t.ISOWeek()
	return NewWeek(year, week)
}

// ParseWeek parses a week in "YYYY-Www" or "YYYYWww" format.
func ParseWeek(s string) (Week, error) {
	match := weekPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Week{}, ErrInvalidWeek
	}

	year, _ := strconv.Atoi(match[1])
	number, _ := strconv.Atoi(match[2])

	w := NewWeek(year, number)
	if number < 1 || w.Number() != number {
		return Week{}, fmt.Errorf("%w: %s has no week %d", ErrInvalidWeek, match[1], number)
	}

	return w, nil
}

// Year returns the ISO year of the week.
func (w Week) Year() int {
	year, _ := time.Time(w).ISOWeek()
	return year
}

// Number returns the ISO week number, 1 to 53.
func (w Week) Number() int {
	_, week := time.Time(w).ISOWeek()
	return week
}

// Start returns Monday 00:00 UTC of the week.
func (w Week) Start() time.Time {
	return time.Time(w).UTC()
}

// Day returns the date of the n-th day of the week, 0 being Monday.
func (w Week) Day(n int) time.Time {
	return w.Start().AddDate(0, 0, n)
}

// Contains reports whether the time instant is in the week.
func (w Week) Contains(t time.Time) bool {
	return WeekOf(t.UTC()).Equal(w)
}

// AddWeeks adds the specified number of weeks.
func (w Week) AddWeeks(n int) Week {
	return Week(time.Time(w).AddDate(0, 0, 7*n))
}

// Equal reports whether w and v represent the same week.
func (w Week) Equal(v Week) bool {
	return time.Time(w).Equal(time.Time(v))
}

// Before reports whether w is before v.
func (w Week) Before(v Week) bool {
	return time.Time(w).Before(time.Time(v))
}

// IsZero reports if the week is the zero value.
func (w Week) IsZero() bool {
	return time.Time(w).IsZero()
}

// String returns the week formatted as YYYY-Www.
func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year(), w.Number())
}

// MarshalJSON implements the json.Marshaler interface.
func (w Week) MarshalJSON() ([]byte, error) {
	if w.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + w.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Both the "YYYY-Www" format and full dates in "2006-01-02" format are accepted.
// For full dates, the week the date is in is used.
func (w *Week) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		*w = WeekOf(t)
		return nil
	}

	parsed, err := ParseWeek(value)
	if err != nil {
		return err
	}

	*w = parsed
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler for URI and query binding.
func (w *Week) UnmarshalParam(p string) error {
	parsed, err := ParseWeek(p)
	if err != nil {
		return err
	}

	*w = parsed
	return nil
}

// Scan writes the value from the database.
func (w *Week) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*w = Week(nullTime.Time.UTC())
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (w Week) Value() (driver.Value, error) {
	return w.Start(), nil
}

// GormDataType defines the data type used by gorm the type.
func (Week) GormDataType() string {
	return "date"
}
