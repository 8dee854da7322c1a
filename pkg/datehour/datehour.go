/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datehour

import (
	"math"
	"strings"
	"time"
)

// DisplayLayout is the canonical rendering of a DateHour.
const DisplayLayout = "2006-01-02 15:04:05"

const secondsPerHour = 60 * 60

type Precision uint8

const (
	unset Precision = iota
	Year
	Month
	Day
	Hour
)

func (p Precision) String() string {
	switch p {
	case Year:
		return "year"
	case Month:
		return "month"
	case Day:
		return "day"
	case Hour:
		return "hour"
	}
	return "unset"
}

// ParsePrecision is the inverse of Precision.String.
func ParsePrecision(s string) (Precision, bool) {
	switch strings.ToLower(s) {
	case "year":
		return Year, true
	case "month":
		return Month, true
	case "day":
		return Day, true
	case "hour":
		return Hour, true
	}
	return unset, false
}

type layout struct {
	format    string
	display   string
	precision Precision
}

// Ordered from most to least specific, the first successful parse wins.
var layouts = [...]layout{
	{"2006-01-02 15:04:05", "YYYY-MM-DD HH:MM:SS", Hour},
	{"2006-01-02 15:04", "YYYY-MM-DD HH:MM", Hour},
	{"2006-01-02 15", "YYYY-MM-DD HH", Hour},
	{"2006-01-02", "YYYY-MM-DD", Day},
	{"2006-01", "YYYY-MM", Month},
	{"2006", "YYYY", Year},
}

// Formats returns the accepted input formats, most specific first.
func Formats() []string {
	formats := make([]string, 0, len(layouts))
	for _, l := range layouts {
		formats = append(formats, l.display)
	}
	return formats
}

// A DateHour is a moment at hour resolution, together with the precision of
// the input it was parsed from. The zero value is not a valid moment; use
// IsZero to detect it.
//
// Compare DateHour values with Equal rather than ==, which also compares
// precision.
type DateHour struct {
	hours     int64
	precision Precision
}

// Parse accepts any of the layouts in Formats. Minutes and seconds are
// floored to the containing hour. The hour must be written with two digits.
func Parse(s string) (DateHour, error) {
	input := normalize(s)

	for _, l := range layouts {
		if l.precision == Hour && !hasTwoDigitHour(input) {
			continue
		}
		tm, err := time.Parse(l.format, input)
		if err != nil {
			continue
		}
		return fromWallClock(tm, l.precision), nil
	}

	return DateHour{}, &FormatError{Input: s, Formats: Formats()}
}

// MustParse is like Parse but panics if the input is not accepted.
func MustParse(s string) DateHour {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime truncates the wall clock of t, in t's own location, to the hour.
func FromTime(t time.Time) DateHour {
	return fromWallClock(t, Hour)
}

// FromUnix builds a DateHour from a count of hours since the Unix epoch. The
// count is clamped to the years 0000 through 9999.
func FromUnix(hours int64) DateHour {
	return DateHour{hours: clamp(hours, 0), precision: Hour}
}

func fromWallClock(t time.Time, p Precision) DateHour {
	utc := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
	return DateHour{hours: clamp(utc.Unix()/secondsPerHour, 0), precision: p}
}

// Every value renders with a four digit year, so String always parses back.
var (
	minHours = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() / secondsPerHour
	maxHours = time.Date(9999, time.December, 31, 23, 0, 0, 0, time.UTC).Unix() / secondsPerHour
)

// clamp returns hours+n saturated to [minHours, maxHours] without overflowing.
func clamp(hours, n int64) int64 {
	switch {
	case hours < minHours:
		hours = minHours
	case hours > maxHours:
		hours = maxHours
	}
	switch {
	case n > maxHours-hours:
		return maxHours
	case n < minHours-hours:
		return minHours
	}
	return hours + n
}

// time.Parse reads a one digit hour and skips repeated spaces, so check the
// shape of "YYYY-MM-DD HH" first.
func hasTwoDigitHour(s string) bool {
	return len(s) >= 13 && s[10] == ' ' && isDigit(s[11]) && isDigit(s[12])
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// normalize accepts an ISO 'T' between the date and the hour.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 10 && (s[10] == 'T' || s[10] == 't') {
		s = s[:10] + " " + s[11:]
	}
	return s
}

func (d DateHour) IsZero() bool {
	return d.precision == unset
}

func (d DateHour) Precision() Precision {
	return d.precision
}

// Unix returns the number of hours since the Unix epoch.
func (d DateHour) Unix() int64 {
	return d.hours
}

func (d DateHour) Time() time.Time {
	return time.Unix(d.hours*secondsPerHour, 0).UTC()
}

// Add returns d shifted by n hours. The result always has Hour precision and
// stops at 0000-01-01 00:00:00 and 9999-12-31 23:00:00.
func (d DateHour) Add(n int) DateHour {
	return DateHour{hours: clamp(d.hours, int64(n)), precision: Hour}
}

// Sub returns d shifted back by n hours.
func (d DateHour) Sub(n int) DateHour {
	if int64(n) == math.MinInt64 {
		return DateHour{hours: maxHours, precision: Hour}
	}
	return DateHour{hours: clamp(d.hours, -int64(n)), precision: Hour}
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d DateHour) Compare(o DateHour) int {
	switch {
	case d.hours < o.hours:
		return -1
	case d.hours > o.hours:
		return 1
	}
	return 0
}

func (d DateHour) Before(o DateHour) bool {
	return d.hours < o.hours
}

func (d DateHour) After(o DateHour) bool {
	return d.hours > o.hours
}

func (d DateHour) Equal(o DateHour) bool {
	return d.hours == o.hours
}

// PeriodStart returns the first hour of the period implied by d's precision.
// Parsed values are already normalized to it.
func (d DateHour) PeriodStart() DateHour {
	return DateHour{hours: d.hours, precision: Hour}
}

// PeriodStop returns the last hour of the period implied by d's precision:
// Dec 31 23:00 for a year, the last day of the month at 23:00 for a month,
// 23:00 for a day and d itself for an hour.
func (d DateHour) PeriodStop() DateHour {
	t := d.Time()

	var next time.Time
	switch d.precision {
	case Year:
		next = time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	case Month:
		next = time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	case Day:
		next = time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, time.UTC)
	default:
		return d.PeriodStart()
	}

	return DateHour{hours: next.Unix()/secondsPerHour - 1, precision: Hour}
}

func (d DateHour) String() string {
	return d.Time().Format(DisplayLayout)
}

// Short renders d only down to its precision, in the layout it was parsed
// from: "2024", "2024-01", "2024-01-15" or "2024-01-15 14". Parsing the result
// gives back both the value and the precision.
func (d DateHour) Short() string {
	for i := len(layouts) - 1; i >= 0; i-- {
		if layouts[i].precision == d.precision {
			return d.Time().Format(layouts[i].format)
		}
	}
	return d.String()
}
