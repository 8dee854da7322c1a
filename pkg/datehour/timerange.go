/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datehour

import (
	"strings"
	"time"
)

// RangeSeparator joins the bounds of a rendered TimeRange. The surrounding
// spaces keep it distinct from the dashes inside a date.
const RangeSeparator = " - "

// A TimeRange is an inclusive span of hours. Start is never after Stop.
type TimeRange struct {
	start DateHour
	stop  DateHour
}

// NewTimeRange spans the whole period implied by s, so "2024" covers
// 2024-01-01 00:00:00 through 2024-12-31 23:00:00.
func NewTimeRange(s string) (TimeRange, error) {
	d, err := Parse(s)
	if err != nil {
		return TimeRange{}, err
	}
	return Period(d), nil
}

// Between parses both bounds independently and uses them as-is, without
// expanding either one to its period.
func Between(start, stop string) (TimeRange, error) {
	s, err := Parse(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := Parse(stop)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRangeFrom(s, e)
}

// Period returns the span implied by the precision of d. The zero DateHour
// gives the zero TimeRange.
func Period(d DateHour) TimeRange {
	if d.IsZero() {
		return TimeRange{}
	}
	return TimeRange{start: d, stop: d.PeriodStop()}
}

// NewTimeRangeFrom spans start through stop. Both bounds must be set.
func NewTimeRangeFrom(start, stop DateHour) (TimeRange, error) {
	if start.IsZero() || stop.IsZero() || start.After(stop) {
		return TimeRange{}, &RangeError{Start: start, Stop: stop}
	}
	return TimeRange{start: start, stop: stop}, nil
}

// ParseTimeRange reads the output of TimeRange.String. Input without a
// RangeSeparator is treated as a single period.
func ParseTimeRange(s string) (TimeRange, error) {
	if start, stop, found := strings.Cut(s, RangeSeparator); found {
		return Between(start, stop)
	}
	return NewTimeRange(s)
}

func (r TimeRange) Start() DateHour {
	return r.start
}

func (r TimeRange) Stop() DateHour {
	return r.stop
}

func (r TimeRange) IsZero() bool {
	return r.start.IsZero() && r.stop.IsZero()
}

// Hours is the number of hours in the range, counting both bounds.
func (r TimeRange) Hours() int64 {
	if r.IsZero() {
		return 0
	}
	return r.stop.hours - r.start.hours + 1
}

func (r TimeRange) Duration() time.Duration {
	return time.Duration(r.Hours()) * time.Hour
}

func (r TimeRange) Contains(d DateHour) bool {
	return !d.Before(r.start) && !d.After(r.stop)
}

func (r TimeRange) Overlaps(o TimeRange) bool {
	return !r.stop.Before(o.start) && !o.stop.Before(r.start)
}

// Shift moves both bounds by n hours.
func (r TimeRange) Shift(n int) TimeRange {
	if r.IsZero() {
		return r
	}
	return TimeRange{start: r.start.Add(n), stop: r.stop.Add(n)}
}

func (r TimeRange) Equal(o TimeRange) bool {
	return r.start.Equal(o.start) && r.stop.Equal(o.stop)
}

func (r TimeRange) String() string {
	if r.start.Equal(r.stop) {
		return r.start.String()
	}
	return r.start.String() + RangeSeparator + r.stop.String()
}
