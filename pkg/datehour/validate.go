/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datehour

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Validate converts a raw input into a DateHour. It is the single entry point
// decoders and validation frameworks should go through. Existing DateHour
// values are returned unchanged, except for the zero value, which is rejected.
func Validate(raw any) (DateHour, error) {
	var (
		d   DateHour
		err error
	)

	switch v := raw.(type) {
	case DateHour:
		d, err = v, checkSet(v)
	case *DateHour:
		if v == nil {
			err = errors.New("nil datehour")
			break
		}
		d, err = *v, checkSet(*v)
	case TimeRange, *TimeRange:
		err = errors.Errorf("expected a single datehour, got %T", raw)
	case string:
		d, err = Parse(v)
	case []byte:
		d, err = Parse(string(v))
	case time.Time:
		return FromTime(v), nil
	case *time.Time:
		if v == nil {
			err = errors.New("nil time")
			break
		}
		return FromTime(*v), nil
	case fmt.Stringer:
		d, err = Parse(v.String())
	default:
		err = errors.Errorf("expected a string or time, got %T", raw)
	}

	if err != nil {
		return DateHour{}, &ValidationError{Value: raw, Err: err}
	}
	return d, nil
}

// ValidateRange converts a raw input into a TimeRange. Besides the forms
// ParseTimeRange understands, it accepts a DateHour (its period), a
// time.Time (a single hour), a []string holding one or two bounds and a map
// with a "start" and an optional "stop" key.
func ValidateRange(raw any) (TimeRange, error) {
	var (
		r   TimeRange
		err error
	)

	switch v := raw.(type) {
	case TimeRange:
		r = v
	case *TimeRange:
		if v == nil {
			err = errors.New("nil time range")
			break
		}
		r = *v
	case string:
		r, err = ParseTimeRange(v)
	case []byte:
		r, err = ParseTimeRange(string(v))
	case DateHour:
		if err = checkSet(v); err == nil {
			r = Period(v)
		}
	case *DateHour:
		if v == nil {
			err = errors.New("nil datehour")
			break
		}
		if err = checkSet(*v); err == nil {
			r = Period(*v)
		}
	case time.Time:
		return Period(FromTime(v)), nil
	case []string:
		r, err = rangeFromBounds(v)
	case []any:
		bounds := make([]string, 0, len(v))
		for _, b := range v {
			bounds = append(bounds, fmt.Sprint(b))
		}
		r, err = rangeFromBounds(bounds)
	case map[string]any:
		r, err = rangeFromMap(v)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		r, err = rangeFromMap(m)
	default:
		err = errors.Errorf("expected a string, bounds or a start/stop map, got %T", raw)
	}

	if err == nil && r.IsZero() {
		err = errors.New("empty time range")
	}
	if err != nil {
		return TimeRange{}, &ValidationError{Value: raw, Err: err}
	}
	return r, nil
}

func checkSet(d DateHour) error {
	if d.IsZero() {
		return errors.New("zero datehour")
	}
	return nil
}

func rangeFromBounds(bounds []string) (TimeRange, error) {
	switch len(bounds) {
	case 1:
		return NewTimeRange(bounds[0])
	case 2:
		return Between(bounds[0], bounds[1])
	}
	return TimeRange{}, errors.Errorf("expected 1 or 2 bounds, got %d", len(bounds))
}

func rangeFromMap(m map[string]any) (TimeRange, error) {
	rawStart, ok := m["start"]
	if !ok {
		return TimeRange{}, errors.New("missing start")
	}
	start, err := Validate(rawStart)
	if err != nil {
		return TimeRange{}, errors.Wrap(err, "start")
	}

	rawStop, ok := m["stop"]
	if !ok || rawStop == nil {
		return Period(start), nil
	}
	stop, err := Validate(rawStop)
	if err != nil {
		return TimeRange{}, errors.Wrap(err, "stop")
	}

	return NewTimeRangeFrom(start, stop)
}
