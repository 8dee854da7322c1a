/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datehour

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
)

var jsonNull = []byte("null")

// MarshalText renders d with DisplayLayout. The zero value renders empty.
func (d DateHour) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts every format Parse does. Empty input yields the zero
// value.
func (d *DateHour) UnmarshalText(b []byte) error {
	if len(bytes.TrimSpace(b)) == 0 {
		*d = DateHour{}
		return nil
	}
	v, err := Validate(b)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d DateHour) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(d.String())
}

func (d *DateHour) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &ValidationError{Value: string(b), Err: err}
	}
	v, err := Validate(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Value stores d as a timestamp. The zero value is stored as NULL.
func (d DateHour) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time(), nil
}

func (d *DateHour) Scan(src any) error {
	if src == nil {
		*d = DateHour{}
		return nil
	}
	v, err := Validate(src)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

type rangeJSON struct {
	Start DateHour `json:"start"`
	Stop  DateHour `json:"stop"`
}

func (r TimeRange) MarshalText() ([]byte, error) {
	if r.IsZero() {
		return []byte{}, nil
	}
	return []byte(r.String()), nil
}

func (r *TimeRange) UnmarshalText(b []byte) error {
	if len(bytes.TrimSpace(b)) == 0 {
		*r = TimeRange{}
		return nil
	}
	v, err := ValidateRange(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON renders r as an object with "start" and "stop" keys.
func (r TimeRange) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(rangeJSON{Start: r.start, Stop: r.stop})
}

// UnmarshalJSON accepts either a string understood by ParseTimeRange or an
// object with "start" and an optional "stop".
func (r *TimeRange) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		return nil
	}

	var raw any
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return &ValidationError{Value: string(b), Err: err}
		}
		raw = s
	} else {
		m := map[string]any{}
		if err := json.Unmarshal(b, &m); err != nil {
			return &ValidationError{Value: string(b), Err: err}
		}
		raw = m
	}

	v, err := ValidateRange(raw)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Value stores r as text in the form String produces.
func (r TimeRange) Value() (driver.Value, error) {
	if r.IsZero() {
		return nil, nil
	}
	return r.String(), nil
}

func (r *TimeRange) Scan(src any) error {
	if src == nil {
		*r = TimeRange{}
		return nil
	}
	v, err := ValidateRange(src)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
