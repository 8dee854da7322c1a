/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datehour

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestValidate(t *testing.T) {
	want := MustParse("2024-01-15 14")
	tm := time.Date(2024, time.January, 15, 14, 10, 0, 0, time.UTC)

	tt := []struct {
		test string
		raw  any
	}{
		{"value", want},
		{"pointer", &want},
		{"string", "2024-01-15 14:30:00"},
		{"bytes", []byte("2024-01-15 14")},
		{"time", tm},
		{"time pointer", &tm},
		{"stringer", stringer("2024-01-15T14")},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			got, err := Validate(tc.raw)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Errorf("Validate(%v) = %s, wanted %s", tc.raw, got, want)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	var nilDateHour *DateHour
	hour, _ := NewTimeRange("2024-01-15 14")

	for _, raw := range []any{"not-a-date", 42, nil, nilDateHour, 3.14, DateHour{}, &DateHour{}, hour, &hour} {
		_, err := Validate(raw)
		if err == nil {
			t.Errorf("expected %v (%T) to be rejected", raw, raw)
			continue
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("expected *ValidationError, got %T", err)
		}
	}

	_, err := Validate("not-a-date")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected the format error to be reachable, got %v", err)
	}
}

func TestValidateRange(t *testing.T) {
	january, _ := NewTimeRange("2024-01")
	custom, _ := Between("2024-01-01", "2024-01-15 14")

	tt := []struct {
		test string
		raw  any
		want TimeRange
	}{
		{"value", january, january},
		{"pointer", &january, january},
		{"period string", "2024-01", january},
		{"rendered string", custom.String(), custom},
		{"bytes", []byte("2024-01"), january},
		{"datehour", MustParse("2024-01"), january},
		{"one bound", []string{"2024-01"}, january},
		{"two bounds", []string{"2024-01-01", "2024-01-15 14:30"}, custom},
		{"any bounds", []any{"2024-01-01", "2024-01-15 14"}, custom},
		{"map", map[string]any{"start": "2024-01-01", "stop": "2024-01-15 14"}, custom},
		{"map without stop", map[string]any{"start": "2024-01"}, january},
		{"map with nil stop", map[string]any{"start": "2024-01", "stop": nil}, january},
		{"string map", map[string]string{"start": "2024-01-01", "stop": "2024-01-15 14"}, custom},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			got, err := ValidateRange(tc.raw)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ValidateRange(%v) = %s, wanted %s", tc.raw, got, tc.want)
			}
		})
	}

	hour, err := ValidateRange(time.Date(2024, time.January, 15, 14, 5, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if hour.Hours() != 1 {
		t.Errorf("a time.Time should cover one hour, got %d", hour.Hours())
	}
}

func TestValidateRangeRejects(t *testing.T) {
	tt := []struct {
		test string
		raw  any
		is   error
	}{
		{"bad string", "garbage", ErrInvalidFormat},
		{"inverted", "2024-02 - 2024-01", ErrInvalidRange},
		{"inverted bounds", []string{"2024-02", "2024-01"}, ErrInvalidRange},
		{"inverted map", map[string]any{"start": "2024-02", "stop": "2024-01"}, ErrInvalidRange},
		{"bad start", map[string]any{"start": "garbage"}, ErrInvalidFormat},
		{"bad stop", map[string]any{"start": "2024", "stop": "garbage"}, ErrInvalidFormat},
		{"missing start", map[string]any{"stop": "2024"}, nil},
		{"too many bounds", []string{"2024", "2025", "2026"}, nil},
		{"no bounds", []string{}, nil},
		{"wrong type", 12, nil},
		{"zero datehour", DateHour{}, nil},
		{"zero datehour pointer", &DateHour{}, nil},
		{"zero range", TimeRange{}, nil},
		{"zero map start", map[string]any{"start": DateHour{}}, nil},
		{"zero map stop", map[string]any{"start": "2024", "stop": DateHour{}}, nil},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			_, err := ValidateRange(tc.raw)
			if err == nil {
				t.Fatal("expected an error")
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Errorf("expected %v, got %v", tc.is, err)
			}
		})
	}
}

func TestDateHourJSON(t *testing.T) {
	type event struct {
		At   DateHour  `json:"at"`
		Seen *DateHour `json:"seen,omitempty"`
	}

	b, err := json.Marshal(event{At: MustParse("2024-01-15 14:30")})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"at":"2024-01-15 14:00:00"}` {
		t.Errorf("unexpected encoding %s", b)
	}

	var e event
	if err := json.Unmarshal([]byte(`{"at":"2024-03","seen":null}`), &e); err != nil {
		t.Fatal(err)
	}
	if e.At.String() != "2024-03-01 00:00:00" || e.At.Precision() != Month {
		t.Errorf("decoded %s (%s)", e.At, e.At.Precision())
	}
	if e.Seen != nil {
		t.Error("null should leave the pointer nil")
	}

	err = json.Unmarshal([]byte(`{"at":"yesterday"}`), &e)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
	if err := json.Unmarshal([]byte(`{"at":12}`), &e); err == nil {
		t.Error("expected a number to be rejected")
	}
}

func TestTimeRangeJSON(t *testing.T) {
	r, _ := Between("2024-01-01", "2024-01-15 14:30:00")

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"start":"2024-01-01 00:00:00","stop":"2024-01-15 14:00:00"}` {
		t.Errorf("unexpected encoding %s", b)
	}

	var decoded TimeRange
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatal(err)
	}
	if !decoded.Equal(r) {
		t.Errorf("decoded %s, wanted %s", decoded, r)
	}

	if err := json.Unmarshal([]byte(`"2024"`), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.String() != "2024-01-01 00:00:00 - 2024-12-31 23:00:00" {
		t.Errorf("decoded %s", decoded)
	}

	err = json.Unmarshal([]byte(`{"start":"2024-02","stop":"2024-01"}`), &decoded)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestTextAndSQL(t *testing.T) {
	var d DateHour
	if err := d.UnmarshalText([]byte("2024-01-15 14")); err != nil {
		t.Fatal(err)
	}
	text, _ := d.MarshalText()
	if string(text) != "2024-01-15 14:00:00" {
		t.Errorf("MarshalText = %s", text)
	}

	v, err := d.Value()
	if err != nil {
		t.Fatal(err)
	}
	var scanned DateHour
	if err := scanned.Scan(v); err != nil {
		t.Fatal(err)
	}
	if !scanned.Equal(d) {
		t.Errorf("scanned %s, wanted %s", scanned, d)
	}
	if err := scanned.Scan(nil); err != nil || !scanned.IsZero() {
		t.Error("NULL should scan to the zero value")
	}
	if v, _ := scanned.Value(); v != nil {
		t.Error("the zero value should be stored as NULL")
	}

	var r TimeRange
	if err := r.UnmarshalText([]byte("2024-01")); err != nil {
		t.Fatal(err)
	}
	rv, _ := r.Value()
	var scannedRange TimeRange
	if err := scannedRange.Scan([]byte(rv.(string))); err != nil {
		t.Fatal(err)
	}
	if !scannedRange.Equal(r) {
		t.Errorf("scanned %s, wanted %s", scannedRange, r)
	}
}
