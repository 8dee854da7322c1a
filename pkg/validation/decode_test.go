/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/dburkart/datehour/pkg/datehour"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type settings struct {
	Since   datehour.DateHour             `mapstructure:"since" validate:"required"`
	Timeout time.Duration                 `mapstructure:"timeout"`
	Periods map[string]datehour.TimeRange `mapstructure:"periods" validate:"dive,required"`
}

const settingsTOML = `
[reports]
since = "2024-01-15 14:30"
timeout = "5s"

[reports.periods]
fy2024 = "2024"
custom = "2024-01-01 - 2024-01-15 14:30:00"
bounds = ["2024-03", "2024-03-10"]
q1 = { start = "2024-01", stop = "2024-03-31 23" }
february = { start = "2024-02" }
`

func readSettings(t *testing.T, config string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(config)); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestLoad(t *testing.T) {
	v := readSettings(t, settingsTOML)

	var s settings
	if err := Load(v, "reports", &s); err != nil {
		t.Fatal(err)
	}

	if s.Since.String() != "2024-01-15 14:00:00" {
		t.Errorf("since = %s", s.Since)
	}
	if s.Timeout != 5*time.Second {
		t.Errorf("timeout = %s", s.Timeout)
	}

	want := map[string]string{
		"fy2024":   "2024-01-01 00:00:00 - 2024-12-31 23:00:00",
		"custom":   "2024-01-01 00:00:00 - 2024-01-15 14:00:00",
		"bounds":   "2024-03-01 00:00:00 - 2024-03-10 00:00:00",
		"q1":       "2024-01-01 00:00:00 - 2024-03-31 23:00:00",
		"february": "2024-02-01 00:00:00 - 2024-02-29 23:00:00",
	}
	if len(s.Periods) != len(want) {
		t.Errorf("decoded %d periods, wanted %d", len(s.Periods), len(want))
	}
	for name, rendered := range want {
		if got := s.Periods[name].String(); got != rendered {
			t.Errorf("period %s = %s, wanted %s", name, got, rendered)
		}
	}
}

func TestLoadRejects(t *testing.T) {
	tt := []struct {
		test     string
		config   string
		contains string
	}{
		{"bad since", "[reports]\nsince = \"soon\"\n", "unable to parse datehour"},
		{"inverted period", "[reports]\nsince = \"2024\"\n[reports.periods]\nbad = \"2024-02 - 2024-01\"\n", "is after stop"},
		{"bad table", "[reports]\nsince = \"2024\"\n[reports.periods]\nbad = { stop = \"2024\" }\n", "missing start"},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			var s settings
			err := Load(readSettings(t, tc.config), "reports", &s)
			if err == nil {
				t.Fatal("expected an error")
			}
			// mapstructure flattens decode errors to strings.
			if !strings.Contains(err.Error(), tc.contains) {
				t.Errorf("expected %q in %q", tc.contains, err)
			}
		})
	}
}

func TestLoadValidates(t *testing.T) {
	var s settings
	err := Load(readSettings(t, "[reports]\ntimeout = \"1s\"\n"), "reports", &s)

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fieldErrs[0].Namespace != "settings.Since" || fieldErrs[0].Tag != "required" {
		t.Errorf("unexpected field error %s", fieldErrs[0])
	}
}

func TestDecodeHook(t *testing.T) {
	var out struct {
		At    datehour.DateHour
		Range *datehour.TimeRange
	}

	config := &mapstructure.DecoderConfig{DecodeHook: DecodeHook(), Result: &out}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		t.Fatal(err)
	}

	err = decoder.Decode(map[string]any{
		"at":    "2024-01",
		"range": []any{"2024-01-01", "2024-01-02"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.At.Precision() != datehour.Month {
		t.Errorf("at precision = %s", out.At.Precision())
	}
	if out.Range == nil || out.Range.Hours() != 25 {
		t.Errorf("unexpected range %v", out.Range)
	}
}
