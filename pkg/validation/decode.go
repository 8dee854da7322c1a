/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package validation

import (
	"reflect"

	"github.com/dburkart/datehour/pkg/datehour"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var (
	dateHourType  = reflect.TypeOf(datehour.DateHour{})
	timeRangeType = reflect.TypeOf(datehour.TimeRange{})
)

// DecodeHook converts raw configuration values into DateHour and TimeRange
// fields. Ranges may be written as a string, a list of one or two bounds, or
// a table with "start" and an optional "stop".
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		switch to {
		case dateHourType:
			return datehour.Validate(data)
		case timeRangeType:
			return datehour.ValidateRange(data)
		}
		return data, nil
	}
}

// Load decodes the configuration under key into out, which must point to a
// struct, and validates the result. An empty key decodes the whole
// configuration.
func Load(v *viper.Viper, key string, out any) error {
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		DecodeHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))

	var err error
	if key == "" {
		err = v.Unmarshal(out, hook)
	} else {
		err = v.UnmarshalKey(key, out, hook)
	}
	if err != nil {
		return errors.Wrapf(err, "unable to decode configuration %q", key)
	}

	validate, err := New()
	if err != nil {
		return err
	}
	return Struct(validate, out)
}
