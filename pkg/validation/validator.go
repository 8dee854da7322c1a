/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dburkart/datehour/pkg/datehour"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	TagDateHour  = "datehour"
	TagTimeRange = "timerange"
	TagPrecision = "precision"
)

// New returns a validator with the datehour tags registered.
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Register adds the datehour, timerange and precision tags to v, and teaches
// it to see DateHour and TimeRange fields as strings so that required and
// omitempty behave. A DateHour is seen in its Short form to keep its
// precision.
func Register(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(asString, datehour.DateHour{}, datehour.TimeRange{})

	validations := map[string]validator.Func{
		TagDateHour:  isDateHour,
		TagTimeRange: isTimeRange,
		TagPrecision: hasPrecision,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errors.Wrapf(err, "unable to register %s validation", tag)
		}
	}
	return nil
}

func asString(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case datehour.DateHour:
		if v.IsZero() {
			return ""
		}
		return v.Short()
	case datehour.TimeRange:
		if v.IsZero() {
			return ""
		}
		return v.String()
	}
	return nil
}

func isDateHour(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := datehour.Parse(fl.Field().String())
	return err == nil
}

func isTimeRange(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := datehour.ParseTimeRange(fl.Field().String())
	return err == nil
}

func hasPrecision(fl validator.FieldLevel) bool {
	want, ok := datehour.ParsePrecision(fl.Param())
	if !ok || fl.Field().Kind() != reflect.String {
		return false
	}
	d, err := datehour.Parse(fl.Field().String())
	return err == nil && d.Precision() == want
}

// FieldError describes one rejected field. Err carries the datehour error
// behind a datehour or timerange tag, nil for other tags.
type FieldError struct {
	Namespace string
	Tag       string
	Param     string
	Value     any
	Err       error
}

func (e FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Namespace, e.Err)
	}
	if e.Param != "" {
		return fmt.Sprintf("%s: value %v failed %s=%s", e.Namespace, e.Value, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s: value %v failed %s", e.Namespace, e.Value, e.Tag)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Error())
	}
	return strings.Join(messages, "; ")
}

// Struct validates s and reports failures as FieldErrors.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "unable to validate")
	}

	fieldErrs := make(FieldErrors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Namespace: fe.Namespace(),
			Tag:       fe.Tag(),
			Param:     fe.Param(),
			Value:     fe.Value(),
			Err:       cause(fe),
		})
	}
	return fieldErrs
}

func cause(fe validator.FieldError) error {
	s, ok := fe.Value().(string)
	if !ok {
		return nil
	}

	var err error
	switch fe.Tag() {
	case TagDateHour:
		_, err = datehour.Parse(s)
	case TagTimeRange:
		_, err = datehour.ParseTimeRange(s)
	}
	return err
}
