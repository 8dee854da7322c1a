/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datehour

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidFormat = errors.New("invalid datehour format")
	ErrInvalidRange  = errors.New("invalid time range")
)

// FormatError is returned when an input matches none of the accepted formats.
type FormatError struct {
	Input   string
	Formats []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unable to parse datehour %q, supported formats: %s", e.Input, strings.Join(e.Formats, ", "))
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// RangeError is returned when a range would start after it stops, or when
// one of its bounds is the zero DateHour.
type RangeError struct {
	Start DateHour
	Stop  DateHour
}

func (e *RangeError) Error() string {
	if e.Start.IsZero() || e.Stop.IsZero() {
		return "time range bounds must both be set"
	}
	return fmt.Sprintf("time range start %s is after stop %s", e.Start, e.Stop)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// ValidationError wraps a rejected raw value handed to Validate or
// ValidateRange. Err is a *FormatError, a *RangeError or a type mismatch.
type ValidationError struct {
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v: %s", e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
