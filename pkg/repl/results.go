/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strconv"

	"github.com/dburkart/datehour/pkg/datehour"
	"github.com/dustin/go-humanize"
)

type PointResult struct {
	Input string
	Value datehour.DateHour
}

func (p PointResult) Headers() []string {
	return []string{"Input", "Value", "Precision", "Period Start", "Period Stop"}
}

func (p PointResult) Values() [][]string {
	return [][]string{{
		p.Input,
		p.Value.String(),
		p.Value.Precision().String(),
		p.Value.PeriodStart().String(),
		p.Value.PeriodStop().String(),
	}}
}

type NamedRange struct {
	Name  string
	Range datehour.TimeRange
}

type RangeResult []NamedRange

func (r RangeResult) Headers() []string {
	return []string{"Name", "Start", "Stop", "Hours"}
}

func (r RangeResult) Values() [][]string {
	rows := make([][]string, 0, len(r))
	for _, nr := range r {
		rows = append(rows, []string{
			nr.Name,
			nr.Range.Start().String(),
			nr.Range.Stop().String(),
			humanize.Comma(nr.Range.Hours()),
		})
	}
	return rows
}

type ContainsResult struct {
	Range datehour.TimeRange
	Value datehour.DateHour
}

func (c ContainsResult) Headers() []string {
	return []string{"Range", "Value", "Contains"}
}

func (c ContainsResult) Values() [][]string {
	return [][]string{{
		c.Range.String(),
		c.Value.String(),
		strconv.FormatBool(c.Range.Contains(c.Value)),
	}}
}
