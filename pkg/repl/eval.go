/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"sort"

	"github.com/dburkart/datehour/pkg/datehour"
	"github.com/pkg/errors"
)

// Evaluator runs commands against a set of named periods.
type Evaluator struct {
	Periods map[string]datehour.TimeRange
}

func (e Evaluator) Eval(c Command) (Printable, error) {
	switch c.Name {
	case CommandParse:
		d, err := datehour.Parse(c.Input)
		if err != nil {
			return nil, err
		}
		return PointResult{Input: c.Input, Value: d}, nil
	case CommandShift:
		d, err := datehour.Parse(c.Input)
		if err != nil {
			return nil, err
		}
		return PointResult{Input: c.Input, Value: d.Add(c.Hours)}, nil
	case CommandRange:
		r, err := e.resolve(c.Input)
		if err != nil {
			return nil, err
		}
		return RangeResult{{Name: c.Input, Range: r}}, nil
	case CommandPeriod:
		r, ok := e.Periods[c.Input]
		if !ok {
			return nil, errors.Errorf("unknown period: %s", c.Input)
		}
		return RangeResult{{Name: c.Input, Range: r}}, nil
	case CommandPeriods:
		names := make([]string, 0, len(e.Periods))
		for name := range e.Periods {
			names = append(names, name)
		}
		sort.Strings(names)

		result := make(RangeResult, 0, len(names))
		for _, name := range names {
			result = append(result, NamedRange{Name: name, Range: e.Periods[name]})
		}
		return result, nil
	case CommandContains:
		r, err := e.resolve(c.Input)
		if err != nil {
			return nil, err
		}
		d, err := datehour.Parse(c.Probe)
		if err != nil {
			return nil, err
		}
		return ContainsResult{Range: r, Value: d}, nil
	}
	return nil, errors.Errorf("unknown command: %s", c.Name)
}

// resolve prefers a configured period over parsing the input.
func (e Evaluator) resolve(input string) (datehour.TimeRange, error) {
	if r, ok := e.Periods[input]; ok {
		return r, nil
	}
	return datehour.ParseTimeRange(input)
}
