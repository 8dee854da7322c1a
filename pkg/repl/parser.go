/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	CommandParse    = "PARSE"
	CommandRange    = "RANGE"
	CommandShift    = "SHIFT"
	CommandPeriod   = "PERIOD"
	CommandPeriods  = "PERIODS"
	CommandContains = "CONTAINS"
)

// ContainsSeparator splits the range from the probed datehour in a CONTAINS
// command.
const ContainsSeparator = " @ "

type Command struct {
	Name string
	// Input is a datehour for PARSE and SHIFT, a range or period name for
	// RANGE and CONTAINS, and a period name for PERIOD.
	Input string
	Hours int
	Probe string
}

// ParseREPLCommand parses input from the command line
//
// This function assumes there is no '\n'
func ParseREPLCommand(b []byte) (Command, error) {
	b = bytes.TrimSpace(b)

	// all commands have a space after them, if not then they are command only
	// like PERIODS
	var cmd, data []byte
	ind := bytes.IndexByte(b, ' ')
	if ind == -1 {
		cmd = b
	} else {
		cmd = b[0:ind]
		data = bytes.TrimSpace(b[ind+1:])
	}

	c := Command{Name: strings.ToUpper(string(cmd))}

	switch c.Name {
	case CommandParse, CommandRange, CommandPeriod:
		if len(data) == 0 {
			return Command{}, errors.Errorf("%s requires an argument", strings.ToLower(c.Name))
		}
		c.Input = string(data)
	case CommandShift:
		hours, input, found := strings.Cut(string(data), " ")
		if !found {
			return Command{}, errors.New("usage: shift <hours> <datehour>")
		}
		n, err := strconv.Atoi(hours)
		if err != nil {
			return Command{}, errors.Wrapf(err, "invalid hour count %q", hours)
		}
		c.Hours = n
		c.Input = strings.TrimSpace(input)
	case CommandContains:
		input, probe, found := strings.Cut(string(data), ContainsSeparator)
		if !found {
			return Command{}, errors.New("usage: contains <range>" + ContainsSeparator + "<datehour>")
		}
		c.Input = strings.TrimSpace(input)
		c.Probe = strings.TrimSpace(probe)
	case CommandPeriods:
	case "":
		return Command{}, errors.New("empty command")
	default:
		return Command{}, errors.Errorf("unknown command: %s", cmd)
	}

	return c, nil
}
