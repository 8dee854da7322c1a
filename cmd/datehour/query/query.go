/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package query

import (
	"io"
	"os"
	"strings"

	"github.com/dburkart/datehour/pkg/datehour"
	"github.com/dburkart/datehour/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	ParseCommand = &cobra.Command{
		Use:   "parse <datehour>...",
		Short: "Parse datehours and show the period each one implies",
		Args:  cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if err := run(cmd.OutOrStdout(), repl.Command{Name: repl.CommandParse, Input: arg}); err != nil {
					return err
				}
			}
			return nil
		},
	}

	RangeCommand = &cobra.Command{
		Use:   "range <start|period> [stop]",
		Short: "Build a time range from a period, a named period, or two bounds",
		Args:  cobra.RangeArgs(1, 2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), repl.Command{Name: repl.CommandRange, Input: strings.Join(args, datehour.RangeSeparator)})
		},
	}

	ShiftCommand = &cobra.Command{
		Use:   "shift <datehour>",
		Short: "Shift a datehour by a number of hours",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := cmd.Flags().GetInt("hours")
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), repl.Command{Name: repl.CommandShift, Input: args[0], Hours: hours})
		},
	}

	PeriodsCommand = &cobra.Command{
		Use:   "periods",
		Short: "List the periods named in the config file",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), repl.Command{Name: repl.CommandPeriods})
		},
	}

	ContainsCommand = &cobra.Command{
		Use:   "contains <range|period> <datehour>",
		Short: "Check whether a time range contains a datehour",
		Args:  cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), repl.Command{Name: repl.CommandContains, Input: args[0], Probe: args[1]})
		},
	}
)

func init() {
	ShiftCommand.Flags().IntP("hours", "n", 1, "Number of hours to shift by, negative to go back")
}

// Evaluator returns an evaluator over the periods loaded from the config.
func Evaluator() repl.Evaluator {
	periods, _ := viper.Get("periods").(map[string]datehour.TimeRange)
	return repl.Evaluator{Periods: periods}
}

// Writer returns the output writer selected by --output.
func Writer(w io.Writer) (repl.OutputWriter, error) {
	output := viper.GetString("datehour.output")
	for _, f := range repl.OutputFormats {
		if f == output {
			return repl.NewOutputWriter(w, output), nil
		}
	}
	return nil, errors.Errorf("unsupported output format: %s", output)
}

func run(w io.Writer, c repl.Command) error {
	log, ok := viper.Get("logger").(zerolog.Logger)
	if !ok {
		log = zerolog.New(os.Stderr)
	}

	writer, err := Writer(w)
	if err != nil {
		return err
	}

	log.Debug().Str("command", c.Name).Str("input", c.Input).Msg("evaluating")
	result, err := Evaluator().Eval(c)
	if err != nil {
		return errors.Wrapf(err, "%s failed", strings.ToLower(c.Name))
	}
	return writer.Write(result)
}
