/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package shell

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dburkart/datehour/cmd/datehour/query"
	"github.com/dburkart/datehour/pkg/repl"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "shell",
	Short: "Interactive terminal for parsing datehours and ranges",
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		writer, err := query.Writer(os.Stdout)
		if err != nil {
			return err
		}

		return readlinePrompt(log, query.Evaluator(), writer)
	},
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// listPeriods completes configured period names after the given keyword.
func listPeriods(e repl.Evaluator, keyword string) func(string) []string {
	names := make([]string, 0, len(e.Periods))
	for name := range e.Periods {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(line string) []string {
		linePeriod := strings.TrimPrefix(strings.TrimLeft(line, " "), keyword)
		return filterStringSlice(names, strings.TrimLeft(linePeriod, " "))
	}
}

func readlinePrompt(log zerolog.Logger, e repl.Evaluator, writer repl.OutputWriter) error {
	// Configure the completer
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("parse"),
		readline.PcItem("shift"),
		readline.PcItem("range", readline.PcItemDynamic(listPeriods(e, "range"))),
		readline.PcItem("period", readline.PcItemDynamic(listPeriods(e, "period"))),
		readline.PcItem("periods"),
		readline.PcItem("contains", readline.PcItemDynamic(listPeriods(e, "contains"))),
		readline.PcItem("exit"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		if strings.ToUpper(line) == "HELP" {
			fmt.Println("usage:")
			fmt.Println(completer.Tree("    "))
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			break
		}

		c, err := repl.ParseREPLCommand([]byte(line))
		if err != nil {
			log.Error().Err(err).Send()
			continue
		}

		result, err := e.Eval(c)
		if err != nil {
			log.Error().Err(err).Str("command", c.Name).Send()
			continue
		}

		if err := writer.Write(result); err != nil {
			log.Error().Err(err).Msg("unable to write result")
		}
		fmt.Println()
	}
	rl.Clean()
	return nil
}
