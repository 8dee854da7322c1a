/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datehour

import (
	"io"
	"os"
	"sort"
	"time"

	dh "github.com/dburkart/datehour/pkg/datehour"
	"github.com/dburkart/datehour/pkg/validation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config is the [datehour] table of the config file.
type Config struct {
	Output  string                  `mapstructure:"output" validate:"omitempty,oneof=text csv json"`
	Periods map[string]dh.TimeRange `mapstructure:"periods" validate:"dive,required"`
}

func initConfig(configFile string) {
	log := viper.Get("logger").(zerolog.Logger)

	// config Read
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath("/etc/datehour")
	viper.AddConfigPath("/usr/local/etc/datehour")
	viper.AddConfigPath("$HOME/.datehour")
	viper.AddConfigPath(".")

	if configFile != "" {
		viper.SetConfigFile(configFile)
	}

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Debug().Msg("No config file found, using defaults as a base")
	} else if err != nil {
		log.Error().Err(err).Msg("Error loading config file")
	}

	log.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config from file")
}

// initPeriods decodes the named periods out of the config and publishes them
// to the subcommands under the "periods" key.
func initPeriods() error {
	log := viper.Get("logger").(zerolog.Logger)

	var cfg Config
	if err := validation.Load(viper.GetViper(), "datehour", &cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if cfg.Periods == nil {
		cfg.Periods = map[string]dh.TimeRange{}
	}

	names := make([]string, 0, len(cfg.Periods))
	for name := range cfg.Periods {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Trace().Str("period", name).Stringer("range", cfg.Periods[name]).Msg("loaded period")
	}

	viper.Set("periods", cfg.Periods)
	return nil
}

func initLogLevel() {
	level := viper.GetInt("datehour.verbose")
	switch clamp(2, level) {
	case 2:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func initLogging() {
	var writer io.Writer

	writer = os.Stderr
	if viper.GetBool("datehour.local") {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()

	viper.Set("logger", logger)
}

func traceConfig() {
	log := viper.Get("logger").(zerolog.Logger)

	for _, v := range viper.AllKeys() {
		if v == "logger" || v == "periods" {
			continue
		}
		log.Trace().Msgf("%s=%v", v, viper.Get(v))
	}
}

func clamp(clamp, a int) int {
	if a >= clamp {
		return clamp
	}
	return a
}
