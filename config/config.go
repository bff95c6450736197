// Copyright 2025 The Probability Authors
// This file is part of Probability, a discrete distribution library
//
// Probability is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Probability is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Probability. If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"io/fs"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/hananather/probability-sub006/logger"
	"github.com/hananather/probability-sub006/stochastic/distribution"
	"github.com/hananather/probability-sub006/utils"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// EnvPrefix is prepended to every environment variable read by NewConfig.
const EnvPrefix = "PROB_"

// DotEnvFile is loaded, if present, before the environment is read.
// Variables already set in the process environment take precedence.
var DotEnvFile = ".env"

// Config summarizes the user choices of a single command invocation.
type Config struct {
	AppName     string
	CommandName string

	LogLevel   string
	Family     distribution.Family
	Params     distribution.Params
	Threshold  float64 // mass a support window has to capture
	Target     float64 // quantile target probability
	From       int
	To         int
	HasFrom    bool
	HasTo      bool
	Rate       float64 // events per unit time
	Horizon    float64
	RandomSeed int64
	Format     string
	Language   string
}

// environment lists the settings that may come from PROB_* variables when
// the matching flag is not given on the command line.
type environment struct {
	LogLevel   string  `env:"LOG_LEVEL"`
	Threshold  float64 `env:"THRESHOLD"`
	RandomSeed int64   `env:"SEED"`
	Format     string  `env:"FORMAT"`
	Language   string  `env:"LANG"`
}

// NewConfig creates and validates a config from the cli context, the
// process environment and an optional .env file.
func NewConfig(ctx *cli.Context) (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	cfg := createConfigFromFlags(ctx)
	if err := applyEnvironment(ctx, cfg); err != nil {
		return nil, err
	}

	family, err := distribution.ParseFamily(getFlagValue(ctx, utils.FamilyFlag).(string))
	if err != nil {
		return nil, err
	}
	cfg.Family = family

	cfg.Params, err = ParseParams(getFlagValue(ctx, utils.ParamFlag).([]string))
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Distribution validates the configured parameters and builds the
// distribution they describe.
func (cfg *Config) Distribution() (distribution.Distribution, error) {
	if err := distribution.Validate(cfg.Family, cfg.Params); err != nil {
		return nil, err
	}
	return distribution.New(cfg.Family, cfg.Params)
}

// Window returns the values a command should tabulate: the support window
// of d, with either end replaced by --from/--to when given.
func (cfg *Config) Window(d distribution.Distribution) (distribution.SupportRange, error) {
	w := distribution.Support(d, cfg.Threshold)
	if cfg.HasFrom {
		w.Min = cfg.From
	}
	if cfg.HasTo {
		w.Max = cfg.To
	}
	if w.Max < w.Min {
		return w, errors.Newf("empty range [%d, %d]", w.Min, w.Max)
	}
	return w, nil
}

// ParseParams converts name=value pairs into distribution parameters.
// Later pairs overwrite earlier ones with the same name.
func ParseParams(pairs []string) (distribution.Params, error) {
	params := make(distribution.Params, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, errors.Newf("malformed parameter %q, expected name=value", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %v", name)
		}
		params[name] = v
	}
	return params, nil
}

func (cfg *Config) validate() error {
	if !(cfg.Threshold > 0 && cfg.Threshold < 1) {
		return errors.Newf("threshold must lie in (0, 1), got %v", cfg.Threshold)
	}
	switch cfg.Format {
	case utils.TableFormat, utils.CsvFormat, utils.MarkdownFormat:
	default:
		return errors.Newf("unknown output format %q", cfg.Format)
	}
	if cfg.Rate < 0 {
		return errors.Newf("rate must not be negative, got %v", cfg.Rate)
	}
	if cfg.Horizon < 0 {
		return errors.Newf("horizon must not be negative, got %v", cfg.Horizon)
	}
	return nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.Wrapf(err, "cannot load %v", path)
}

// applyEnvironment overrides flag defaults with PROB_* variables. Flags
// given explicitly on the command line always win.
func applyEnvironment(ctx *cli.Context, cfg *Config) error {
	vars := environment{
		LogLevel:   cfg.LogLevel,
		Threshold:  cfg.Threshold,
		RandomSeed: cfg.RandomSeed,
		Format:     cfg.Format,
		Language:   cfg.Language,
	}
	if err := env.ParseWithOptions(&vars, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Wrap(err, "cannot read environment")
	}

	if !ctx.IsSet(logger.LogLevelFlag.Name) {
		cfg.LogLevel = vars.LogLevel
	}
	if !ctx.IsSet(utils.ThresholdFlag.Name) {
		cfg.Threshold = vars.Threshold
	}
	if !ctx.IsSet(utils.RandomSeedFlag.Name) {
		cfg.RandomSeed = vars.RandomSeed
	}
	if !ctx.IsSet(utils.FormatFlag.Name) {
		cfg.Format = vars.Format
	}
	if !ctx.IsSet(utils.LanguageFlag.Name) {
		cfg.Language = vars.Language
	}
	return nil
}
