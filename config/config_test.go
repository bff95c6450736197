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
	"os"
	"path/filepath"
	"testing"

	"github.com/hananather/probability-sub006/logger"
	"github.com/hananather/probability-sub006/stochastic/distribution"
	"github.com/hananather/probability-sub006/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// runConfig runs a probe command with all flags and returns the config it
// observed.
func runConfig(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var (
		cfg    *Config
		cfgErr error
	)
	app := cli.NewApp()
	app.Commands = []*cli.Command{{
		Name: "probe",
		Flags: []cli.Flag{
			&logger.LogLevelFlag,
			&utils.FamilyFlag,
			&utils.ParamFlag,
			&utils.ThresholdFlag,
			&utils.TargetFlag,
			&utils.FromFlag,
			&utils.ToFlag,
			&utils.RateFlag,
			&utils.HorizonFlag,
			&utils.RandomSeedFlag,
			&utils.FormatFlag,
			&utils.LanguageFlag,
		},
		Action: func(ctx *cli.Context) error {
			cfg, cfgErr = NewConfig(ctx)
			return nil
		},
	}}
	require.NoError(t, app.Run(append([]string{"test", "probe"}, args...)))
	return cfg, cfgErr
}

func withoutDotEnv(t *testing.T) {
	old := DotEnvFile
	DotEnvFile = filepath.Join(t.TempDir(), "missing.env")
	t.Cleanup(func() { DotEnvFile = old })
}

func TestNewConfig_Defaults(t *testing.T) {
	withoutDotEnv(t)
	cfg, err := runConfig(t, "--param", "n=10", "--param", "p=0.5")
	require.NoError(t, err)

	assert.Equal(t, "probe", cfg.CommandName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, distribution.Binomial, cfg.Family)
	assert.Equal(t, distribution.Params{"n": 10, "p": 0.5}, cfg.Params)
	assert.Equal(t, 0.999, cfg.Threshold)
	assert.Equal(t, 0.5, cfg.Target)
	assert.False(t, cfg.HasFrom)
	assert.False(t, cfg.HasTo)
	assert.Equal(t, utils.TableFormat, cfg.Format)
	assert.Equal(t, int64(0), cfg.RandomSeed)
}

func TestNewConfig_Flags(t *testing.T) {
	withoutDotEnv(t)
	cfg, err := runConfig(t,
		"--family", "Negative_Binomial",
		"--param", "r=3,p=0.25",
		"--threshold", "0.99",
		"--target", "0.9",
		"--from", "2",
		"--to", "40",
		"--seed", "7",
		"--format", "csv",
	)
	require.NoError(t, err)

	assert.Equal(t, distribution.NegativeBinomial, cfg.Family)
	assert.Equal(t, distribution.Params{"r": 3, "p": 0.25}, cfg.Params)
	assert.Equal(t, 0.99, cfg.Threshold)
	assert.Equal(t, 0.9, cfg.Target)
	assert.True(t, cfg.HasFrom)
	assert.True(t, cfg.HasTo)
	assert.Equal(t, 2, cfg.From)
	assert.Equal(t, 40, cfg.To)
	assert.Equal(t, int64(7), cfg.RandomSeed)
	assert.Equal(t, utils.CsvFormat, cfg.Format)
}

func TestNewConfig_EnvironmentOverridesDefaults(t *testing.T) {
	withoutDotEnv(t)
	t.Setenv("PROB_THRESHOLD", "0.95")
	t.Setenv("PROB_SEED", "42")
	t.Setenv("PROB_LOG_LEVEL", "debug")

	cfg, err := runConfig(t, "--param", "lambda=3", "--family", "poisson")
	require.NoError(t, err)
	assert.Equal(t, 0.95, cfg.Threshold)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewConfig_FlagsBeatEnvironment(t *testing.T) {
	withoutDotEnv(t)
	t.Setenv("PROB_THRESHOLD", "0.95")

	cfg, err := runConfig(t, "--threshold", "0.9")
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.Threshold)
}

func TestNewConfig_MalformedEnvironment(t *testing.T) {
	withoutDotEnv(t)
	t.Setenv("PROB_SEED", "not-a-number")

	_, err := runConfig(t)
	assert.Error(t, err)
}

func TestNewConfig_ReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PROB_FORMAT=markdown\n"), 0o600))
	old := DotEnvFile
	DotEnvFile = path
	t.Cleanup(func() {
		DotEnvFile = old
		_ = os.Unsetenv("PROB_FORMAT")
	})

	cfg, err := runConfig(t)
	require.NoError(t, err)
	assert.Equal(t, utils.MarkdownFormat, cfg.Format)
}

func TestNewConfig_Rejects(t *testing.T) {
	withoutDotEnv(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown family", []string{"--family", "zipf"}},
		{"malformed param", []string{"--param", "n"}},
		{"non numeric param", []string{"--param", "n=ten"}},
		{"threshold of one", []string{"--threshold", "1"}},
		{"zero threshold", []string{"--threshold", "0"}},
		{"unknown format", []string{"--format", "xml"}},
		{"negative rate", []string{"--rate", "-1"}},
		{"negative horizon", []string{"--horizon", "-1"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runConfig(t, test.args...)
			assert.Error(t, err)
		})
	}
}

func TestParseParams(t *testing.T) {
	params, err := ParseParams([]string{" N = 20 ", "K=7", "n=5", "n=6"})
	require.NoError(t, err)
	assert.Equal(t, distribution.Params{"N": 20, "K": 7, "n": 6}, params)

	params, err = ParseParams(nil)
	require.NoError(t, err)
	assert.Empty(t, params)

	_, err = ParseParams([]string{"=3"})
	assert.Error(t, err)
}

func TestConfig_Distribution(t *testing.T) {
	cfg := &Config{Family: distribution.Poisson, Params: distribution.Params{"lambda": 4}}
	d, err := cfg.Distribution()
	require.NoError(t, err)
	assert.Equal(t, distribution.Poisson, d.Family())

	cfg.Params = distribution.Params{"lambda": -1}
	_, err = cfg.Distribution()
	assert.ErrorIs(t, err, distribution.ErrInvalidParameter)
}

func TestConfig_Window(t *testing.T) {
	d := distribution.BinomialDist{N: 10, P: 0.5}
	cfg := &Config{Threshold: 0.999}

	w, err := cfg.Window(d)
	require.NoError(t, err)
	assert.Equal(t, distribution.SupportRange{Min: 0, Max: 10}, w)

	cfg.HasFrom, cfg.From = true, 3
	w, err = cfg.Window(d)
	require.NoError(t, err)
	assert.Equal(t, distribution.SupportRange{Min: 3, Max: 10}, w)

	cfg.HasTo, cfg.To = true, 2
	_, err = cfg.Window(d)
	assert.Error(t, err)
}
