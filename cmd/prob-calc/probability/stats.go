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

package probability

import (
	"github.com/hananather/probability-sub006/config"
	"github.com/hananather/probability-sub006/logger"
	"github.com/hananather/probability-sub006/stochastic/distribution"
	"github.com/hananather/probability-sub006/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// StatsCommand prints mean, variance and mode of a distribution.
var StatsCommand = cli.Command{
	Action:    statsAction,
	Name:      "stats",
	Usage:     "print summary statistics",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.FamilyFlag,
		&utils.ParamFlag,
		&utils.FormatFlag,
		&utils.LanguageFlag,
	},
}

// SupportCommand prints the smallest window holding the requested mass.
var SupportCommand = cli.Command{
	Action:    supportAction,
	Name:      "support",
	Usage:     "estimate the window holding most of the probability mass",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.FamilyFlag,
		&utils.ParamFlag,
		&utils.ThresholdFlag,
		&utils.FormatFlag,
		&utils.LanguageFlag,
	},
}

func statsAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "ProbabilityStats")

	d, err := cfg.Distribution()
	if err != nil {
		return err
	}
	log.Infof("Summarize %v", describe(cfg))

	s := d.Stats()
	r := newReport(ctx, cfg)
	rows := []table.Row{
		{"mean", r.decimal(s.Mean)},
		{"variance", r.decimal(s.Variance)},
		{"std dev", r.decimal(s.StdDev())},
		{"mode", s.Mode},
	}
	return r.table(describe(cfg), table.Row{"statistic", "value"}, rows, nil)
}

func supportAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "ProbabilitySupport")

	d, err := cfg.Distribution()
	if err != nil {
		return err
	}
	w := distribution.Support(d, cfg.Threshold)
	mass := distribution.RangeProbability(d, w.Min, w.Max)
	log.Infof("Support of %v at threshold %v is [%d, %d]", describe(cfg), cfg.Threshold, w.Min, w.Max)
	if mass < cfg.Threshold {
		log.Warningf("Window holds %v, less than the threshold", mass)
	}

	r := newReport(ctx, cfg)
	rows := []table.Row{{w.Min, w.Max, w.Len(), r.decimal(mass)}}
	if err = r.table(describe(cfg), table.Row{"min", "max", "values", "mass"}, rows, nil); err != nil {
		return err
	}
	return r.line("P(%d <= X <= %d) = %v", w.Min, w.Max, r.percent(mass))
}
