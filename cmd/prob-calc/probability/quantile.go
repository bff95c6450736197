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
	"github.com/cockroachdb/errors"
	"github.com/hananather/probability-sub006/config"
	"github.com/hananather/probability-sub006/logger"
	"github.com/hananather/probability-sub006/stochastic/distribution"
	"github.com/hananather/probability-sub006/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// QuantileCommand finds the smallest k with P(X <= k) >= target.
var QuantileCommand = cli.Command{
	Action:    quantileAction,
	Name:      "quantile",
	Usage:     "find the smallest value whose cdf reaches the target",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.FamilyFlag,
		&utils.ParamFlag,
		&utils.TargetFlag,
		&utils.FormatFlag,
		&utils.LanguageFlag,
	},
}

// RangeCommand prints P(from <= X <= to).
var RangeCommand = cli.Command{
	Action:    rangeAction,
	Name:      "range",
	Usage:     "probability that the value falls into [from, to]",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.FamilyFlag,
		&utils.ParamFlag,
		&utils.FromFlag,
		&utils.ToFlag,
		&utils.FormatFlag,
		&utils.LanguageFlag,
	},
}

func quantileAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "ProbabilityQuantile")

	d, err := cfg.Distribution()
	if err != nil {
		return err
	}
	log.Infof("Quantile %v of %v", cfg.Target, describe(cfg))

	q := distribution.Quantile(d, cfg.Target)
	if q == distribution.NoQuantile {
		return errors.Newf("%v has no quantile for target %v", describe(cfg), cfg.Target)
	}
	c := d.CDF(float64(q))

	r := newReport(ctx, cfg)
	rows := []table.Row{{r.decimal(cfg.Target), q, r.decimal(c)}}
	if err = r.table(describe(cfg), table.Row{"target", "k", "P(X <= k)"}, rows, nil); err != nil {
		return err
	}
	return r.line("P(X <= %d) = %v", q, r.percent(c))
}

func rangeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "ProbabilityRange")

	if !cfg.HasFrom || !cfg.HasTo {
		return errors.Newf("range requires both --%v and --%v", utils.FromFlag.Name, utils.ToFlag.Name)
	}
	d, err := cfg.Distribution()
	if err != nil {
		return err
	}
	log.Infof("Range [%d, %d] of %v", cfg.From, cfg.To, describe(cfg))
	if cfg.To < cfg.From {
		log.Warningf("Empty range [%d, %d]", cfg.From, cfg.To)
	}

	p := distribution.RangeProbability(d, cfg.From, cfg.To)
	r := newReport(ctx, cfg)
	rows := []table.Row{{cfg.From, cfg.To, r.decimal(p)}}
	if err = r.table(describe(cfg), table.Row{"from", "to", "probability"}, rows, nil); err != nil {
		return err
	}
	return r.line("P(%d <= X <= %d) = %v", cfg.From, cfg.To, r.percent(p))
}
