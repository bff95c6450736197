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
	"github.com/hananather/probability-sub006/stochastic/statistics/discrete"
	"github.com/hananather/probability-sub006/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// PMFCommand tabulates the probability mass function of a distribution.
var PMFCommand = cli.Command{
	Action:    pmfAction,
	Name:      "pmf",
	Usage:     "tabulate the probability mass function",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.FamilyFlag,
		&utils.ParamFlag,
		&utils.FromFlag,
		&utils.ToFlag,
		&utils.ThresholdFlag,
		&utils.FormatFlag,
		&utils.LanguageFlag,
	},
	Description: `
The pmf command prints P(X = k) for every k of the support window of the
distribution, or of [--from, --to] when given.`,
}

// CDFCommand tabulates the cumulative distribution function.
var CDFCommand = cli.Command{
	Action:    cdfAction,
	Name:      "cdf",
	Usage:     "tabulate the cumulative distribution function",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.FamilyFlag,
		&utils.ParamFlag,
		&utils.FromFlag,
		&utils.ToFlag,
		&utils.ThresholdFlag,
		&utils.FormatFlag,
		&utils.LanguageFlag,
	},
	Description: `
The cdf command prints P(X <= k) for every k of the support window of the
distribution, or of [--from, --to] when given.`,
}

func pmfAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "ProbabilityPMF")

	d, err := cfg.Distribution()
	if err != nil {
		return err
	}
	window, err := cfg.Window(d)
	if err != nil {
		return err
	}
	log.Infof("Evaluate pmf of %v over [%d, %d]", describe(cfg), window.Min, window.Max)

	points := distribution.PMFPoints(d, window)
	if len(points) < window.Len() {
		log.Warningf("Window truncated to %d values", len(points))
	}

	r := newReport(ctx, cfg)
	rows := make([]table.Row, 0, len(points))
	var total discrete.Accumulator
	for _, p := range points {
		rows = append(rows, table.Row{p.K, r.decimal(p.Probability)})
		total.Add(p.Probability)
	}
	log.Debugf("Tabulated mass %v", total.Sum())

	if err = r.table(describe(cfg), table.Row{"k", "P(X = k)"}, rows, table.Row{"total", r.decimal(total.Sum())}); err != nil {
		return err
	}
	if len(points) == 1 {
		return r.line("P(X = %d) = %v", points[0].K, r.percent(points[0].Probability))
	}
	return nil
}

func cdfAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "ProbabilityCDF")

	d, err := cfg.Distribution()
	if err != nil {
		return err
	}
	window, err := cfg.Window(d)
	if err != nil {
		return err
	}
	log.Infof("Evaluate cdf of %v over [%d, %d]", describe(cfg), window.Min, window.Max)

	points := distribution.CDFPoints(d, window)
	if len(points) < window.Len() {
		log.Warningf("Window truncated to %d values", len(points))
	}

	r := newReport(ctx, cfg)
	rows := make([]table.Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, table.Row{p.K, r.decimal(p.Cumulative)})
	}
	if err = r.table(describe(cfg), table.Row{"k", "P(X <= k)"}, rows, nil); err != nil {
		return err
	}
	if len(points) == 1 {
		return r.line("P(X <= %d) = %v", points[0].K, r.percent(points[0].Cumulative))
	}
	return nil
}
