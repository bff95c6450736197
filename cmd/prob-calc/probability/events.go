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
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hananather/probability-sub006/config"
	"github.com/hananather/probability-sub006/logger"
	"github.com/hananather/probability-sub006/stochastic/generator"
	"github.com/hananather/probability-sub006/stochastic/statistics/exponential"
	"github.com/hananather/probability-sub006/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/urfave/cli/v2"
)

// EventsCommand simulates a Poisson process.
var EventsCommand = cli.Command{
	Action:    eventsAction,
	Name:      "events",
	Usage:     "simulate event times of a Poisson process",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.RateFlag,
		&utils.HorizonFlag,
		&utils.RandomSeedFlag,
		&utils.FormatFlag,
		&utils.LanguageFlag,
	},
	Description: `
The events command draws exponential inter-arrival times with the given
rate and prints every event before the horizon, followed by a summary of
the observed gaps.`,
}

func eventsAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "ProbabilityEvents")

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Infof("Simulate rate %v up to %v with seed %d", cfg.Rate, cfg.Horizon, seed)

	start := time.Now()
	process := generator.NewPoissonProcess(rand.New(rand.NewSource(seed)), cfg.Rate)
	times := process.Events(cfg.Horizon)
	gaps := generator.Gaps(times)
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Generated %d events in %vh %vm %vs", len(times), hours, minutes, seconds)

	r := newReport(ctx, cfg)
	rows := make([]table.Row, 0, len(times))
	for i, t := range times {
		rows = append(rows, table.Row{i + 1, r.decimal(t), r.decimal(gaps[i])})
	}
	if err = r.table("events", table.Row{"#", "time", "gap"}, rows, nil); err != nil {
		return err
	}

	expected := cfg.Rate * cfg.Horizon
	if len(gaps) == 0 {
		return r.line("No events, %v expected", r.decimal(expected))
	}
	summary, err := summarize(gaps)
	if err != nil {
		return err
	}
	ks := exponential.KSDistance(cfg.Rate, gaps)
	log.Debugf("KS distance of %d gaps to exponential(%v) is %v", len(gaps), cfg.Rate, ks)
	return r.line("%d events, %v expected; mean gap %v (expected %v), median gap %v, std dev %v, KS distance %v",
		len(times), r.decimal(expected),
		r.decimal(summary.mean), r.decimal(exponential.Mean(cfg.Rate)),
		r.decimal(summary.median), r.decimal(summary.stdDev), r.decimal(ks))
}

type gapSummary struct {
	mean, median, stdDev float64
}

func summarize(gaps []float64) (gapSummary, error) {
	var (
		s   gapSummary
		err error
	)
	if s.mean, err = stats.Mean(gaps); err != nil {
		return s, errors.Wrap(err, "mean gap")
	}
	if s.median, err = stats.Median(gaps); err != nil {
		return s, errors.Wrap(err, "median gap")
	}
	if s.stdDev, err = stats.StandardDeviation(gaps); err != nil {
		return s, errors.Wrap(err, "gap deviation")
	}
	return s, nil
}
