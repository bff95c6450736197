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

package utils

import (
	"github.com/hananather/probability-sub006/stochastic"
	"github.com/urfave/cli/v2"
)

// Output formats understood by the table renderer.
const (
	TableFormat    = "table"
	CsvFormat      = "csv"
	MarkdownFormat = "markdown"
)

var (
	FamilyFlag = cli.StringFlag{
		Name:    "family",
		Aliases: []string{"f"},
		Usage:   "distribution family (binomial, geometric, negative-binomial, poisson, hypergeometric)",
		Value:   "binomial",
	}
	ParamFlag = cli.StringSliceFlag{
		Name:    "param",
		Aliases: []string{"p"},
		Usage:   "distribution parameter as name=value, may be repeated",
	}
	ThresholdFlag = cli.Float64Flag{
		Name:  "threshold",
		Usage: "probability mass a support window must capture",
		Value: stochastic.DefaultThreshold,
	}
	TargetFlag = cli.Float64Flag{
		Name:  "target",
		Usage: "cumulative probability the quantile must reach",
		Value: 0.5,
	}
	FromFlag = cli.IntFlag{
		Name:  "from",
		Usage: "first value of the evaluated range",
	}
	ToFlag = cli.IntFlag{
		Name:  "to",
		Usage: "last value of the evaluated range",
	}
	RateFlag = cli.Float64Flag{
		Name:  "rate",
		Usage: "expected number of events per unit time",
		Value: 1,
	}
	HorizonFlag = cli.Float64Flag{
		Name:  "horizon",
		Usage: "length of the simulated time interval",
		Value: 10,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the event generator, 0 picks a time based seed",
	}
	FormatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "output format (table, csv, markdown)",
		Value: TableFormat,
	}
	LanguageFlag = cli.StringFlag{
		Name:  "lang",
		Usage: "language tag used to format numbers",
		Value: "en",
	}
)
