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

package main

import (
	"fmt"
	"os"

	"github.com/hananather/probability-sub006/cmd/prob-calc/probability"
	"github.com/urfave/cli/v2"
)

var probCalcApp = &cli.App{
	Name:      "Discrete probability calculator",
	HelpName:  "prob-calc",
	Usage:     "evaluate discrete distributions and simulate Poisson processes",
	Copyright: "(c) 2025 The Probability Authors",
	Commands: []*cli.Command{
		&probability.PMFCommand,
		&probability.CDFCommand,
		&probability.StatsCommand,
		&probability.SupportCommand,
		&probability.QuantileCommand,
		&probability.RangeCommand,
		&probability.EventsCommand,
	},
}

func main() {
	if err := probCalcApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
