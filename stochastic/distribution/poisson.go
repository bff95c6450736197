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

package distribution

import (
	"math"

	"github.com/hananather/probability-sub006/stochastic"
	"github.com/hananather/probability-sub006/stochastic/combinatorics"
	mathutil "github.com/hananather/probability-sub006/utils/math"
)

// PoissonDist is the number of events in a unit interval of a Poisson
// process with rate Lambda.
type PoissonDist struct {
	Lambda float64 // rate, Lambda >= 0
}

func (d PoissonDist) Family() Family { return Poisson }
func (d PoissonDist) Min() int       { return 0 }

// PMF returns the probability of exactly k events.
func (d PoissonDist) PMF(k float64) float64 {
	ki, ok := integral(k)
	if !ok {
		return 0
	}
	return d.pmf(ki)
}

func (d PoissonDist) pmf(k int) float64 {
	if k < 0 {
		return 0
	}
	if d.Lambda <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if k <= stochastic.LogDomainThreshold && d.Lambda <= stochastic.LogDomainThreshold {
		v := math.Pow(d.Lambda, float64(k)) * math.Exp(-d.Lambda) / combinatorics.Factorial(k)
		if direct(v) {
			return mathutil.ClampProbability(v)
		}
	}
	logPMF := float64(k)*math.Log(d.Lambda) - d.Lambda - combinatorics.LogFactorial(k)
	return mathutil.ClampProbability(math.Exp(logPMF))
}

// CDF returns the probability of at most k events.
func (d PoissonDist) CDF(k float64) float64 {
	return evalCDF(k, d.pmf, 0, 0, false, d.mode())
}

// Stats returns mean and variance lambda and mode floor(lambda).
func (d PoissonDist) Stats() Stats {
	lambda := mathutil.Max(d.Lambda, 0)
	return Stats{Mean: lambda, Variance: lambda, Mode: d.mode()}
}

func (d PoissonDist) mode() int {
	return mathutil.Max(floorIndex(d.Lambda), 0)
}
