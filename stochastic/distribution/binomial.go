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

// BinomialDist is the number of successes in N independent Bernoulli
// trials with success probability P.
type BinomialDist struct {
	N int     // number of trials, N >= 0
	P float64 // success probability, 0 <= P <= 1
}

func (d BinomialDist) Family() Family { return Binomial }
func (d BinomialDist) Min() int       { return 0 }
func (d BinomialDist) Max() int       { return mathutil.Max(d.N, 0) }

// PMF returns the probability of exactly k successes.
func (d BinomialDist) PMF(k float64) float64 {
	ki, ok := integral(k)
	if !ok {
		return 0
	}
	return d.pmf(ki)
}

func (d BinomialDist) pmf(k int) float64 {
	if k < 0 || k > d.N {
		return 0
	}
	if d.P <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if d.P >= 1 {
		if k == d.N {
			return 1
		}
		return 0
	}
	if d.N <= stochastic.LogDomainThreshold {
		v := combinatorics.BinomialCoefficient(d.N, k) *
			math.Pow(d.P, float64(k)) * math.Pow(1-d.P, float64(d.N-k))
		if direct(v) {
			return mathutil.ClampProbability(v)
		}
	}
	logPMF := combinatorics.LogBinomialCoefficient(d.N, k) +
		float64(k)*math.Log(d.P) + float64(d.N-k)*math.Log1p(-d.P)
	return mathutil.ClampProbability(math.Exp(logPMF))
}

// CDF returns the probability of at most k successes.
func (d BinomialDist) CDF(k float64) float64 {
	return evalCDF(k, d.pmf, 0, d.Max(), true, d.mode())
}

// Stats returns mean np, variance np(1-p) and mode floor((n+1)p).
func (d BinomialDist) Stats() Stats {
	n := float64(d.N)
	return Stats{
		Mean:     n * d.P,
		Variance: mathutil.Max(n*d.P*(1-d.P), 0),
		Mode:     d.mode(),
	}
}

func (d BinomialDist) mode() int {
	return mathutil.Clamp(floorIndex(float64(d.N+1)*d.P), 0, d.Max())
}
