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

// NegativeBinomialDist is the number of Bernoulli trials up to and
// including the R-th success, so its support starts at R.
type NegativeBinomialDist struct {
	R int     // required successes, R >= 1
	P float64 // success probability, 0 < P <= 1
}

func (d NegativeBinomialDist) Family() Family { return NegativeBinomial }

// Min returns R, or 0 for a degenerate R <= 0 which puts all mass at 0.
func (d NegativeBinomialDist) Min() int { return mathutil.Max(d.R, 0) }

// PMF returns the probability that the R-th success occurs on trial k.
func (d NegativeBinomialDist) PMF(k float64) float64 {
	ki, ok := integral(k)
	if !ok {
		return 0
	}
	return d.pmf(ki)
}

func (d NegativeBinomialDist) pmf(k int) float64 {
	if d.R <= 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if k < d.R || d.P <= 0 {
		return 0
	}
	if d.P >= 1 {
		if k == d.R {
			return 1
		}
		return 0
	}
	// C(k-1, r-1) p^r (1-p)^(k-r)
	if k-1 <= stochastic.LogDomainThreshold {
		v := combinatorics.BinomialCoefficient(k-1, d.R-1) *
			math.Pow(d.P, float64(d.R)) * math.Pow(1-d.P, float64(k-d.R))
		if direct(v) {
			return mathutil.ClampProbability(v)
		}
	}
	logPMF := combinatorics.LogBinomialCoefficient(k-1, d.R-1) +
		float64(d.R)*math.Log(d.P) + float64(k-d.R)*math.Log1p(-d.P)
	return mathutil.ClampProbability(math.Exp(logPMF))
}

// CDF returns the probability that the R-th success occurs no later than
// trial k.
func (d NegativeBinomialDist) CDF(k float64) float64 {
	return evalCDF(k, d.pmf, d.Min(), 0, false, d.mode())
}

// Stats returns mean r/p, variance r(1-p)/p² and mode
// floor((r-1)/p)+1 (1 when r = 1).
func (d NegativeBinomialDist) Stats() Stats {
	if d.R <= 0 {
		return Stats{}
	}
	r := float64(d.R)
	if d.P <= 0 {
		return Stats{Mean: math.Inf(1), Variance: math.Inf(1), Mode: d.R}
	}
	return Stats{
		Mean:     r / d.P,
		Variance: mathutil.Max(r*(1-d.P)/(d.P*d.P), 0),
		Mode:     d.mode(),
	}
}

func (d NegativeBinomialDist) mode() int {
	if d.R <= 1 || d.P <= 0 {
		return d.Min()
	}
	return mathutil.Max(floorIndex(float64(d.R-1)/d.P)+1, d.R)
}
