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
	mathutil "github.com/hananather/probability-sub006/utils/math"
)

// GeometricDist is the number of Bernoulli trials up to and including the
// first success, so its support starts at 1.
type GeometricDist struct {
	P float64 // success probability, 0 < P <= 1
}

func (d GeometricDist) Family() Family { return Geometric }
func (d GeometricDist) Min() int       { return 1 }

// PMF returns the probability that the first success occurs on trial k.
func (d GeometricDist) PMF(k float64) float64 {
	ki, ok := integral(k)
	if !ok {
		return 0
	}
	return d.pmf(ki)
}

func (d GeometricDist) pmf(k int) float64 {
	if k < 1 || d.P <= 0 {
		return 0
	}
	if d.P >= 1 {
		if k == 1 {
			return 1
		}
		return 0
	}
	if k <= stochastic.LogDomainThreshold {
		return mathutil.ClampProbability(math.Pow(1-d.P, float64(k-1)) * d.P)
	}
	return mathutil.ClampProbability(math.Exp(float64(k-1)*math.Log1p(-d.P) + math.Log(d.P)))
}

// CDF returns the probability that the first success occurs no later than
// trial k.
func (d GeometricDist) CDF(k float64) float64 {
	return evalCDF(k, d.pmf, 1, 0, false, 1)
}

// Stats returns mean 1/p, variance (1-p)/p² and mode 1. For p = 0 the
// mean and variance are +Inf.
func (d GeometricDist) Stats() Stats {
	if d.P <= 0 {
		return Stats{Mean: math.Inf(1), Variance: math.Inf(1), Mode: 1}
	}
	return Stats{
		Mean:     1 / d.P,
		Variance: mathutil.Max((1-d.P)/(d.P*d.P), 0),
		Mode:     1,
	}
}
