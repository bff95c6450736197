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

// HypergeometricDist is the number of marked items in Draws draws without
// replacement from a population of N items of which K are marked.
type HypergeometricDist struct {
	N     int // population size, N >= 0
	K     int // marked items, 0 <= K <= N
	Draws int // draws, usually written n, 0 <= Draws <= N
}

func (d HypergeometricDist) Family() Family { return Hypergeometric }

// Min returns max(0, Draws-N+K).
func (d HypergeometricDist) Min() int { return mathutil.Max(0, d.Draws-d.N+d.K) }

// Max returns min(Draws, K).
func (d HypergeometricDist) Max() int { return mathutil.Max(mathutil.Min(d.Draws, d.K), d.Min()) }

func (d HypergeometricDist) valid() bool {
	return d.N >= 0 && d.K >= 0 && d.Draws >= 0 && d.K <= d.N && d.Draws <= d.N
}

// PMF returns the probability of drawing exactly k marked items.
func (d HypergeometricDist) PMF(k float64) float64 {
	ki, ok := integral(k)
	if !ok {
		return 0
	}
	return d.pmf(ki)
}

func (d HypergeometricDist) pmf(k int) float64 {
	if !d.valid() || k < d.Min() || k > d.Max() {
		return 0
	}
	// Degenerate populations leave a single possible outcome.
	if d.K == 0 || d.Draws == 0 || d.K == d.N || d.Draws == d.N {
		return 1
	}
	// C(K, k) C(N-K, n-k) / C(N, n)
	if d.N <= stochastic.LogDomainThreshold {
		v := combinatorics.BinomialCoefficient(d.K, k) *
			combinatorics.BinomialCoefficient(d.N-d.K, d.Draws-k) /
			combinatorics.BinomialCoefficient(d.N, d.Draws)
		if direct(v) {
			return mathutil.ClampProbability(v)
		}
	}
	logPMF := combinatorics.LogBinomialCoefficient(d.K, k) +
		combinatorics.LogBinomialCoefficient(d.N-d.K, d.Draws-k) -
		combinatorics.LogBinomialCoefficient(d.N, d.Draws)
	return mathutil.ClampProbability(math.Exp(logPMF))
}

// CDF returns the probability of drawing at most k marked items.
func (d HypergeometricDist) CDF(k float64) float64 {
	return evalCDF(k, d.pmf, d.Min(), d.Max(), true, d.mode())
}

// Stats returns mean nK/N, variance nK/N (1-K/N) (N-n)/(N-1) and mode
// floor((n+1)(K+1)/(N+2)).
func (d HypergeometricDist) Stats() Stats {
	if !d.valid() || d.N == 0 {
		return Stats{Mode: d.Min()}
	}
	n, k, pop := float64(d.Draws), float64(d.K), float64(d.N)
	mean := n * k / pop
	variance := 0.0
	if d.N > 1 {
		variance = mean * (1 - k/pop) * (pop - n) / (pop - 1)
	}
	return Stats{Mean: mean, Variance: mathutil.Max(variance, 0), Mode: d.mode()}
}

func (d HypergeometricDist) mode() int {
	m := floorIndex(float64(d.Draws+1) * float64(d.K+1) / float64(d.N+2))
	return mathutil.Clamp(m, d.Min(), d.Max())
}
