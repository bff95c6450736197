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

// Package exponential provides the exponential distribution used for
// inter-arrival times of a Poisson process.
package exponential

import (
	"math"
	"math/rand"
	"slices"
)

// CDF returns Pr[X <= x] for an exponential distribution with rate lambda.
// It is 0 for x <= 0 and for a non-positive rate.
func CDF(lambda float64, x float64) float64 {
	if x <= 0 || lambda <= 0 {
		return 0
	}
	return -math.Expm1(-lambda * x)
}

// Quantile returns the inverse of CDF for a probability p in [0,1). A
// non-positive rate yields +Inf, since no event ever occurs.
func Quantile(lambda float64, p float64) float64 {
	if lambda <= 0 || p >= 1 {
		return math.Inf(1)
	}
	if p <= 0 {
		return 0
	}
	return -math.Log1p(-p) / lambda
}

// Sample draws an exponential variate with rate lambda by inversion of the
// CDF using the provided random generator.
func Sample(rg *rand.Rand, lambda float64) float64 {
	return Quantile(lambda, rg.Float64())
}

// Mean returns 1/lambda, or +Inf for a non-positive rate.
func Mean(lambda float64) float64 {
	if lambda <= 0 {
		return math.Inf(1)
	}
	return 1 / lambda
}

// KSDistance returns the Kolmogorov-Smirnov distance between the empirical
// distribution of samples and an exponential distribution with rate
// lambda, i.e. the largest gap between the two CDFs. It is 0 for no samples.
func KSDistance(lambda float64, samples []float64) float64 {
	n := float64(len(samples))
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	d := 0.0
	for i, x := range sorted {
		f := CDF(lambda, x)
		d = math.Max(d, math.Max(f-float64(i)/n, float64(i+1)/n-f))
	}
	return d
}
