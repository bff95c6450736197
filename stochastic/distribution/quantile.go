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
	"github.com/hananather/probability-sub006/stochastic"
	"github.com/hananather/probability-sub006/stochastic/statistics/discrete"
)

// NoQuantile is returned by Quantile when no quantile can be given.
const NoQuantile = -1

// Quantile returns the smallest k with CDF(k) >= target, scanning upward
// from the minimum of the support with a running sum of the PMF.
//
// It returns NoQuantile when target lies outside (0,1) or when the scan
// does not reach target within MaxQuantileSteps terms. For a bounded
// distribution whose total falls short of target by rounding, the upper
// end of the support is returned.
func Quantile(d Distribution, target float64) int {
	if !(target > 0 && target < 1) {
		return NoQuantile
	}
	upper, bounded := 0, false
	if b, ok := d.(Bounded); ok {
		upper, bounded = b.Max(), true
	}
	var acc discrete.Accumulator
	k := d.Min()
	for step := 0; step < stochastic.MaxQuantileSteps; step++ {
		acc.Add(d.PMF(float64(k)))
		if acc.Sum() >= target {
			return k
		}
		if bounded && k >= upper {
			return upper
		}
		k++
	}
	return NoQuantile
}

// QuantileOf returns Quantile for the given family and parameters, or
// NoQuantile for an unknown family.
func QuantileOf(family Family, params Params, target float64) int {
	d, err := New(family, params)
	if err != nil {
		return NoQuantile
	}
	return Quantile(d, target)
}
