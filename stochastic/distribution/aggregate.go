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
	mathutil "github.com/hananather/probability-sub006/utils/math"
)

// RangeProbability returns Pr[a <= X <= b] as the sum of the PMF over
// a..b. It is 0 when b < a.
func RangeProbability(d Distribution, a, b int) float64 {
	if b < a {
		return 0
	}
	a = mathutil.Max(a, d.Min())
	if bd, ok := d.(Bounded); ok {
		b = mathutil.Min(b, bd.Max())
	}
	if b-a >= stochastic.MaxQuantileSteps {
		b = a + stochastic.MaxQuantileSteps - 1
	}
	var acc discrete.Accumulator
	for k := a; k <= b; k++ {
		acc.Add(d.PMF(float64(k)))
	}
	return mathutil.ClampProbability(acc.Sum())
}

// RangeProbabilityOf returns RangeProbability for the given family and
// parameters, or 0 for an unknown family.
func RangeProbabilityOf(family Family, params Params, a, b int) float64 {
	d, err := New(family, params)
	if err != nil {
		return 0
	}
	return RangeProbability(d, a, b)
}

// limitWindow trims r to at most MaxSupportWindow values.
func limitWindow(r SupportRange) SupportRange {
	if r.Len() > stochastic.MaxSupportWindow {
		r.Max = r.Min + stochastic.MaxSupportWindow - 1
	}
	return r
}

// PMFPoints returns the PMF of d at every k in r, in increasing order.
func PMFPoints(d Distribution, r SupportRange) []PMFPoint {
	r = limitWindow(r)
	points := make([]PMFPoint, 0, r.Len())
	for k := r.Min; k <= r.Max; k++ {
		points = append(points, PMFPoint{K: k, Probability: d.PMF(float64(k))})
	}
	return points
}

// CDFPoints returns the CDF of d at every k in r, in increasing order.
// The values come from a single running sum starting at the minimum of the
// support, so they agree with CDF.
func CDFPoints(d Distribution, r SupportRange) []CDFPoint {
	r = limitWindow(r)
	points := make([]CDFPoint, 0, r.Len())
	upper, bounded := 0, false
	if b, ok := d.(Bounded); ok {
		upper, bounded = b.Max(), true
	}
	var acc discrete.Accumulator
	k := d.Min()
	if r.Min-k > stochastic.MaxQuantileSteps {
		// The window lies far beyond the start of the support; fall back
		// to one CDF evaluation per point.
		for k := r.Min; k <= r.Max; k++ {
			points = append(points, CDFPoint{K: k, Cumulative: d.CDF(float64(k))})
		}
		return points
	}
	for ; k < r.Min; k++ {
		acc.Add(d.PMF(float64(k)))
	}
	for k := r.Min; k <= r.Max; k++ {
		var c float64
		switch {
		case k < d.Min():
			c = 0
		case bounded && k >= upper:
			c = 1
		default:
			acc.Add(d.PMF(float64(k)))
			c = mathutil.ClampProbability(acc.Sum())
		}
		points = append(points, CDFPoint{K: k, Cumulative: c})
	}
	return points
}
