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
	"github.com/hananather/probability-sub006/stochastic/statistics/discrete"
	mathutil "github.com/hananather/probability-sub006/utils/math"
)

// Support returns the integer window holding at least threshold of the
// probability mass of d. Bounded families return their exact support.
// Windows of unbounded families start at the minimum of the support, so
// the mass they hold equals CDF(Max). Their upper end starts from an
// analytic estimate, the inverted CDF for the geometric family and the
// mean plus StdDevWidth standard deviations otherwise, and is then raised
// until the window holds threshold of the mass.
//
// No window is longer than MaxSupportWindow. When the mass sits further
// out, as for a geometric family with p far below 1/MaxSupportWindow, the
// capped window holds less than threshold.
//
// A threshold outside (0,1) is replaced by DefaultThreshold.
func Support(d Distribution, threshold float64) SupportRange {
	if !(threshold > 0 && threshold < 1) {
		threshold = stochastic.DefaultThreshold
	}
	switch v := d.(type) {
	case BinomialDist:
		return SupportRange{Min: v.Min(), Max: v.Max()}
	case HypergeometricDist:
		return SupportRange{Min: v.Min(), Max: v.Max()}
	case GeometricDist:
		if v.P >= 1 {
			return SupportRange{Min: 1, Max: 1}
		}
		hi := math.Inf(1)
		if v.P > 0 {
			hi = math.Ceil(math.Log(1-threshold) / math.Log1p(-v.P))
		}
		return extend(d, window(1, hi), threshold)
	case NegativeBinomialDist:
		s := v.Stats()
		return extend(d, window(v.Min(), s.Mean+stochastic.StdDevWidth*s.StdDev()), threshold)
	case PoissonDist:
		s := v.Stats()
		hi := math.Max(math.Ceil(s.Mean+stochastic.StdDevWidth*s.StdDev()), stochastic.MinPoissonWidth)
		return extend(d, window(0, hi), threshold)
	}
	if b, ok := d.(Bounded); ok {
		return SupportRange{Min: d.Min(), Max: b.Max()}
	}
	return extend(d, SupportRange{Min: d.Min(), Max: d.Min()}, threshold)
}

// SupportRangeOf returns Support for the given family and parameters, or
// an empty window for an unknown family.
func SupportRangeOf(family Family, params Params, threshold float64) SupportRange {
	d, err := New(family, params)
	if err != nil {
		return SupportRange{}
	}
	return Support(d, threshold)
}

// window returns [lo, hi] with hi rounded up, no smaller than lo and
// capped at MaxSupportWindow values.
func window(lo int, hi float64) SupportRange {
	limit := lo + stochastic.MaxSupportWindow - 1
	if math.IsNaN(hi) || hi > float64(limit) {
		return SupportRange{Min: lo, Max: limit}
	}
	return SupportRange{Min: lo, Max: mathutil.Max(ceilIndex(hi), lo)}
}

// extend raises the upper end of r until r holds threshold of the mass of
// d or reaches MaxSupportWindow values.
func extend(d Distribution, r SupportRange, threshold float64) SupportRange {
	var acc discrete.Accumulator
	for k := r.Min; k <= r.Max; k++ {
		acc.Add(d.PMF(float64(k)))
	}
	for acc.Sum() < threshold && r.Len() < stochastic.MaxSupportWindow {
		r.Max++
		acc.Add(d.PMF(float64(r.Max)))
	}
	return r
}
