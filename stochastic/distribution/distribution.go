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

// Package distribution evaluates probability mass functions, cumulative
// distribution functions and summary statistics of the binomial,
// geometric, negative binomial, Poisson and hypergeometric families.
//
// Every evaluator is a pure function of its arguments. Values of k outside
// a family's support, including non-integers, have probability zero, and
// degenerate parameters (p = 0, p = 1, lambda = 0) produce exact zeros and
// ones. Parameters are not validated here; see Validate.
package distribution

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/hananather/probability-sub006/stochastic"
	"github.com/hananather/probability-sub006/stochastic/statistics/discrete"
	mathutil "github.com/hananather/probability-sub006/utils/math"
)

//go:generate mockgen -source distribution.go -destination distribution_mock.go -package distribution

// Distribution is a discrete distribution on the integers.
type Distribution interface {
	// Family returns the family tag of the distribution.
	Family() Family

	// Min returns the smallest value of the support.
	Min() int

	// PMF returns Pr[X = k]. It is 0 for non-integer k and for k
	// outside the support.
	PMF(k float64) float64

	// CDF returns Pr[X <= k]. The sum covers at most MaxQuantileSteps
	// terms, so it falls short of the true value when the mass lies further
	// from the minimum of the support.
	CDF(k float64) float64

	// Stats returns mean, variance and mode.
	Stats() Stats
}

// Bounded is implemented by distributions with a finite support.
type Bounded interface {
	// Max returns the largest value of the support.
	Max() int
}

// Stats summarizes a distribution.
type Stats struct {
	Mean     float64
	Variance float64
	Mode     int
}

// StdDev returns the standard deviation.
func (s Stats) StdDev() float64 {
	return math.Sqrt(s.Variance)
}

// SupportRange is an inclusive window [Min, Max] of integers.
type SupportRange struct {
	Min int
	Max int
}

// Len returns the number of integers in the window.
func (r SupportRange) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Contains reports whether k lies in the window.
func (r SupportRange) Contains(k int) bool {
	return r.Min <= k && k <= r.Max
}

// PMFPoint is a point of a probability mass function.
type PMFPoint struct {
	K           int
	Probability float64
}

// CDFPoint is a point of a cumulative distribution function.
type CDFPoint struct {
	K          int
	Cumulative float64
}

// New returns the distribution of the given family with the given
// parameters. It fails only for an unknown family.
func New(family Family, params Params) (Distribution, error) {
	switch family {
	case Binomial:
		return BinomialDist{N: params.Int(ParamTrials), P: params.Float(ParamSuccess)}, nil
	case Geometric:
		return GeometricDist{P: params.Float(ParamSuccess)}, nil
	case NegativeBinomial:
		return NegativeBinomialDist{R: params.Int(ParamSuccesses), P: params.Float(ParamSuccess)}, nil
	case Poisson:
		return PoissonDist{Lambda: params.Float(ParamRate)}, nil
	case Hypergeometric:
		return HypergeometricDist{
			N:     params.Int(ParamPopulation),
			K:     params.Int(ParamMarked),
			Draws: params.Int(ParamDraws),
		}, nil
	}
	return nil, errors.Newf("unknown distribution family %d", int(family))
}

// PMF returns Pr[X = k] for the given family and parameters, or 0 for an
// unknown family.
func PMF(family Family, params Params, k float64) float64 {
	d, err := New(family, params)
	if err != nil {
		return 0
	}
	return d.PMF(k)
}

// CDF returns Pr[X <= k] for the given family and parameters, or 0 for an
// unknown family.
func CDF(family Family, params Params, k float64) float64 {
	d, err := New(family, params)
	if err != nil {
		return 0
	}
	return d.CDF(k)
}

// StatsOf returns the summary statistics for the given family and
// parameters, or zero Stats for an unknown family.
func StatsOf(family Family, params Params) Stats {
	d, err := New(family, params)
	if err != nil {
		return Stats{}
	}
	return d.Stats()
}

// indexLimit bounds integer conversions of float arguments; float64
// represents every integer up to 2^53 exactly.
const indexLimit = 1 << 53

func clampIndex(x float64) float64 {
	return mathutil.Clamp(x, -indexLimit, indexLimit)
}

// integral returns k as an int if it is an integer in float64 range.
func integral(k float64) (int, bool) {
	if math.IsNaN(k) || math.IsInf(k, 0) || k != math.Trunc(k) || math.Abs(k) > indexLimit {
		return 0, false
	}
	return int(k), true
}

// floorIndex returns floor(x) as an int, saturating at ±2^53. NaN maps
// to 0.
func floorIndex(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	return int(math.Floor(clampIndex(x)))
}

// ceilIndex returns ceil(x) as an int, saturating at ±2^53. NaN maps to 0.
func ceilIndex(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	return int(math.Ceil(clampIndex(x)))
}

// cumulative sums pmf over [lo, hi] in ascending order. Past the mode a
// vanishing term ends the scan since all later terms vanish too; the scan
// also ends once the sum reaches one or after MaxQuantileSteps terms.
func cumulative(pmf func(int) float64, lo, hi, mode int) float64 {
	var acc discrete.Accumulator
	if hi-lo >= stochastic.MaxQuantileSteps {
		hi = lo + stochastic.MaxQuantileSteps - 1
	}
	for k := lo; k <= hi; k++ {
		p := pmf(k)
		acc.Add(p)
		if acc.Sum() >= 1 || (p == 0 && k > mode) {
			break
		}
	}
	return mathutil.ClampProbability(acc.Sum())
}

// evalCDF implements CDF for a distribution with support starting at lo
// and, if bounded, ending at hi.
func evalCDF(k float64, pmf func(int) float64, lo, hi int, bounded bool, mode int) float64 {
	if math.IsNaN(k) {
		return 0
	}
	kf := floorIndex(k)
	if kf < lo {
		return 0
	}
	if bounded && kf >= hi {
		return 1
	}
	return cumulative(pmf, lo, kf, mode)
}

// direct reports whether a directly computed probability is usable, that
// is finite. Callers fall back to the log domain otherwise.
func direct(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
