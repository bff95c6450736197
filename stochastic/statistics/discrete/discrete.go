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

package discrete

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Tolerance is the allowed deviation of a probability total from one.
const Tolerance = 1e-9

// Accumulator sums probabilities with Kahan's compensated summation so
// that long runs of tiny tail terms are not lost against a large partial
// sum. See https://en.wikipedia.org/wiki/Kahan_summation_algorithm.
// The zero value is an empty sum.
type Accumulator struct {
	sum float64
	c   float64 // compensation term
}

// Add adds p to the running sum.
func (a *Accumulator) Add(p float64) {
	y := p - a.c
	t := a.sum + y
	a.c = (t - a.sum) - y
	a.sum = t
}

// Sum returns the running sum.
func (a *Accumulator) Sum() float64 {
	return a.sum
}

// Check checks if the given probability mass function (pmf) of a
// discrete finite random variable is valid. A valid pmf has all
// probabilities in the range [0,1], and the sum of all probabilities
// must be 1.
func Check(f []float64) error {
	var total Accumulator
	for i, x := range f {
		if x < 0.0 || x > 1.0 || math.IsNaN(x) {
			return errors.Newf("invalid probability (%v) at index %d of the pmf", x, i)
		}
		total.Add(x)
	}
	if math.Abs(total.Sum()-1.0) > Tolerance {
		return errors.Newf("total is not one (%v)", total.Sum())
	}
	return nil
}

// IsNonDecreasing reports whether the cumulative values in f never
// decrease and stay within [0,1].
func IsNonDecreasing(f []float64) bool {
	prev := 0.0
	for _, x := range f {
		if x < prev || x > 1.0 || math.IsNaN(x) {
			return false
		}
		prev = x
	}
	return true
}
