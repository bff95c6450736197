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

// Package combinatorics provides factorials and binomial coefficients in
// both the linear and the log domain. Out-of-range arguments yield the
// neutral sentinel (0, or -Inf in the log domain) instead of an error so
// that callers may probe arbitrary inputs.
package combinatorics

import "math"

const (
	// maxFactorial is the largest n whose factorial is finite in float64.
	maxFactorial = 170

	// maxExactLog is the largest n for which ln(n!) is taken from the
	// exact product rather than from the log-gamma function.
	maxExactLog = 20
)

// Factorial returns n! for n >= 0 and 0 for n < 0. Results beyond the
// float64 range are +Inf.
func Factorial(n int) float64 {
	if n < 0 {
		return 0
	}
	if n > maxFactorial {
		return math.Inf(1)
	}
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// LogFactorial returns ln(n!) for n >= 0 and -Inf for n < 0.
func LogFactorial(n int) float64 {
	if n < 0 {
		return math.Inf(-1)
	}
	if n <= maxExactLog {
		return math.Log(Factorial(n))
	}
	lg, _ := math.Lgamma(float64(n) + 1)
	return lg
}

// BinomialCoefficient returns C(n, k), the number of k-subsets of an
// n-set, and 0 when k lies outside [0, n]. The coefficient is accumulated
// as a running product over min(k, n-k) factors, so intermediate values
// never exceed the result by more than a factor of n.
func BinomialCoefficient(n, k int) float64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-k+i) / float64(i)
	}
	// Division may leave a rounding residue; coefficients below 2^53 are
	// exact integers.
	if result < 1<<53 {
		return math.Round(result)
	}
	return result
}

// LogBinomialCoefficient returns ln C(n, k) and -Inf when k lies outside
// [0, n].
func LogBinomialCoefficient(n, k int) float64 {
	if k < 0 || n < 0 || k > n {
		return math.Inf(-1)
	}
	if k == 0 || k == n {
		return 0
	}
	return LogFactorial(n) - LogFactorial(k) - LogFactorial(n-k)
}
