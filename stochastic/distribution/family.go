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
	"strings"

	"github.com/cockroachdb/errors"
)

// Family identifies one of the supported discrete distribution families.
type Family int

const (
	Binomial         Family = iota // successes in n trials, parameters (n, p)
	Geometric                      // trials to the first success, parameters (p)
	NegativeBinomial               // trials to the r-th success, parameters (r, p)
	Poisson                        // events in a unit interval, parameters (lambda)
	Hypergeometric                 // successes in n draws without replacement, parameters (N, K, n)

	NumFamilies // number of supported families
)

// Parameter names.
const (
	ParamTrials     = "n"
	ParamSuccess    = "p"
	ParamSuccesses  = "r"
	ParamRate       = "lambda"
	ParamPopulation = "N"
	ParamMarked     = "K"
	ParamDraws      = "n"
)

var familyNames = [NumFamilies]string{
	Binomial:         "binomial",
	Geometric:        "geometric",
	NegativeBinomial: "negative-binomial",
	Poisson:          "poisson",
	Hypergeometric:   "hypergeometric",
}

var familyParams = [NumFamilies][]string{
	Binomial:         {ParamTrials, ParamSuccess},
	Geometric:        {ParamSuccess},
	NegativeBinomial: {ParamSuccesses, ParamSuccess},
	Poisson:          {ParamRate},
	Hypergeometric:   {ParamPopulation, ParamMarked, ParamDraws},
}

// String returns the canonical name of the family.
func (f Family) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return familyNames[f]
}

// Valid reports whether f names a supported family.
func (f Family) Valid() bool {
	return f >= 0 && f < NumFamilies
}

// ParamNames returns the ordered parameter list of the family.
func (f Family) ParamNames() []string {
	if !f.Valid() {
		return nil
	}
	return append([]string(nil), familyParams[f]...)
}

// ParseFamily resolves a family name. Case, dashes, underscores and blanks
// are ignored, so "NegativeBinomial", "negative_binomial" and
// "negative-binomial" all name the same family.
func ParseFamily(name string) (Family, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
	for f, n := range familyNames {
		if strings.ReplaceAll(n, "-", "") == key {
			return Family(f), nil
		}
	}
	if key == "negbinomial" || key == "negbin" {
		return NegativeBinomial, nil
	}
	return 0, errors.Newf("unknown distribution family %q", name)
}

// Params maps parameter names to values. A Params value is read, never
// modified, by this package.
type Params map[string]float64

// Float returns the named parameter, or 0 if it is missing.
func (p Params) Float(name string) float64 {
	return p[name]
}

// Int returns the named parameter rounded to the nearest integer, or 0 if
// it is missing or NaN. Values beyond ±2^53 saturate.
func (p Params) Int(name string) int {
	v := p[name]
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(clampIndex(v)))
}
