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

	"github.com/cockroachdb/errors"
)

// ErrInvalidParameter marks parameter sets outside a family's domain.
var ErrInvalidParameter = errors.New("invalid distribution parameter")

// Validate checks params against the domain of family. The evaluators do
// not call it; it is meant for callers that accept parameters from users
// and want to reject them before evaluation. Returned errors satisfy
// errors.Is(err, ErrInvalidParameter).
func Validate(family Family, params Params) error {
	if !family.Valid() {
		return errors.Newf("unknown distribution family %d", int(family))
	}
	for _, name := range family.ParamNames() {
		v, ok := params[name]
		if !ok {
			return errors.Wrapf(ErrInvalidParameter, "%v: missing parameter %q", family, name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidParameter, "%v: parameter %q is not finite", family, name)
		}
	}
	switch family {
	case Binomial:
		if err := checkCount(family, params, ParamTrials, 1); err != nil {
			return err
		}
		return checkProbability(family, params, false)
	case Geometric:
		return checkProbability(family, params, true)
	case NegativeBinomial:
		if err := checkCount(family, params, ParamSuccesses, 1); err != nil {
			return err
		}
		return checkProbability(family, params, true)
	case Poisson:
		if params[ParamRate] < 0 {
			return errors.Wrapf(ErrInvalidParameter, "%v: rate %v is negative", family, params[ParamRate])
		}
	case Hypergeometric:
		for _, name := range []string{ParamPopulation, ParamMarked, ParamDraws} {
			if err := checkCount(family, params, name, 0); err != nil {
				return err
			}
		}
		pop := params.Int(ParamPopulation)
		if pop < 1 {
			return errors.Wrapf(ErrInvalidParameter, "%v: population %d is empty", family, pop)
		}
		if k := params.Int(ParamMarked); k > pop {
			return errors.Wrapf(ErrInvalidParameter, "%v: %d marked items exceed population %d", family, k, pop)
		}
		if n := params.Int(ParamDraws); n > pop {
			return errors.Wrapf(ErrInvalidParameter, "%v: %d draws exceed population %d", family, n, pop)
		}
	}
	return nil
}

// checkCount requires the named parameter to be an integer >= lo.
func checkCount(family Family, params Params, name string, lo int) error {
	v := params[name]
	if v != math.Trunc(v) {
		return errors.Wrapf(ErrInvalidParameter, "%v: parameter %q must be an integer, got %v", family, name, v)
	}
	if v < float64(lo) {
		return errors.Wrapf(ErrInvalidParameter, "%v: parameter %q must be at least %d, got %v", family, name, lo, v)
	}
	return nil
}

// checkProbability requires p in [0,1], or in (0,1] if positive is set.
func checkProbability(family Family, params Params, positive bool) error {
	p := params[ParamSuccess]
	if p < 0 || p > 1 || (positive && p == 0) {
		return errors.Wrapf(ErrInvalidParameter, "%v: success probability %v out of range", family, p)
	}
	return nil
}
