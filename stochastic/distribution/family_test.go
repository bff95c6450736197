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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamily_ParseFamily(t *testing.T) {
	tests := []struct {
		in   string
		want Family
	}{
		{"binomial", Binomial},
		{"Binomial", Binomial},
		{"geometric", Geometric},
		{"negative-binomial", NegativeBinomial},
		{"NegativeBinomial", NegativeBinomial},
		{"negative_binomial", NegativeBinomial},
		{"negbin", NegativeBinomial},
		{"POISSON", Poisson},
		{"hypergeometric", Hypergeometric},
	}
	for _, test := range tests {
		got, err := ParseFamily(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
	_, err := ParseFamily("normal")
	assert.Error(t, err)
}

func TestFamily_StringRoundTrip(t *testing.T) {
	for f := Binomial; f < NumFamilies; f++ {
		got, err := ParseFamily(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	assert.Equal(t, "unknown", Family(-1).String())
	assert.Equal(t, "unknown", NumFamilies.String())
}

func TestFamily_ParamNames(t *testing.T) {
	assert.Equal(t, []string{"n", "p"}, Binomial.ParamNames())
	assert.Equal(t, []string{"p"}, Geometric.ParamNames())
	assert.Equal(t, []string{"r", "p"}, NegativeBinomial.ParamNames())
	assert.Equal(t, []string{"lambda"}, Poisson.ParamNames())
	assert.Equal(t, []string{"N", "K", "n"}, Hypergeometric.ParamNames())
	assert.Nil(t, Family(99).ParamNames())

	// callers may not alias the internal table
	names := Binomial.ParamNames()
	names[0] = "x"
	assert.Equal(t, []string{"n", "p"}, Binomial.ParamNames())
}

func TestParams_Int(t *testing.T) {
	p := Params{"n": 10, "r": 2.6, "huge": 1e300}
	assert.Equal(t, 10, p.Int("n"))
	assert.Equal(t, 3, p.Int("r"))
	assert.Equal(t, 0, p.Int("missing"))
	assert.Equal(t, 1<<53, p.Int("huge"))
}

func TestNew_Dispatch(t *testing.T) {
	d, err := New(Binomial, Params{"n": 10, "p": 0.5})
	require.NoError(t, err)
	assert.Equal(t, BinomialDist{N: 10, P: 0.5}, d)

	d, err = New(Hypergeometric, Params{"N": 20, "K": 6, "n": 5})
	require.NoError(t, err)
	assert.Equal(t, HypergeometricDist{N: 20, K: 6, Draws: 5}, d)

	d, err = New(NegativeBinomial, Params{"r": 3, "p": 0.5})
	require.NoError(t, err)
	assert.Equal(t, NegativeBinomial, d.Family())

	_, err = New(Family(12), Params{})
	assert.Error(t, err)
}

func TestFamilyHelpers_EdgeCases(t *testing.T) {
	assert.Equal(t, 1.0, PMF(Binomial, Params{"n": 10, "p": 0}, 0))
	assert.Equal(t, 0.0, PMF(Binomial, Params{"n": 10, "p": 0}, 1))
	assert.Equal(t, 1.0, PMF(Binomial, Params{"n": 10, "p": 1}, 10))
	assert.Equal(t, 1.0, PMF(Poisson, Params{"lambda": 0}, 0))
	assert.Equal(t, 0.0, PMF(Poisson, Params{"lambda": 0}, 1))
	assert.InDelta(t, 0.6230, CDF(Binomial, Params{"n": 10, "p": 0.5}, 5), 1e-4)
	assert.Equal(t, 3, StatsOf(Poisson, Params{"lambda": 3}).Mode)

	assert.Equal(t, 0.0, PMF(Family(7), Params{}, 0))
	assert.Equal(t, 0.0, CDF(Family(7), Params{}, 0))
	assert.Equal(t, Stats{}, StatsOf(Family(7), Params{}))
}

func TestValidate(t *testing.T) {
	valid := []struct {
		family Family
		params Params
	}{
		{Binomial, Params{"n": 10, "p": 0.5}},
		{Binomial, Params{"n": 1, "p": 0}},
		{Geometric, Params{"p": 1}},
		{NegativeBinomial, Params{"r": 3, "p": 0.2}},
		{Poisson, Params{"lambda": 0}},
		{Hypergeometric, Params{"N": 20, "K": 6, "n": 5}},
		{Hypergeometric, Params{"N": 20, "K": 0, "n": 20}},
	}
	for _, v := range valid {
		assert.NoError(t, Validate(v.family, v.params), "%v %v", v.family, v.params)
	}

	invalid := []struct {
		family Family
		params Params
	}{
		{Binomial, Params{"n": 10}},
		{Binomial, Params{"n": 0, "p": 0.5}},
		{Binomial, Params{"n": 2.5, "p": 0.5}},
		{Binomial, Params{"n": 10, "p": 1.1}},
		{Geometric, Params{"p": 0}},
		{NegativeBinomial, Params{"r": 0, "p": 0.5}},
		{NegativeBinomial, Params{"r": 2, "p": -0.1}},
		{Poisson, Params{"lambda": -1}},
		{Hypergeometric, Params{"N": 20, "K": 21, "n": 5}},
		{Hypergeometric, Params{"N": 20, "K": 6, "n": 25}},
		{Hypergeometric, Params{"N": 0, "K": 0, "n": 0}},
		{Hypergeometric, Params{"N": 20, "K": -1, "n": 5}},
	}
	for _, v := range invalid {
		err := Validate(v.family, v.params)
		if assert.Error(t, err, "%v %v", v.family, v.params) {
			assert.True(t, errors.Is(err, ErrInvalidParameter), err.Error())
		}
	}
	assert.Error(t, Validate(Family(8), Params{}))
}
