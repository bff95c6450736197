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

	"github.com/hananather/probability-sub006/stochastic"
	"github.com/hananather/probability-sub006/stochastic/statistics/discrete"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeProbability_EmptyRange(t *testing.T) {
	d := BinomialDist{N: 10, P: 0.5}
	assert.Equal(t, 0.0, RangeProbability(d, 6, 5))
	assert.Equal(t, 0.0, RangeProbabilityOf(Binomial, Params{"n": 10, "p": 0.5}, 3, 2))
}

func TestRangeProbability_ClipsToSupport(t *testing.T) {
	d := BinomialDist{N: 10, P: 0.5}
	assert.InDelta(t, 1.0, RangeProbability(d, -100, 100), 1e-12)
	assert.Equal(t, 0.0, RangeProbability(d, 11, 20))
	assert.Equal(t, 0.0, RangeProbability(GeometricDist{P: 0.5}, -5, 0))
}

func TestRangeProbability_KnownValues(t *testing.T) {
	d := BinomialDist{N: 10, P: 0.5}
	assert.InDelta(t, (252.0+210.0+210.0)/1024.0, RangeProbability(d, 4, 6), 1e-15)
	assert.InDelta(t, d.PMF(5), RangeProbability(d, 5, 5), 1e-15)

	p := Params{"N": 20, "K": 6, "n": 5}
	want := PMF(Hypergeometric, p, 1) + PMF(Hypergeometric, p, 2)
	assert.InDelta(t, want, RangeProbabilityOf(Hypergeometric, p, 1, 2), 1e-15)
	assert.Equal(t, 0.0, RangeProbabilityOf(Family(9), p, 1, 2))
}

func TestPMFPoints_OrderedAndConsistent(t *testing.T) {
	d := PoissonDist{Lambda: 3}
	r := SupportRange{Min: -2, Max: 12}
	points := PMFPoints(d, r)
	require.Len(t, points, r.Len())
	for i, p := range points {
		assert.Equal(t, r.Min+i, p.K)
		assert.Equal(t, d.PMF(float64(p.K)), p.Probability)
	}
}

func TestCDFPoints_MatchCDF(t *testing.T) {
	for _, d := range testDistributions() {
		t.Run(name(d), func(t *testing.T) {
			r := Support(d, stochastic.DefaultThreshold)
			r.Min -= 2
			r.Max += 2
			points := CDFPoints(d, r)
			require.Len(t, points, r.Len())
			cum := make([]float64, len(points))
			for i, p := range points {
				assert.Equal(t, r.Min+i, p.K)
				assert.InDelta(t, d.CDF(float64(p.K)), p.Cumulative, 1e-12, "k=%d", p.K)
				cum[i] = p.Cumulative
			}
			assert.True(t, discrete.IsNonDecreasing(cum))
		})
	}
}

func TestPoints_WindowIsCapped(t *testing.T) {
	r := SupportRange{Min: 0, Max: 10 * stochastic.MaxSupportWindow}
	assert.Len(t, PMFPoints(PoissonDist{Lambda: 1}, r), stochastic.MaxSupportWindow)
	assert.Len(t, CDFPoints(PoissonDist{Lambda: 1}, r), stochastic.MaxSupportWindow)
	assert.Empty(t, PMFPoints(PoissonDist{Lambda: 1}, SupportRange{Min: 3, Max: 2}))
}
