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

package generator

import (
	"math"
	"math/rand"

	"github.com/hananather/probability-sub006/stochastic"
	"github.com/hananather/probability-sub006/stochastic/statistics/exponential"
)

// PoissonProcess generates event times of a homogeneous Poisson process.
// Inter-arrival times are exponential with the process rate. A
// PoissonProcess owns its random generator and must not be shared between
// goroutines.
type PoissonProcess struct {
	rg   *rand.Rand
	rate float64 // expected events per time unit
	now  float64 // time of the last generated event
}

// NewPoissonProcess creates a process with the given rate starting at
// time zero.
func NewPoissonProcess(rg *rand.Rand, rate float64) *PoissonProcess {
	return &PoissonProcess{
		rg:   rg,
		rate: rate,
	}
}

// Rate returns the expected number of events per time unit.
func (p *PoissonProcess) Rate() float64 {
	return p.rate
}

// Next advances the process and returns the time of the next event. For a
// non-positive rate it returns +Inf.
func (p *PoissonProcess) Next() float64 {
	if p.rate <= 0 || math.IsNaN(p.rate) {
		return math.Inf(1)
	}
	p.now += exponential.Sample(p.rg, p.rate)
	return p.now
}

// Events returns the times of all events in [0, horizon), in increasing
// order, starting a fresh run from time zero. At most MaxEvents times are
// returned.
func (p *PoissonProcess) Events(horizon float64) []float64 {
	p.now = 0
	times := []float64{}
	for len(times) < stochastic.MaxEvents {
		t := p.Next()
		if !(t < horizon) {
			break
		}
		times = append(times, t)
	}
	return times
}

// Gaps returns the inter-arrival times of the given event times, the
// first measured from time zero.
func Gaps(times []float64) []float64 {
	gaps := make([]float64, len(times))
	prev := 0.0
	for i, t := range times {
		gaps[i] = t - prev
		prev = t
	}
	return gaps
}
