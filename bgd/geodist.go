// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import (
	"math"

	"golang.org/x/exp/rand"
)

// GeometricDist is a geometric distribution with success probability
// P.
type GeometricDist struct {
	P float64

	// Start is the start of the distribution's support. For
	// Start=0, the distribution gives the number of failures
	// before the first success in a Bernoulli process with
	// success probability P. For Start=1, it gives the number of
	// trials needed to get one success.
	//
	// The marginals of a Basu–Dhar distribution all have Start=1.
	Start int
}

// SF returns P(K > k), the probability that the first k-Start+1
// trials all fail.
func (d GeometricDist) SF(k int) float64 {
	if k < d.Start {
		return 1
	}
	return math.Pow(1-d.P, float64(k-d.Start+1))
}

func (d GeometricDist) CDF(k int) float64 {
	return 1 - d.SF(k)
}

func (d GeometricDist) PMF(k int) float64 {
	if k < d.Start {
		return 0
	}
	return d.P * d.SF(k-1)
}

// Min returns the smallest value in the support of d.
func (d GeometricDist) Min() int {
	return d.Start
}

// InvCDF returns the smallest k such that y < CDF(k), for y in
// [0,1). Each k owns the interval CDF(k-1) <= y < CDF(k).
//
// If P is 0 the first success never happens and InvCDF returns
// math.MaxInt, which compares greater than any real draw. It also
// returns math.MaxInt where k would overflow an int.
func (d GeometricDist) InvCDF(y float64) int {
	if d.P == 0 {
		return math.MaxInt
	}
	k := math.Floor(math.Log(1-y) / math.Log(1-d.P))
	if !(k < float64(math.MaxInt-d.Start)) {
		return math.MaxInt
	}
	return int(k) + d.Start
}

func (d GeometricDist) Mean() float64 {
	return float64(d.Start) - 1 + 1/d.P
}

func (d GeometricDist) Variance() float64 {
	return (1 - d.P) / (d.P * d.P)
}

// Rand draws from d by inversion using r, or the global source of
// golang.org/x/exp/rand if r is nil.
func (d GeometricDist) Rand(r *rand.Rand) int {
	if d.P == 0 {
		return math.MaxInt
	}
	return d.InvCDF(uniform(r))
}

// uniform returns a draw from [0,1).
func uniform(r *rand.Rand) float64 {
	if r == nil {
		return rand.Float64()
	}
	return r.Float64()
}

func newRand(src rand.Source) *rand.Rand {
	if src == nil {
		return nil
	}
	return rand.New(src)
}

// MarginalX returns the marginal distribution of X, a geometric
// distribution on {1, 2, ...} with success probability 1 - θ1θ3.
func (p Params) MarginalX() (GeometricDist, error) {
	if err := p.Validate(); err != nil {
		return GeometricDist{}, err
	}
	return p.marginalX(), nil
}

// MarginalY returns the marginal distribution of Y, a geometric
// distribution on {1, 2, ...} with success probability 1 - θ2θ3.
func (p Params) MarginalY() (GeometricDist, error) {
	if err := p.Validate(); err != nil {
		return GeometricDist{}, err
	}
	return p.marginalY(), nil
}

// MarginalMin returns the distribution of min(X, Y), a geometric
// distribution on {1, 2, ...} with success probability 1 - θ1θ2θ3.
func (p Params) MarginalMin() (GeometricDist, error) {
	if err := p.Validate(); err != nil {
		return GeometricDist{}, err
	}
	return GeometricDist{P: 1 - p.Theta1*p.Theta2*p.Theta3, Start: 1}, nil
}

func (p Params) marginalX() GeometricDist {
	return GeometricDist{P: 1 - p.Theta1*p.Theta3, Start: 1}
}

func (p Params) marginalY() GeometricDist {
	return GeometricDist{P: 1 - p.Theta2*p.Theta3, Start: 1}
}
