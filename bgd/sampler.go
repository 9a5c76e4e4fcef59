// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import (
	"math"

	"golang.org/x/exp/rand"
)

// A Sampler generates independent observations of a Basu–Dhar
// distribution.
type Sampler interface {
	// Rand returns one observation.
	Rand() (Obs, error)

	// Sample returns n freshly allocated observations.
	Sample(n int) (Pairs, error)
}

// InverseTransform generates observations by drawing X from its
// geometric marginal and then inverting the conditional CDF of Y
// given X.
type InverseTransform struct {
	Params

	// Src is the source of randomness. If nil, the global source
	// of golang.org/x/exp/rand is used.
	Src rand.Source
}

func (s InverseTransform) Rand() (Obs, error) {
	if err := s.Validate(); err != nil {
		return Obs{}, err
	}
	return s.draw(newRand(s.Src))
}

func (s InverseTransform) Sample(n int) (Pairs, error) {
	if err := checkN(n, s.Params); err != nil {
		return nil, err
	}
	r := newRand(s.Src)
	out := make(Pairs, n)
	for i := range out {
		o, err := s.draw(r)
		if err != nil {
			return nil, err
		}
		out[i] = o
	}
	return out, nil
}

func checkN(n int, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if n < 0 {
		return domainErr("n", float64(n), "%d < 0", n)
	}
	return nil
}

func (s InverseTransform) draw(r *rand.Rand) (Obs, error) {
	x := s.marginalX().Rand(r)
	y, err := s.condInvert(x, uniform(r))
	if err != nil {
		return Obs{}, err
	}
	return Obs{x, y}, nil
}

// maxTailExp exceeds -ln of the smallest positive float64, so a
// geometric tail that has decayed by this much has underflowed to 0.
const maxTailExp = 1100 * math.Ln2

// condInvert returns the smallest y >= 1 such that u < F(y | x),
// where F is the conditional CDF of Y given X = x. Each candidate y
// covers the interval F(y-1 | x) <= u < F(y | x).
//
// The comparison is done on the survival side, as v = 1-u against
// P(Y > y | X = x), which avoids accumulating rounding error in the
// CDF. v is in (0,1] and the conditional survival decays
// geometrically to 0, so the walk ends.
func (p Params) condInvert(x int, u float64) (int, error) {
	v := 1 - u
	limit := p.searchLimit(x)
	sf := 1.0
	for y := 1; y <= limit; y++ {
		sf *= p.condRatio(x, y)
		if sf < v {
			return y, nil
		}
	}
	return 0, ErrSearchExhausted
}

// condRatio returns P(Y > y | X = x) / P(Y > y-1 | X = x).
//
// The conditional survival function is
//
//	θ2^y                           for y < x
//	(1-θ1) θ2^y θ3^(y-x+1) / (1-θ1θ3)  for y >= x
//
// so the ratio is θ2 below the diagonal, θ2θ3 above it, and a
// one-off factor at the diagonal that moves from one branch to the
// other.
func (p Params) condRatio(x, y int) float64 {
	switch Classify(x, y) {
	case Below:
		return p.Theta2
	case Diagonal:
		return p.Theta2 * p.Theta3 * (1 - p.Theta1) / (1 - p.Theta1*p.Theta3)
	default:
		return p.Theta2 * p.Theta3
	}
}

// condPMF returns P(Y = y | X = x).
func (p Params) condPMF(x, y int) float64 {
	t1, t2, t3 := p.Theta1, p.Theta2, p.Theta3
	switch Classify(x, y) {
	case Below:
		return ipow(t2, y-1) * (1 - t2)
	case Diagonal:
		return ipow(t2, x-1) * (1 - t2*t3*(1-t1)/(1-t1*t3))
	default:
		return (1 - t1) * (1 - t2*t3) * ipow(t2, y-1) * ipow(t3, y-x) / (1 - t1*t3)
	}
}

// condSF returns P(Y > y | X = x) in closed form.
func (p Params) condSF(x, y int) float64 {
	if y < x {
		return ipow(p.Theta2, y)
	}
	return (1 - p.Theta1) * ipow(p.Theta2, y) * ipow(p.Theta3, y-x+1) / (1 - p.Theta1*p.Theta3)
}

// searchLimit returns a y past which the conditional survival of Y
// given X = x has underflowed to zero.
func (p Params) searchLimit(x int) int {
	steps := math.Ceil(maxTailExp/-math.Log(p.Theta2*p.Theta3)) + 2
	if steps >= float64(math.MaxInt-x) {
		return math.MaxInt
	}
	return x + int(steps)
}
