// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import "math"

// Correlation returns Pearson's correlation coefficient of X and Y,
//
//	(1-θ3) √(θ1θ2) / (1-θ1θ2θ3).
//
// It is 0 exactly when θ3 = 1.
func (p Params) Correlation() (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	t1, t2, t3 := p.Theta1, p.Theta2, p.Theta3
	return (1 - t3) * math.Sqrt(t1*t2) / (1 - t1*t2*t3), nil
}

// CrossMoment returns the cross moment E[XY],
//
//	(1-θ1θ2θ3²) / ((1-θ1θ3)(1-θ2θ3)(1-θ1θ2θ3)).
func (p Params) CrossMoment() (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.crossMoment(), nil
}

// Covariance returns Cov(X, Y) = E[XY] - E[X]E[Y].
func (p Params) Covariance() (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.crossMoment() - p.marginalX().Mean()*p.marginalY().Mean(), nil
}

func (p Params) crossMoment() float64 {
	t1, t2, t3 := p.Theta1, p.Theta2, p.Theta3
	return (1 - t1*t2*t3*t3) / ((1 - t1*t3) * (1 - t2*t3) * (1 - t1*t2*t3))
}
