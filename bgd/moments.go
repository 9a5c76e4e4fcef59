// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// Estimate is a method of moments estimate of θ.
type Estimate struct {
	Theta1, Theta2, Theta3 float64
}

// Params returns e as a parameter vector. The result is not
// validated; estimates from small samples may be out of bounds.
func (e Estimate) Params() Params {
	return Params{e.Theta1, e.Theta2, e.Theta3}
}

func (e Estimate) String() string {
	return fmt.Sprintf("θ̂=(%v, %v, %v)", e.Theta1, e.Theta2, e.Theta3)
}

// MomentEstimate estimates θ from obs by matching the sample means
// of X, Y and Z = min(X, Y) to
//
//	E[X] = 1/(1-θ1θ3), E[Y] = 1/(1-θ2θ3), E[Z] = 1/(1-θ1θ2θ3).
//
// The estimates are not clamped. They can fall outside the parameter
// bounds for small or unusual samples, and are ±Inf or NaN when a
// mean is exactly 1 (for example, every x is 1).
func MomentEstimate(obs Pairs) (Estimate, error) {
	if len(obs) == 0 {
		return Estimate{}, ErrSampleSize
	}
	xs := make([]float64, len(obs))
	ys := make([]float64, len(obs))
	zs := make([]float64, len(obs))
	for i, o := range obs {
		if err := checkCoords(o.X, o.Y, 1); err != nil {
			return Estimate{}, fmt.Errorf("observation %d: %w", i, err)
		}
		xs[i], ys[i], zs[i] = float64(o.X), float64(o.Y), float64(minInt(o.X, o.Y))
	}
	mx, my, mz := stats.Mean(xs), stats.Mean(ys), stats.Mean(zs)

	return Estimate{
		Theta1: my * (1 - mz) / (mz * (1 - my)),
		Theta2: mx * (mz - 1) / (mz * (mx - 1)),
		Theta3: mz * (mx - 1) * (my - 1) / ((mz - 1) * mx * my),
	}, nil
}
