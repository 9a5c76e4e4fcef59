// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestMomentEstimateSmall(t *testing.T) {
	// x̄ = 2, ȳ = 2.5, z̄ = 1.75.
	obs := Pairs{{1, 2}, {2, 1}, {3, 3}, {2, 4}}
	got, err := MomentEstimate(obs)
	if err != nil {
		t.Fatal(err)
	}
	want := Estimate{5.0 / 7, 6.0 / 7, 0.7}
	if !scalar.EqualWithinAbs(got.Theta1, want.Theta1, 1e-12) ||
		!scalar.EqualWithinAbs(got.Theta2, want.Theta2, 1e-12) ||
		!scalar.EqualWithinAbs(got.Theta3, want.Theta3, 1e-12) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestMomentEstimateRecovers(t *testing.T) {
	const n = 200000
	for i, p := range []Params{{0.5, 0.5, 0.7}, {0.3, 0.8, 0.9}} {
		for _, s := range []Sampler{
			InverseTransform{p, rand.NewSource(uint64(10 + i))},
			ShockModel{p, rand.NewSource(uint64(20 + i))},
		} {
			obs, err := s.Sample(n)
			if err != nil {
				t.Fatal(err)
			}
			est, err := MomentEstimate(obs)
			if err != nil {
				t.Fatal(err)
			}
			got := est.Params()
			if math.Abs(got.Theta1-p.Theta1) > 0.03 || math.Abs(got.Theta2-p.Theta2) > 0.03 || math.Abs(got.Theta3-p.Theta3) > 0.03 {
				t.Errorf("%T: estimated %v from %v", s, est, p)
			}
		}
	}
}

func TestMomentEstimateDegenerate(t *testing.T) {
	if _, err := MomentEstimate(nil); err != ErrSampleSize {
		t.Errorf("empty sample: want ErrSampleSize, got %v", err)
	}
	if _, err := MomentEstimate(Pairs{{1, 1}, {0, 2}}); !errors.Is(err, ErrDomain) {
		t.Errorf("x=0: want domain error, got %v", err)
	}

	// Every x is 1, so x̄-1 = 0 and z̄-1 = 0. This is not an
	// error; the estimates are just not finite.
	est, err := MomentEstimate(Pairs{{1, 2}, {1, 3}, {1, 1}})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !math.IsNaN(est.Theta2) || !math.IsNaN(est.Theta3) {
		t.Errorf("want NaN θ2 and θ3 estimates, got %v", est)
	}
}
