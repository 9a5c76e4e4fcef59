// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import (
	"math"
	"testing"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestGeometricDist(t *testing.T) {
	for _, d := range []GeometricDist{{0.3, 0}, {0.3, 1}, {0.65, 1}, {0.9, 5}} {
		sum := 0.0
		for k := d.Start - 2; k < d.Start+200; k++ {
			sum += d.PMF(k)
			if !scalar.EqualWithinAbs(sum, d.CDF(k), 1e-12) {
				t.Errorf("%+v: sum of PMF to %d is %v, CDF is %v", d, k, sum, d.CDF(k))
			}
			if !scalar.EqualWithinAbs(d.CDF(k)+d.SF(k), 1, 1e-12) {
				t.Errorf("%+v: CDF(%d)+SF(%d) = %v", d, k, k, d.CDF(k)+d.SF(k))
			}
		}
		for k := d.Start; k < d.Start+10; k++ {
			mid := (d.CDF(k-1) + d.CDF(k)) / 2
			if got := d.InvCDF(mid); got != k {
				t.Errorf("%+v: InvCDF(%v) = %d, want %d", d, mid, got, k)
			}
		}
	}
}

func TestGeometricRand(t *testing.T) {
	const n = 100000
	r := rand.New(rand.NewSource(1))
	d := GeometricDist{P: 0.35, Start: 1}
	xs := make([]float64, n)
	for i := range xs {
		k := d.Rand(r)
		if k < d.Start {
			t.Fatalf("Rand returned %d below the support", k)
		}
		xs[i] = float64(k)
	}
	se := math.Sqrt(d.Variance() / n)
	if mean := stats.Mean(xs); math.Abs(mean-d.Mean()) > 4*se {
		t.Errorf("sample mean %v, want %v ± %v", mean, d.Mean(), se)
	}

	if k := (GeometricDist{P: 0, Start: 1}).Rand(r); k != math.MaxInt {
		t.Errorf("P=0: want math.MaxInt, got %d", k)
	}
	if k := (GeometricDist{P: 1, Start: 1}).Rand(r); k != 1 {
		t.Errorf("P=1: want 1, got %d", k)
	}
}

func TestMarginals(t *testing.T) {
	p := Params{0.5, 0.4, 0.7}
	mx, err := p.MarginalX()
	if err != nil {
		t.Fatal(err)
	}
	my, _ := p.MarginalY()
	mz, _ := p.MarginalMin()
	for k := 0; k < 10; k++ {
		if got, want := mustF(t)(p.SF(k, 0)), mx.SF(k); !scalar.EqualWithinRel(got, want, 1e-12) {
			t.Errorf("P(X>%d) = %v, marginal gives %v", k, got, want)
		}
		if got, want := mustF(t)(p.SF(0, k)), my.SF(k); !scalar.EqualWithinRel(got, want, 1e-12) {
			t.Errorf("P(Y>%d) = %v, marginal gives %v", k, got, want)
		}
		if got, want := mustF(t)(p.SF(k, k)), mz.SF(k); !scalar.EqualWithinRel(got, want, 1e-12) {
			t.Errorf("P(min>%d) = %v, marginal gives %v", k, got, want)
		}
	}
	if _, err := (Params{}).MarginalX(); err == nil {
		t.Error("MarginalX of zero Params: want error")
	}
}

func TestGeometricInvCDF(t *testing.T) {
	for _, d := range []GeometricDist{{0.3, 0}, {0.65, 1}, {1, 1}} {
		if got := d.InvCDF(0); got != d.Start {
			t.Errorf("%+v: InvCDF(0) = %d, want %d", d, got, d.Start)
		}
		if got := d.Min(); got != d.Start {
			t.Errorf("%+v: Min() = %d, want %d", d, got, d.Start)
		}
	}
	if got := (GeometricDist{P: 0, Start: 1}).InvCDF(0.5); got != math.MaxInt {
		t.Errorf("P=0: InvCDF(0.5) = %d, want math.MaxInt", got)
	}
	// CDF(2) = 0.75 <= 0.8 < CDF(3) = 0.875.
	if got := (GeometricDist{P: 0.5, Start: 1}).InvCDF(0.8); got != 3 {
		t.Errorf("InvCDF(0.8) = %d, want 3", got)
	}

	// Rand is inversion of the same uniform stream.
	d := GeometricDist{P: 0.2, Start: 1}
	r1, r2 := rand.New(rand.NewSource(4)), rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		if got, want := d.Rand(r1), d.InvCDF(r2.Float64()); got != want {
			t.Fatalf("draw %d: Rand gave %d, InvCDF of the same uniform gave %d", i, got, want)
		}
	}
}
