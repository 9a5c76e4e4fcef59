// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNoCureReduces(t *testing.T) {
	for _, p := range testParams {
		for x := 0; x <= 8; x++ {
			for y := 0; y <= 8; y++ {
				if got, want := mustF(t)(p.CDFCure(x, y, NoCure)), mustF(t)(p.CDF(x, y)); got != want {
					t.Errorf("%v: CDFCure(%d, %d, NoCure) = %v, CDF = %v", p, x, y, got, want)
				}
				if got, want := mustF(t)(p.SFCure(x, y, NoCure)), mustF(t)(p.SF(x, y)); got != want {
					t.Errorf("%v: SFCure(%d, %d, NoCure) = %v, SF = %v", p, x, y, got, want)
				}
				if x == 0 || y == 0 {
					continue
				}
				if got, want := mustF(t)(p.PMFCure(x, y, 1)), mustF(t)(p.PMFDiff(x, y)); got != want {
					t.Errorf("%v: PMFCure(%d, %d, 1) = %v, PMFDiff = %v", p, x, y, got, want)
				}
				if got, want := mustF(t)(p.PMFCure(x, y, 1)), mustF(t)(p.PMF(x, y)); !scalar.EqualWithinRel(got, want, 1e-9) {
					t.Errorf("%v: PMFCure(%d, %d, 1) = %v, PMF = %v", p, x, y, got, want)
				}
			}
		}
	}
}

func TestCureLimits(t *testing.T) {
	// Far out, only the cured mass is left in the survival
	// function.
	p := Params{0.5, 0.5, 0.7}
	c := Cure{0.4, 0.3, 0.2, 0.1}
	sf := mustF(t)(p.SFCure(200, 200, c))
	if !scalar.EqualWithinAbs(sf, c.Phi00, 1e-15) {
		t.Errorf("SFCure(200, 200): want %v, got %v", c.Phi00, sf)
	}
	cdf := mustF(t)(p.CDFCure(200, 200, c))
	if !scalar.EqualWithinAbs(cdf, c.Phi11, 1e-15) {
		t.Errorf("CDFCure(200, 200): want %v, got %v", c.Phi11, cdf)
	}
	if got := mustF(t)(p.CDFCure(0, 5, c)); !scalar.EqualWithinAbs(got, 0, 1e-15) {
		t.Errorf("CDFCure(0, 5): want 0, got %v", got)
	}
}

func TestLogPMFCure(t *testing.T) {
	p := Params{0.2, 0.4, 0.7}
	got := mustF(t)(p.LogPMFCure(1, 2, 0.4))
	if want := math.Log(0.064512); !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Errorf("LogPMFCure(1, 2, 0.4): want %v, got %v", want, got)
	}
	// The difference form underflows in the far tail.
	if got := mustF(t)(p.LogPMFCure(900, 900, 0.4)); !math.IsNaN(got) {
		t.Errorf("LogPMFCure(900, 900, 0.4): want NaN, got %v", got)
	}
}

func TestCureEach(t *testing.T) {
	p := Params{0.2, 0.4, 0.7}
	c := Cure{0.2, 0.3, 0.3, 0.2}
	obs := Pairs{{1, 2}, {3, 1}}
	cdfs, err := p.CDFCureEach(obs, c)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(cdfs[0], 0.159456, 1e-12) {
		t.Errorf("CDFCureEach[0]: want 0.159456, got %v", cdfs[0])
	}
	pmfs, err := p.PMFCureEach(obs, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(pmfs[0], 0.064512, 1e-12) {
		t.Errorf("PMFCureEach[0]: want 0.064512, got %v", pmfs[0])
	}
	sfs, err := p.SFCureEach(obs, c)
	if err != nil {
		t.Fatal(err)
	}
	if want := mustF(t)(p.SFCure(3, 1, c)); sfs[1] != want {
		t.Errorf("SFCureEach[1]: want %v, got %v", want, sfs[1])
	}
}

func TestCureValidate(t *testing.T) {
	for _, test := range []struct {
		c     Cure
		param string
	}{
		{Cure{0.5, 0.5, 0.5, -0.5}, "phi00"},
		{Cure{1.2, -0.2, 0, 0}, "phi11"},
		{Cure{0, 0.5, 0.5, 0}, "phi11"},
		{Cure{0.2, 0.3, 0.3, 0.3}, "phi"},
		{Cure{math.NaN(), 0, 0, 0}, "phi11"},
	} {
		err := test.c.Validate()
		var de *DomainError
		if !errors.As(err, &de) || de.Param != test.param {
			t.Errorf("%+v: want domain error on %s, got %v", test.c, test.param, err)
		}
	}
	if err := (Cure{0.2, 0.3, 0.3, 0.2}).Validate(); err != nil {
		t.Errorf("unexpected error %v", err)
	}

	p := Params{0.5, 0.5, 0.5}
	if _, err := p.PMFCure(1, 1, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("PMFCure with phi11=0: want domain error, got %v", err)
	}
	if _, err := p.CDFCure(1, 1, Cure{0.5, 0.5, 0.5, 0.5}); !errors.Is(err, ErrDomain) {
		t.Errorf("CDFCure with sum 2: want domain error, got %v", err)
	}
}
