// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain is the error that every *DomainError matches with
	// errors.Is.
	ErrDomain = errors.New("bgd: domain error")

	ErrSampleSize = errors.New("bgd: sample is too small")

	// ErrSearchExhausted indicates that the inverse transform
	// search walked past the point where the conditional tail
	// underflows without containing the uniform draw. It cannot
	// happen for valid parameters.
	ErrSearchExhausted = errors.New("bgd: inverse transform search exhausted")
)

// A DomainError reports an argument outside the domain of a
// function. Param names the offending argument.
type DomainError struct {
	Param  string
	Value  float64
	Detail string
}

func (e *DomainError) Error() string {
	return "bgd: " + e.Param + ": " + e.Detail
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainErr(param string, value float64, format string, args ...interface{}) error {
	return &DomainError{Param: param, Value: value, Detail: fmt.Sprintf(format, args...)}
}

// Params is the parameter vector θ of a Basu–Dhar bivariate
// geometric distribution.
type Params struct {
	// Theta1 and Theta2 are the per-step survival probabilities
	// of the individual shocks to X and Y. Both must be in (0,1).
	Theta1, Theta2 float64

	// Theta3 is the per-step survival probability of the common
	// shock. It must be in (0,1]. Theta3 = 1 means the common
	// shock never happens and X and Y are independent.
	Theta3 float64
}

// Validate returns a *DomainError naming the first parameter of p
// that is out of bounds, or nil.
func (p Params) Validate() error {
	if !open01(p.Theta1) {
		return domainErr("theta1", p.Theta1, "%v not in (0,1)", p.Theta1)
	}
	if !open01(p.Theta2) {
		return domainErr("theta2", p.Theta2, "%v not in (0,1)", p.Theta2)
	}
	if !(p.Theta3 > 0 && p.Theta3 <= 1) {
		return domainErr("theta3", p.Theta3, "%v not in (0,1]", p.Theta3)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("θ=(%v, %v, %v)", p.Theta1, p.Theta2, p.Theta3)
}

// open01 reports whether v is in the open interval (0,1). NaN is not.
func open01(v float64) bool {
	return v > 0 && v < 1
}

// cureTol is the tolerance on the sum of the cure-fraction
// components.
const cureTol = 1e-9

// Cure is the mixing vector φ of the cure-fraction extension. Phi11
// is the probability that both components are susceptible, Phi10
// that only X is, Phi01 that only Y is, and Phi00 that neither is.
// Cured components never fail.
type Cure struct {
	Phi11, Phi10, Phi01, Phi00 float64
}

// Validate checks that every component of c is in [0,1], that Phi11
// is positive, and that the components sum to 1.
func (c Cure) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"phi11", c.Phi11}, {"phi10", c.Phi10}, {"phi01", c.Phi01}, {"phi00", c.Phi00}} {
		if !(f.v >= 0 && f.v <= 1) {
			return domainErr(f.name, f.v, "%v not in [0,1]", f.v)
		}
	}
	if err := validPhi11(c.Phi11); err != nil {
		return err
	}
	sum := c.Phi11 + c.Phi10 + c.Phi01 + c.Phi00
	if math.Abs(sum-1) > cureTol {
		return domainErr("phi", sum, "components sum to %v, not 1", sum)
	}
	return nil
}

func validPhi11(phi11 float64) error {
	if !(phi11 > 0 && phi11 <= 1) {
		return domainErr("phi11", phi11, "%v not in (0,1]", phi11)
	}
	return nil
}

// NoCure is the degenerate mixture in which both components are
// always susceptible. The cure-fraction functions reduce to the base
// distribution under NoCure.
var NoCure = Cure{Phi11: 1}
