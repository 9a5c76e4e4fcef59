// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import "math"

// SF returns the joint survival function P(X > x, Y > y). x and y
// may be 0, where SF(0, 0) = 1.
func (p Params) SF(x, y int) (float64, error) {
	if err := p.checkTail(x, y); err != nil {
		return 0, err
	}
	return p.sf(x, y), nil
}

// CDF returns the joint cumulative distribution function
// P(X <= x, Y <= y). x and y may be 0, where the CDF is 0.
func (p Params) CDF(x, y int) (float64, error) {
	if err := p.checkTail(x, y); err != nil {
		return 0, err
	}
	return p.cdf(x, y), nil
}

// PMF returns P(X = x, Y = y) using the closed form for the regime
// of y relative to x.
func (p Params) PMF(x, y int) (float64, error) {
	if err := p.checkPoint(x, y); err != nil {
		return 0, err
	}
	return p.pmf(x, y), nil
}

// PMFDiff returns P(X = x, Y = y) as the rectangle difference of the
// survival function
//
//	SF(x-1, y-1) - SF(x, y-1) - SF(x-1, y) + SF(x, y).
//
// It agrees with PMF up to rounding.
func (p Params) PMFDiff(x, y int) (float64, error) {
	if err := p.checkPoint(x, y); err != nil {
		return 0, err
	}
	return p.pmfDiff(x, y), nil
}

// LogPMF returns the natural logarithm of P(X = x, Y = y). It is
// computed in log space, so it stays finite where PMF underflows. It
// returns NaN if the log-space result is not finite, which does not
// happen for valid parameters.
func (p Params) LogPMF(x, y int) (float64, error) {
	if err := p.checkPoint(x, y); err != nil {
		return 0, err
	}
	return p.logPMF(x, y), nil
}

// SFEach returns SF(o.X, o.Y) for each o in obs.
func (p Params) SFEach(obs Pairs) ([]float64, error) {
	return p.each(obs, p.checkTail, p.sf)
}

// CDFEach returns CDF(o.X, o.Y) for each o in obs.
func (p Params) CDFEach(obs Pairs) ([]float64, error) {
	return p.each(obs, p.checkTail, p.cdf)
}

// PMFEach returns PMF(o.X, o.Y) for each o in obs.
func (p Params) PMFEach(obs Pairs) ([]float64, error) {
	return p.each(obs, p.checkPoint, p.pmf)
}

// LogPMFEach returns LogPMF(o.X, o.Y) for each o in obs.
func (p Params) LogPMFEach(obs Pairs) ([]float64, error) {
	return p.each(obs, p.checkPoint, p.logPMF)
}

// each validates p and every observation before computing anything,
// so it never returns partial results.
func (p Params) each(obs Pairs, check func(x, y int) error, f func(x, y int) float64) ([]float64, error) {
	for _, o := range obs {
		if err := check(o.X, o.Y); err != nil {
			return nil, err
		}
	}
	out := make([]float64, len(obs))
	for i, o := range obs {
		out[i] = f(o.X, o.Y)
	}
	return out, nil
}

// checkPoint validates p and a point of the support.
func (p Params) checkPoint(x, y int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return checkCoords(x, y, 1)
}

// checkTail validates p and a tail corner, which may lie on the
// axes.
func (p Params) checkTail(x, y int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return checkCoords(x, y, 0)
}

func checkCoords(x, y, lo int) error {
	if x < lo {
		return domainErr("x", float64(x), "%d < %d", x, lo)
	}
	if y < lo {
		return domainErr("y", float64(y), "%d < %d", y, lo)
	}
	return nil
}

func ipow(b float64, e int) float64 {
	return math.Pow(b, float64(e))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (p Params) sf(x, y int) float64 {
	return ipow(p.Theta1, x) * ipow(p.Theta2, y) * ipow(p.Theta3, maxInt(x, y))
}

func (p Params) cdf(x, y int) float64 {
	return 1 - ipow(p.Theta1*p.Theta3, x) - ipow(p.Theta2*p.Theta3, y) + p.sf(x, y)
}

func (p Params) pmfDiff(x, y int) float64 {
	return p.sf(x-1, y-1) - p.sf(x, y-1) - p.sf(x-1, y) + p.sf(x, y)
}

// diagonalFactor is 1 - θ1θ3 - θ2θ3 + θ1θ2θ3 written so that it is
// visibly positive for valid parameters.
func (p Params) diagonalFactor() float64 {
	return 1 - p.Theta3*(p.Theta1+p.Theta2-p.Theta1*p.Theta2)
}

func (p Params) pmf(x, y int) float64 {
	t1, t2, t3 := p.Theta1, p.Theta2, p.Theta3
	switch Classify(x, y) {
	case Below:
		return ipow(t2, y-1) * (1 - t2) * ipow(t1*t3, x-1) * (1 - t1*t3)
	case Diagonal:
		return ipow(t1*t2*t3, x-1) * p.diagonalFactor()
	default:
		return ipow(t1, x-1) * (1 - t1) * ipow(t2*t3, y-1) * (1 - t2*t3)
	}
}

func (p Params) logPMF(x, y int) float64 {
	l1, l2, l3 := math.Log(p.Theta1), math.Log(p.Theta2), math.Log(p.Theta3)
	var lp float64
	switch Classify(x, y) {
	case Below:
		lp = float64(y-1)*l2 + math.Log1p(-p.Theta2) + float64(x-1)*(l1+l3) + math.Log1p(-p.Theta1*p.Theta3)
	case Diagonal:
		lp = float64(x-1)*(l1+l2+l3) + math.Log(p.diagonalFactor())
	default:
		lp = float64(x-1)*l1 + math.Log1p(-p.Theta1) + float64(y-1)*(l2+l3) + math.Log1p(-p.Theta2*p.Theta3)
	}
	if math.IsInf(lp, 0) || math.IsNaN(lp) {
		return math.NaN()
	}
	return lp
}
