// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import "math"

// The cure-fraction extension mixes the base distribution with
// "cured" components that never fail. With probability c.Phi11 both
// X and Y follow the base law, with c.Phi10 only X does (Y = ∞), with
// c.Phi01 only Y does, and with c.Phi00 neither does.

// SFCure returns the survival function P(X > x, Y > y) of the
// cure-fraction mixture c.
func (p Params) SFCure(x, y int, c Cure) (float64, error) {
	if err := p.checkCure(x, y, c); err != nil {
		return 0, err
	}
	return p.sfCure(x, y, c), nil
}

// CDFCure returns the cumulative distribution function
// P(X <= x, Y <= y) of the cure-fraction mixture c.
func (p Params) CDFCure(x, y int, c Cure) (float64, error) {
	if err := p.checkCure(x, y, c); err != nil {
		return 0, err
	}
	return p.cdfCure(x, y, c), nil
}

// PMFCure returns P(X = x, Y = y) of a cure-fraction mixture whose
// susceptible fraction is phi11. Only the doubly susceptible
// component puts mass on finite points, so the result is phi11 times
// the base pmf in its difference form.
func (p Params) PMFCure(x, y int, phi11 float64) (float64, error) {
	if err := p.checkPMFCure(x, y, phi11); err != nil {
		return 0, err
	}
	return phi11 * p.pmfDiff(x, y), nil
}

// LogPMFCure returns the natural logarithm of PMFCure. It returns NaN
// if the pmf is not positive.
func (p Params) LogPMFCure(x, y int, phi11 float64) (float64, error) {
	if err := p.checkPMFCure(x, y, phi11); err != nil {
		return 0, err
	}
	return logPositive(phi11 * p.pmfDiff(x, y)), nil
}

// SFCureEach returns SFCure(o.X, o.Y, c) for each o in obs.
func (p Params) SFCureEach(obs Pairs, c Cure) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return p.each(obs, p.checkTail, func(x, y int) float64 { return p.sfCure(x, y, c) })
}

// CDFCureEach returns CDFCure(o.X, o.Y, c) for each o in obs.
func (p Params) CDFCureEach(obs Pairs, c Cure) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return p.each(obs, p.checkTail, func(x, y int) float64 { return p.cdfCure(x, y, c) })
}

// PMFCureEach returns PMFCure(o.X, o.Y, phi11) for each o in obs.
func (p Params) PMFCureEach(obs Pairs, phi11 float64) ([]float64, error) {
	if err := validPhi11(phi11); err != nil {
		return nil, err
	}
	return p.each(obs, p.checkPoint, func(x, y int) float64 { return phi11 * p.pmfDiff(x, y) })
}

func (p Params) checkCure(x, y int, c Cure) error {
	if err := p.checkTail(x, y); err != nil {
		return err
	}
	return c.Validate()
}

func (p Params) checkPMFCure(x, y int, phi11 float64) error {
	if err := p.checkPoint(x, y); err != nil {
		return err
	}
	return validPhi11(phi11)
}

func (p Params) sfCure(x, y int, c Cure) float64 {
	return c.Phi11*p.sf(x, y) +
		c.Phi10*ipow(p.Theta1*p.Theta3, x) +
		c.Phi01*ipow(p.Theta2*p.Theta3, y) +
		c.Phi00
}

func (p Params) cdfCure(x, y int, c Cure) float64 {
	sfx := (c.Phi11+c.Phi10)*ipow(p.Theta1*p.Theta3, x) + (c.Phi01 + c.Phi00)
	sfy := (c.Phi11+c.Phi01)*ipow(p.Theta2*p.Theta3, y) + (c.Phi10 + c.Phi00)
	return 1 - sfx - sfy + p.sfCure(x, y, c)
}

func logPositive(v float64) float64 {
	if !(v > 0) {
		return math.NaN()
	}
	return math.Log(v)
}
