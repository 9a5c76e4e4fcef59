// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/cran/BivGeo/bgd"
)

var estimate sampling

func init() {
	f := newFlagSet("estimate", "")
	estimate.register(f, 10000)
	registerSubcommand("estimate", "[flags] - method of moments estimate from a fresh sample", cmdEstimate, f)
}

func cmdEstimate(w io.Writer) error {
	s, err := estimate.sampler()
	if err != nil {
		return err
	}
	obs, err := s.Sample(estimate.n)
	if err != nil {
		return err
	}
	est, err := bgd.MomentEstimate(obs)
	if err != nil {
		return err
	}
	p := estimate.theta.p
	tab := new(table.Builder).
		Add("param", []string{"theta1", "theta2", "theta3"}).
		Add("true", []float64{p.Theta1, p.Theta2, p.Theta3}).
		Add("estimate", []float64{est.Theta1, est.Theta2, est.Theta3}).
		Done()
	table.Fprint(w, tab)
	return nil
}
