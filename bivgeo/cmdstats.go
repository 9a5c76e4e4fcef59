// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/table"
)

var statsTheta = defaultTheta()

func init() {
	f := newFlagSet("stats", "")
	f.Var(statsTheta, "theta", "distribution parameters `θ1,θ2,θ3`")
	registerSubcommand("stats", "[flags] - summary statistics", cmdStats, f)
}

func cmdStats(w io.Writer) error {
	p := statsTheta.p
	rho, err := p.Correlation()
	if err != nil {
		return err
	}
	exy, err := p.CrossMoment()
	if err != nil {
		return err
	}
	cov, err := p.Covariance()
	if err != nil {
		return err
	}
	mx, err := p.MarginalX()
	if err != nil {
		return err
	}
	my, err := p.MarginalY()
	if err != nil {
		return err
	}

	tab := new(table.Builder).
		Add("statistic", []string{"correlation", "E[XY]", "Cov(X,Y)", "E[X]", "Var(X)", "E[Y]", "Var(Y)"}).
		Add("value", []float64{rho, exy, cov, mx.Mean(), mx.Variance(), my.Mean(), my.Variance()}).
		Done()
	table.Fprint(w, tab)
	return nil
}
