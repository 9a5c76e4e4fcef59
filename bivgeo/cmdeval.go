// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

var eval = struct {
	theta *thetaFlag
	phi   phiFlag
	phi11 float64
	log   bool

	pmfFlags, cdfFlags, sfFlags *flag.FlagSet
}{}

func init() {
	eval.theta = defaultTheta()

	f := newFlagSet("pmf", "x y")
	f.Var(eval.theta, "theta", "distribution parameters `θ1,θ2,θ3`")
	f.Float64Var(&eval.phi11, "phi11", 1, "susceptible `fraction` of the cure-fraction mixture")
	f.BoolVar(&eval.log, "log", false, "print the natural log of the pmf")
	eval.pmfFlags = f
	registerSubcommand("pmf", "[flags] x y - joint probability mass", cmdPMF, f)

	for _, name := range []string{"cdf", "sf"} {
		f := newFlagSet(name, "x y")
		f.Var(eval.theta, "theta", "distribution parameters `θ1,θ2,θ3`")
		f.Var(&eval.phi, "phi", "cure-fraction mixture `φ11,φ10,φ01,φ00`")
		if name == "cdf" {
			eval.cdfFlags = f
			registerSubcommand(name, "[flags] x y - joint cumulative distribution", cmdCDF, f)
		} else {
			eval.sfFlags = f
			registerSubcommand(name, "[flags] x y - joint survival function", cmdSF, f)
		}
	}
}

func point(f *flag.FlagSet) (x, y int, err error) {
	if f.NArg() != 2 {
		f.Usage()
		return 0, 0, fmt.Errorf("want x and y, got %d arguments", f.NArg())
	}
	if x, err = strconv.Atoi(f.Arg(0)); err != nil {
		return
	}
	y, err = strconv.Atoi(f.Arg(1))
	return
}

func cmdPMF(w io.Writer) error {
	x, y, err := point(eval.pmfFlags)
	if err != nil {
		return err
	}
	p := eval.theta.p
	var v float64
	switch {
	case eval.phi11 != 1 && eval.log:
		v, err = p.LogPMFCure(x, y, eval.phi11)
	case eval.phi11 != 1:
		v, err = p.PMFCure(x, y, eval.phi11)
	case eval.log:
		v, err = p.LogPMF(x, y)
	default:
		v, err = p.PMF(x, y)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return err
}

func cmdCDF(w io.Writer) error {
	return tail(w, eval.cdfFlags, true)
}

func cmdSF(w io.Writer) error {
	return tail(w, eval.sfFlags, false)
}

// tail prints the lower (CDF) or upper (SF) joint tail at the point
// given in f's arguments.
func tail(w io.Writer, f *flag.FlagSet, lower bool) error {
	x, y, err := point(f)
	if err != nil {
		return err
	}
	p := eval.theta.p
	var v float64
	switch {
	case eval.phi.set && lower:
		v, err = p.CDFCure(x, y, eval.phi.c)
	case eval.phi.set:
		v, err = p.SFCure(x, y, eval.phi.c)
	case lower:
		v, err = p.CDF(x, y)
	default:
		v, err = p.SF(x, y)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return err
}
