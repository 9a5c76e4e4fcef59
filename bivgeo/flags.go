// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cran/BivGeo/bgd"
)

// thetaFlag is a flag.Value for a validated parameter vector.
type thetaFlag struct {
	p bgd.Params
}

func (f *thetaFlag) String() string {
	return fmt.Sprintf("%v,%v,%v", f.p.Theta1, f.p.Theta2, f.p.Theta3)
}

func (f *thetaFlag) Set(s string) error {
	vs, err := parseFloats(s, 3)
	if err != nil {
		return err
	}
	p := bgd.Params{Theta1: vs[0], Theta2: vs[1], Theta3: vs[2]}
	if err := p.Validate(); err != nil {
		return err
	}
	f.p = p
	return nil
}

// phiFlag is a flag.Value for a cure-fraction vector. set reports
// whether the flag was given.
type phiFlag struct {
	c   bgd.Cure
	set bool
}

func (f *phiFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%v,%v,%v,%v", f.c.Phi11, f.c.Phi10, f.c.Phi01, f.c.Phi00)
}

func (f *phiFlag) Set(s string) error {
	vs, err := parseFloats(s, 4)
	if err != nil {
		return err
	}
	c := bgd.Cure{Phi11: vs[0], Phi10: vs[1], Phi01: vs[2], Phi00: vs[3]}
	if err := c.Validate(); err != nil {
		return err
	}
	f.c, f.set = c, true
	return nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %q", n, s)
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func defaultTheta() *thetaFlag {
	return &thetaFlag{bgd.Params{Theta1: 0.5, Theta2: 0.5, Theta3: 0.7}}
}

// newFlagSet returns a flag set for subcommand name whose usage line
// shows args.
func newFlagSet(name, args string) *flag.FlagSet {
	f := flag.NewFlagSet(os.Args[0]+" "+name, flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [flags] %s\n", os.Args[0], name, args)
		f.PrintDefaults()
	}
	return f
}

// sampling holds the flags shared by the subcommands that draw a
// sample.
type sampling struct {
	theta  *thetaFlag
	n      int
	seed   uint64
	method string
}

func (s *sampling) register(f *flag.FlagSet, n int) {
	s.theta = defaultTheta()
	f.Var(s.theta, "theta", "distribution parameters `θ1,θ2,θ3`")
	f.IntVar(&s.n, "n", n, "draw `N` observations")
	f.Uint64Var(&s.seed, "seed", 1, "random `seed`")
	f.StringVar(&s.method, "method", "inverse", "generator: \"inverse\" or \"shock\"")
}
