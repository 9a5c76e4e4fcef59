// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/cran/BivGeo/bgd"
	"github.com/kballard/go-shellquote"
	"golang.org/x/exp/rand"
)

var sample sampling

func init() {
	f := newFlagSet("sample", "")
	sample.register(f, 10)
	registerSubcommand("sample", "[flags] - print a random sample", cmdSample, f)
}

// sampler returns the generator selected by s.method.
func (s *sampling) sampler() (bgd.Sampler, error) {
	return newSampler(s.method, s.theta.p, s.seed)
}

func newSampler(method string, p bgd.Params, seed uint64) (bgd.Sampler, error) {
	src := rand.NewSource(seed)
	switch method {
	case "inverse":
		return bgd.InverseTransform{Params: p, Src: src}, nil
	case "shock":
		return bgd.ShockModel{Params: p, Src: src}, nil
	}
	return nil, fmt.Errorf("unknown method %q", method)
}

func cmdSample(w io.Writer) error {
	s, err := sample.sampler()
	if err != nil {
		return err
	}
	obs, err := s.Sample(sample.n)
	if err != nil {
		return err
	}
	if len(invocation) > 0 {
		fmt.Fprintf(w, "# %s\n", shellquote.Join(invocation...))
	}
	table.Fprint(w, obs.Table())
	return nil
}
