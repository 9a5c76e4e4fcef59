// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/cran/BivGeo/bgd"
	"github.com/cran/BivGeo/internal/gof"
	"golang.org/x/exp/rand"
)

var check struct {
	sampling
	x, y      int
	resamples int
}

func init() {
	f := newFlagSet("check", "")
	check.register(f, 100000)
	f.IntVar(&check.x, "x", 2, "joint CDF check at `x`")
	f.IntVar(&check.y, "y", 3, "joint CDF check at `y`")
	f.IntVar(&check.resamples, "resamples", 0, "Anderson-Darling bootstrap `resamples` (0 to skip)")
	registerSubcommand("check", "[flags] - cross-check both samplers against the closed forms", cmdCheck, f)
}

// Random streams of the check subcommand. Each sampler and the
// Anderson-Darling bootstrap get their own seed derived from -seed.
const (
	streamInverse   = 0
	streamShock     = 1
	streamBootstrap = 100
)

func streamSeed(seed uint64, stream int) uint64 {
	return seed + uint64(stream)
}

// checkRow is one line of the check report.
type checkRow struct {
	Method, Test string
	Statistic, P float64
}

func cmdCheck(w io.Writer) error {
	p := check.theta.p
	cdf, err := p.CDF(check.x, check.y)
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

	var rows []checkRow
	for _, gen := range []struct {
		method string
		stream int
	}{{"inverse", streamInverse}, {"shock", streamShock}} {
		method := gen.method
		s, err := newSampler(method, p, streamSeed(check.seed, gen.stream))
		if err != nil {
			return err
		}
		obs, err := s.Sample(check.n)
		if err != nil {
			return err
		}
		xs, ys := obs.XY()

		for _, m := range []struct {
			name   string
			sample []int
			dist   bgd.GeometricDist
		}{{"X", xs, mx}, {"Y", ys, my}} {
			res, err := gof.ChiSquare(m.sample, m.dist, 5)
			if err != nil {
				return fmt.Errorf("%s: chi-square on %s: %w", method, m.name, err)
			}
			rows = append(rows, checkRow{method, "chi-square " + m.name, res.X2, res.P})
		}

		if check.resamples > 0 {
			r := rand.New(rand.NewSource(streamSeed(check.seed, streamBootstrap+gen.stream)))
			res, err := gof.AndersonDarling(xs, mx, r, check.resamples)
			if err != nil {
				return fmt.Errorf("%s: Anderson-Darling on X: %w", method, err)
			}
			rows = append(rows, checkRow{method, "Anderson-Darling X", res.A2, res.P})
		}

		// Empirical joint CDF as a binomial proportion.
		hits := 0
		for _, o := range obs {
			if o.X <= check.x && o.Y <= check.y {
				hits++
			}
		}
		z := gof.BinomialZ(hits, len(obs), cdf)
		norm := stats.NormalDist{Mu: 0, Sigma: 1}
		rows = append(rows, checkRow{method, fmt.Sprintf("CDF(%d,%d) z", check.x, check.y), z, 2 * norm.CDF(-math.Abs(z))})
	}

	table.Fprint(w, table.TableFromStructs(rows))
	return nil
}
