// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gof implements goodness-of-fit tests of integer samples
// against discrete distributions.
package gof

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrSampleSize = errors.New("sample is too small")

	ErrMinExpected = errors.New("minimum expected bin count must be positive")
)

// Discrete is a discrete distribution over the integers.
type Discrete interface {
	PMF(k int) float64
	CDF(k int) float64
	// SF returns 1 - CDF(k).
	SF(k int) float64
	// Min returns the smallest value in the support.
	Min() int
	Rand(r *rand.Rand) int
}

type SampleValueError struct {
	Value  int
	Detail string
}

func (e *SampleValueError) Error() string {
	return e.Detail
}

type ADResult struct {
	// A2 is the Anderson-Darling test statistic, A², for the
	// goodness of fit of the sample to the probability
	// distribution.
	A2 float64

	// P is the p-value for this test. A small value of P
	// indicates a significant difference between the sample and
	// the distribution.
	P float64
}

// AndersonDarling performs an Anderson-Darling goodness-of-fit test
// for whether sample comes from dist. It tests the null hypothesis
// that sample follows dist against the alternate hypothesis that it
// does not.
//
// The distribution of A² for a discrete law depends on the law, so
// the p-value is estimated by a parametric bootstrap of resamples
// samples drawn from dist using r. The p-value is therefore only
// reproducible for a seeded r.
func AndersonDarling(sample []int, dist Discrete, r *rand.Rand, resamples int) (*ADResult, error) {
	if len(sample) == 0 || resamples <= 0 {
		return nil, ErrSampleSize
	}

	if !sort.IntsAreSorted(sample) {
		sample = append([]int(nil), sample...)
		sort.Ints(sample)
	}

	A2, err := andersonDarling(sample, dist)
	if err != nil {
		return nil, err
	}

	nsample := make([]int, len(sample))
	ngreater := 0
	for i := 0; i < resamples; i++ {
		for j := range nsample {
			nsample[j] = dist.Rand(r)
		}
		sort.Ints(nsample)
		nA2, err := andersonDarling(nsample, dist)
		if err != nil {
			return nil, err
		}
		if nA2 >= A2 {
			ngreater++
		}
	}
	p := float64(ngreater) / float64(resamples)

	return &ADResult{A2, p}, nil
}

// andersonDarling returns the Anderson-Darling test statistic, A²,
// for the goodness of fit of sample to dist.
//
// sample must be sorted.
func andersonDarling(sample []int, dist Discrete) (float64, error) {
	n := len(sample)
	sum := 0.0
	for i, y1 := range sample {
		y2 := sample[n-i-1]
		cdf1, sf2 := dist.CDF(y1), dist.SF(y2)
		if cdf1 == 0 {
			return 0, outside(y1, dist)
		}
		if sf2 == 0 {
			return 0, outside(y2, dist)
		}
		sum += float64(2*i+1) * (math.Log(cdf1) + math.Log(sf2))
	}
	return -float64(n) - sum/float64(n), nil
}

func outside(v int, dist Discrete) error {
	return &SampleValueError{
		Value:  v,
		Detail: fmt.Sprintf("sample %d lies outside support of expected distribution %v", v, dist),
	}
}

type ChiSquareResult struct {
	// X2 is Pearson's chi-square statistic.
	X2 float64

	// DF is the number of degrees of freedom, one less than the
	// number of bins.
	DF int

	// P is the p-value of X2.
	P float64
}

// ChiSquare performs Pearson's chi-square goodness-of-fit test of
// sample against the fully specified distribution dist.
//
// Values are binned starting from the bottom of dist's support, so
// mass that sample is missing at the low end shows up in the first
// bins. Adjacent values are pooled until every bin expects at least
// minExpected observations, and the upper tail is pooled into the
// last bin. minExpected must be positive.
func ChiSquare(sample []int, dist Discrete, minExpected float64) (*ChiSquareResult, error) {
	if !(minExpected > 0) {
		return nil, ErrMinExpected
	}
	if len(sample) == 0 {
		return nil, ErrSampleSize
	}
	if !sort.IntsAreSorted(sample) {
		sample = append([]int(nil), sample...)
		sort.Ints(sample)
	}
	if sample[0] < dist.Min() {
		return nil, outside(sample[0], dist)
	}
	n := float64(len(sample))

	// countTo returns the number of samples <= k, advancing i.
	i := 0
	countTo := func(k int) float64 {
		start := i
		for i < len(sample) && sample[i] <= k {
			i++
		}
		return float64(i - start)
	}

	var obs, exp []float64
	k := dist.Min()
	curObs, curExp := countTo(k), n*dist.PMF(k)
	for {
		tail := n * dist.SF(k)
		if tail < minExpected {
			// Pool the upper tail into the current bin and
			// close it out.
			curObs += float64(len(sample) - i)
			curExp += tail
			if curExp < minExpected && len(obs) > 0 {
				obs[len(obs)-1] += curObs
				exp[len(exp)-1] += curExp
			} else {
				obs, exp = append(obs, curObs), append(exp, curExp)
			}
			break
		}
		if curExp >= minExpected {
			obs, exp = append(obs, curObs), append(exp, curExp)
			curObs, curExp = 0, 0
		}
		k++
		curObs += countTo(k)
		curExp += n * dist.PMF(k)
	}

	if len(obs) < 2 {
		return nil, ErrSampleSize
	}
	terms := make([]float64, len(obs))
	for j := range obs {
		d := obs[j] - exp[j]
		terms[j] = d * d / exp[j]
	}
	x2 := vec.Sum(terms)
	df := len(obs) - 1
	p := distuv.ChiSquared{K: float64(df)}.Survival(x2)
	return &ChiSquareResult{X2: x2, DF: df, P: p}, nil
}

// BinomialZ returns the number of standard errors by which hits
// successes in n trials deviate from the expected count for success
// probability p.
func BinomialZ(hits, n int, p float64) float64 {
	mean := float64(n) * p
	return (float64(hits) - mean) / math.Sqrt(mean*(1-p))
}
