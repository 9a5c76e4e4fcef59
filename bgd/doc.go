// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bgd implements the Basu–Dhar bivariate geometric
// distribution.
//
// The distribution is the joint law of
//
//	X = min(R1, R3),  Y = min(R2, R3)
//
// where R1, R2, R3 are independent geometric "shock" variables on
// {1, 2, ...} with P(Ri > k) = θi^k. Its joint survival function is
//
//	P(X > x, Y > y) = θ1^x θ2^y θ3^max(x,y)
//
// for θ1, θ2 ∈ (0,1) and θ3 ∈ (0,1]. θ3 = 1 gives independent
// geometric marginals.
//
// The package provides the joint pmf, cdf and survival function, a
// mixture cure-fraction extension of them, two random variate
// generators (InverseTransform and ShockModel), method of moments
// estimation, and closed-form summary statistics.
//
// All functions validate their parameters on entry and report
// violations as a *DomainError; nothing is clamped.
package bgd
