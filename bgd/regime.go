// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

// A Regime says where a value y lies relative to the diagonal y = x.
// The joint pmf and the conditional law of Y given X both have one
// closed form per regime.
type Regime int

const (
	Below    Regime = iota // y < x
	Diagonal               // y == x
	Above                  // y > x
)

// Classify returns the regime of y relative to x.
func Classify(x, y int) Regime {
	switch {
	case y < x:
		return Below
	case y == x:
		return Diagonal
	}
	return Above
}

func (r Regime) String() string {
	switch r {
	case Below:
		return "below"
	case Diagonal:
		return "diagonal"
	case Above:
		return "above"
	}
	return "Regime(?)"
}
