// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import "golang.org/x/exp/rand"

// ShockModel generates observations from the Marshall–Olkin shock
// construction: three independent geometric shocks R1, R2, R3 with
// success probabilities 1-θ1, 1-θ2, 1-θ3, and X = min(R1, R3),
// Y = min(R2, R3).
type ShockModel struct {
	Params

	// Src is the source of randomness. If nil, the global source
	// of golang.org/x/exp/rand is used.
	Src rand.Source
}

func (s ShockModel) Rand() (Obs, error) {
	if err := s.Validate(); err != nil {
		return Obs{}, err
	}
	return s.draw(newRand(s.Src)), nil
}

func (s ShockModel) Sample(n int) (Pairs, error) {
	if err := checkN(n, s.Params); err != nil {
		return nil, err
	}
	r := newRand(s.Src)
	out := make(Pairs, n)
	for i := range out {
		out[i] = s.draw(r)
	}
	return out, nil
}

func (s ShockModel) draw(r *rand.Rand) Obs {
	r1 := GeometricDist{P: 1 - s.Theta1, Start: 1}.Rand(r)
	r2 := GeometricDist{P: 1 - s.Theta2, Start: 1}.Rand(r)
	// With θ3 = 1, r3 is math.MaxInt and never wins.
	r3 := GeometricDist{P: 1 - s.Theta3, Start: 1}.Rand(r)
	return Obs{minInt(r1, r3), minInt(r2, r3)}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
