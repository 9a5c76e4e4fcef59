// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bgd

import (
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Obs is one observation (X, Y) of a pair of positive integers.
type Obs struct {
	X, Y int
}

// Pairs is a sequence of observations. It is the canonical form that
// every input shape is normalized to by Observe.
type Pairs []Obs

// A Source supplies observations in some input shape.
type Source interface {
	Observations() (Pairs, error)
}

// Observe normalizes src into Pairs and checks that every
// coordinate is at least 1.
func Observe(src Source) (Pairs, error) {
	obs, err := src.Observations()
	if err != nil {
		return nil, err
	}
	for _, o := range obs {
		if err := checkCoords(o.X, o.Y, 1); err != nil {
			return nil, err
		}
	}
	return obs, nil
}

// Observations returns a copy of p.
func (p Pairs) Observations() (Pairs, error) {
	return append(Pairs(nil), p...), nil
}

// XY returns the X and Y coordinates of p as separate slices.
func (p Pairs) XY() (xs, ys []int) {
	xs, ys = make([]int, len(p)), make([]int, len(p))
	for i, o := range p {
		xs[i], ys[i] = o.X, o.Y
	}
	return
}

// Table returns p as a table with integer columns "x" and "y".
func (p Pairs) Table() *table.Table {
	xs, ys := p.XY()
	return new(table.Builder).Add("x", xs).Add("y", ys).Done()
}

type columns struct {
	xs, ys []int
}

// Columns returns a Source that pairs xs[i] with ys[i]. xs and ys
// must have the same length.
func Columns(xs, ys []int) Source {
	return columns{xs, ys}
}

func (c columns) Observations() (Pairs, error) {
	if len(c.xs) != len(c.ys) {
		return nil, domainErr("y", float64(len(c.ys)), "len(y) = %d does not match len(x) = %d", len(c.ys), len(c.xs))
	}
	out := make(Pairs, len(c.xs))
	for i := range out {
		out[i] = Obs{c.xs[i], c.ys[i]}
	}
	return out, nil
}

type tableSource struct {
	t          *table.Table
	xcol, ycol string
}

// TableSource returns a Source that reads X from column xcol and Y
// from column ycol of t. The columns may have any integer or float
// type, but every value must be integral.
func TableSource(t *table.Table, xcol, ycol string) Source {
	return tableSource{t, xcol, ycol}
}

func (s tableSource) Observations() (Pairs, error) {
	xs, err := intColumn(s.t, s.xcol)
	if err != nil {
		return nil, err
	}
	ys, err := intColumn(s.t, s.ycol)
	if err != nil {
		return nil, err
	}
	return columns{xs, ys}.Observations()
}

func intColumn(t *table.Table, name string) ([]int, error) {
	found := false
	for _, col := range t.Columns() {
		if col == name {
			found = true
			break
		}
	}
	if !found {
		return nil, domainErr(name, math.NaN(), "table has no column %q", name)
	}

	col := t.MustColumn(name)
	switch reflect.TypeOf(col).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
	default:
		return nil, domainErr(name, math.NaN(), "column %q has non-numeric type %T", name, col)
	}

	var fs []float64
	slice.Convert(&fs, col)
	out := make([]int, len(fs))
	for i, f := range fs {
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, domainErr(name, f, "row %d of column %q is %v, not an integer", i, name, f)
		}
		if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
			return nil, domainErr(name, f, "row %d of column %q is %v, out of int range", i, name, f)
		}
		out[i] = int(f)
	}
	return out, nil
}
