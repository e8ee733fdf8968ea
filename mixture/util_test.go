// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"math"
	"testing"

	"github.com/aclements/go-mixture/vec"
	"golang.org/x/exp/rand"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// req reports whether got is within relative tolerance 1e-9 of
// expect.
func req(expect, got float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) <= 1e-9*math.Max(math.Abs(expect), math.Abs(got))
}

func testFunc(t *testing.T, name string, f func(vec.Vec) float64, vals map[[2]float64]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(vec.Vec{x[0], x[1]}); !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// constDist is a Component with the same density everywhere.
type constDist float64

func (c constDist) Sample(rng *rand.Rand) vec.Vec {
	return vec.Vec{0, 0}
}

func (c constDist) Density(x vec.Vec) float64 {
	return float64(c)
}

func mustDiagNormal(t *testing.T, mu, variances []float64) *Normal[float64] {
	t.Helper()
	n, err := NewDiagNormal[float64](mu, variances)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func mustNew(t *testing.T, lo, hi vec.Vec) *Estimator[vec.Vec, float64] {
	t.Helper()
	e, err := New[vec.Vec, float64](lo, hi)
	if err != nil {
		t.Fatal(err)
	}
	return e
}
