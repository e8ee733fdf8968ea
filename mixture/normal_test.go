// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-mixture/vec"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestNormalDensity(t *testing.T) {
	n := mustDiagNormal(t, []float64{0, 0}, []float64{0.01, 0.04})
	peak := 1 / (2 * math.Pi * math.Sqrt(0.01*0.04))
	testFunc(t, "Normal.Density", n.Density, map[[2]float64]float64{
		{0, 0}:   peak,
		{0.1, 0}: peak * math.Exp(-0.5),
		{0, 0.2}: peak * math.Exp(-0.5),
		{50, 50}: 0,
	})
	if got := n.Density(vec.Vec{0}); got != 0 {
		t.Errorf("Density of wrong-dimension point = %v, want 0", got)
	}
	x := vec.Vec{0.05, -0.1}
	if want, got := math.Log(n.Density(x)), n.LogDensity(x); !aeq(want, got) {
		t.Errorf("LogDensity(%v) = %v, want %v", x, got, want)
	}
	if got := n.LogDensity(vec.Vec{1, 2, 3}); !math.IsInf(got, -1) {
		t.Errorf("LogDensity of wrong-dimension point = %v, want -Inf", got)
	}
}

func TestNormalAccessors(t *testing.T) {
	n := mustDiagNormal(t, []float64{1, -2, 3}, []float64{0.5, 1, 2})
	if n.Dim() != 3 {
		t.Errorf("Dim() = %d, want 3", n.Dim())
	}
	mean := n.Mean()
	for i, want := range []float64{1, -2, 3} {
		if mean[i] != want {
			t.Errorf("Mean()[%d] = %v, want %v", i, mean[i], want)
		}
	}
	cov := n.Covariance()
	for i, want := range []float64{0.5, 1, 2} {
		if got := cov.At(i, i); !aeq(want, got) {
			t.Errorf("Covariance()[%d,%d] = %v, want %v", i, i, got, want)
		}
	}
	if got := cov.At(0, 1); !aeq(0, got) {
		t.Errorf("Covariance()[0,1] = %v, want 0", got)
	}
}

func TestNormalSample(t *testing.T) {
	mu := []float64{0.3, -0.4}
	n := mustDiagNormal(t, mu, []float64{0.01, 0.04})
	rng := rand.New(rand.NewSource(42))
	const count = 20000
	var sum, sumSq [2]float64
	for i := 0; i < count; i++ {
		x := n.Sample(rng)
		for j := range x {
			sum[j] += x[j]
			sumSq[j] += x[j] * x[j]
		}
	}
	for j, wantVar := range []float64{0.01, 0.04} {
		mean := sum[j] / count
		variance := sumSq[j]/count - mean*mean
		if math.Abs(mean-mu[j]) > 0.01 {
			t.Errorf("axis %d: sample mean %v, want ≅ %v", j, mean, mu[j])
		}
		if math.Abs(variance/wantVar-1) > 0.05 {
			t.Errorf("axis %d: sample variance %v, want ≅ %v", j, variance, wantVar)
		}
	}
}

func TestNormalConstruction(t *testing.T) {
	tests := []struct {
		name  string
		mu    []float64
		sigma mat.Symmetric
		want  error
	}{
		{"not positive definite", []float64{0, 0}, mat.NewSymDense(2, []float64{1, 2, 2, 1}), ErrNotPositiveDefinite},
		{"zero variance", []float64{0, 0}, mat.NewSymDense(2, []float64{1, 0, 0, 0}), ErrNotPositiveDefinite},
		{"negative variance", []float64{0}, mat.NewSymDense(1, []float64{-1}), ErrNotPositiveDefinite},
		{"dimension mismatch", []float64{0, 0, 0}, mat.NewSymDense(2, []float64{1, 0, 0, 1}), ErrDimension},
		{"empty mean", nil, mat.NewSymDense(1, []float64{1}), ErrDimension},
		{"nil covariance", []float64{0}, nil, ErrDimension},
		{"nan mean", []float64{math.NaN(), 0}, mat.NewSymDense(2, []float64{1, 0, 0, 1}), ErrBadParameter},
		{"inf covariance", []float64{0, 0}, mat.NewSymDense(2, []float64{math.Inf(1), 0, 0, 1}), ErrBadParameter},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n, err := NewNormal[float64](test.mu, test.sigma)
			if n != nil {
				t.Errorf("got distribution %v, want nil", n)
			}
			var cerr *ConstructionError
			if !errors.As(err, &cerr) {
				t.Fatalf("error %v is not a *ConstructionError", err)
			}
			if !errors.Is(err, test.want) {
				t.Errorf("error %v, want %v", err, test.want)
			}
		})
	}

	if _, err := NewDiagNormal[float64]([]float64{0, 0}, []float64{1}); !errors.Is(err, ErrDimension) {
		t.Errorf("NewDiagNormal with short variances: error %v, want ErrDimension", err)
	}
}

func TestNormal1(t *testing.T) {
	n, err := NewNormal1[float64](1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n.Mean() != 1 || n.StdDev() != 2 {
		t.Errorf("got N(%v, %v), want N(1, 2)", n.Mean(), n.StdDev())
	}
	want := 1 / (2 * math.Sqrt(2*math.Pi))
	if got := n.Density(1); !aeq(want, got) {
		t.Errorf("Density(1) = %v, want %v", got, want)
	}
	if got := n.LogDensity(1); !aeq(math.Log(want), got) {
		t.Errorf("LogDensity(1) = %v, want %v", got, math.Log(want))
	}

	rng := rand.New(rand.NewSource(7))
	var sum float64
	for i := 0; i < 10000; i++ {
		sum += float64(n.Sample(rng))
	}
	if mean := sum / 10000; math.Abs(mean-1) > 0.1 {
		t.Errorf("sample mean %v, want ≅ 1", mean)
	}

	for _, p := range [][2]float64{{0, 0}, {0, -1}, {math.NaN(), 1}, {0, math.NaN()}, {0, math.Inf(1)}} {
		_, err := NewNormal1[float64](p[0], p[1])
		var cerr *ConstructionError
		if !errors.As(err, &cerr) || !errors.Is(err, ErrBadParameter) {
			t.Errorf("NewNormal1(%v, %v) error = %v, want ConstructionError wrapping ErrBadParameter", p[0], p[1], err)
		}
	}
}
