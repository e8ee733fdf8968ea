// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"math"

	"github.com/aclements/go-mixture/vec"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is a multivariate normal distribution over vec.Vec.
type Normal[V Scalar] struct {
	dist *distmv.Normal
}

// NewNormal returns a multivariate normal distribution with mean mu
// and covariance sigma.
//
// It returns a *ConstructionError if mu is empty, if sigma's
// dimension differs from len(mu), if any parameter is not finite, or
// if sigma is not positive definite.
func NewNormal[V Scalar](mu []float64, sigma mat.Symmetric) (*Normal[V], error) {
	const name = "multivariate normal"
	if len(mu) == 0 || sigma == nil || sigma.SymmetricDim() != len(mu) {
		return nil, &ConstructionError{name, ErrDimension}
	}
	if !allFinite(mu) {
		return nil, &ConstructionError{name, ErrBadParameter}
	}
	n := len(mu)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := sigma.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ConstructionError{name, ErrBadParameter}
			}
		}
	}
	// The distribution's own source is never used: Sample draws
	// from the caller's generator.
	d, ok := distmv.NewNormal(mu, sigma, nil)
	if !ok {
		return nil, &ConstructionError{name, ErrNotPositiveDefinite}
	}
	return &Normal[V]{d}, nil
}

// NewDiagNormal returns a multivariate normal distribution with mean
// mu and a diagonal covariance whose diagonal is variances.
func NewDiagNormal[V Scalar](mu, variances []float64) (*Normal[V], error) {
	if len(mu) == 0 || len(variances) != len(mu) {
		return nil, &ConstructionError{"multivariate normal", ErrDimension}
	}
	sigma := mat.NewSymDense(len(mu), nil)
	for i, v := range variances {
		sigma.SetSym(i, i, v)
	}
	return NewNormal[V](mu, sigma)
}

// Dim returns the dimension of the distribution.
func (n *Normal[V]) Dim() int {
	return n.dist.Dim()
}

// Mean returns the mean of the distribution.
func (n *Normal[V]) Mean() vec.Vec {
	return n.dist.Mean(nil)
}

// Covariance returns the covariance matrix of the distribution.
func (n *Normal[V]) Covariance() *mat.SymDense {
	var c mat.SymDense
	n.dist.CovarianceMatrix(&c)
	return &c
}

func (n *Normal[V]) Sample(rng *rand.Rand) vec.Vec {
	z := make([]float64, n.dist.Dim())
	for i := range z {
		z[i] = rng.NormFloat64()
	}
	return n.dist.TransformNormal(nil, z)
}

// Density returns the density of the distribution at x, or 0 if x
// has the wrong dimension.
func (n *Normal[V]) Density(x vec.Vec) V {
	if len(x) != n.dist.Dim() {
		return 0
	}
	return V(n.dist.Prob(x))
}

// LogDensity returns the log of the density at x, or -Inf if x has
// the wrong dimension.
func (n *Normal[V]) LogDensity(x vec.Vec) V {
	if len(x) != n.dist.Dim() {
		return V(math.Inf(-1))
	}
	return V(n.dist.LogProb(x))
}

// Normal1 is a univariate normal distribution over vec.Real.
type Normal1[V Scalar] struct {
	dist distuv.Normal
}

// NewNormal1 returns a normal distribution with mean mu and standard
// deviation sigma. Sigma must be positive and finite.
func NewNormal1[V Scalar](mu, sigma float64) (*Normal1[V], error) {
	const name = "normal"
	if math.IsNaN(mu) || math.IsInf(mu, 0) || math.IsInf(sigma, 0) || !(sigma > 0) {
		return nil, &ConstructionError{name, ErrBadParameter}
	}
	return &Normal1[V]{distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

func (n *Normal1[V]) Mean() float64 {
	return n.dist.Mu
}

func (n *Normal1[V]) StdDev() float64 {
	return n.dist.Sigma
}

func (n *Normal1[V]) Sample(rng *rand.Rand) vec.Real {
	return vec.Real(rng.NormFloat64()*n.dist.Sigma + n.dist.Mu)
}

func (n *Normal1[V]) Density(x vec.Real) V {
	return V(n.dist.Prob(float64(x)))
}

func (n *Normal1[V]) LogDensity(x vec.Real) V {
	return V(n.dist.LogProb(float64(x)))
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
