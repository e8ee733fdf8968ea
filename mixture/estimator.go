// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import "sync"

// Estimator is a bounded mixture density estimator.
//
// An Estimator owns an ordered, append-only sequence of observed
// Components. Its density at x is the arithmetic mean of every
// observation's density at x, so each observation carries weight
// 1/Len(), which changes with every call to Observe.
//
// The density is forced to zero when there are no observations, or
// when x is less than both the lower and the upper bound. Note that
// this check is deliberately asymmetric: a point above the upper
// bound is not clipped.
//
// An Estimator is safe for concurrent use. Observe excludes all
// other calls; Density and the other readers may run concurrently
// with each other.
type Estimator[K Point[K], V Scalar] struct {
	lo, hi K

	mu  sync.RWMutex
	obs []Component[K, V]
}

type copier[K any] interface {
	Copy() K
}

// own returns a copy of x if K has a Copy method, so that the
// Estimator does not alias caller-owned storage.
func own[K any](x K) K {
	if c, ok := any(x).(copier[K]); ok {
		return c.Copy()
	}
	return x
}

// New returns an empty Estimator over the bounding region [lo, hi].
//
// It returns a *ConfigError wrapping ErrBadBounds if lo is not less
// than or equal to hi. For vec.Vec bounds this includes bounds of
// differing dimension.
func New[K Point[K], V Scalar](lo, hi K) (*Estimator[K, V], error) {
	if !lo.LessEqual(hi) {
		return nil, &ConfigError{Field: "bounds", Err: ErrBadBounds}
	}
	return &Estimator[K, V]{lo: own(lo), hi: own(hi)}, nil
}

// Bounds returns the lower and upper bound of e.
func (e *Estimator[K, V]) Bounds() (lo, hi K) {
	return own(e.lo), own(e.hi)
}

// Observe appends c to e's observations.
func (e *Estimator[K, V]) Observe(c Component[K, V]) {
	if c == nil {
		panic("mixture: Observe of nil Component")
	}
	e.mu.Lock()
	e.obs = append(e.obs, c)
	e.mu.Unlock()
}

// Len returns the number of observations in e.
func (e *Estimator[K, V]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.obs)
}

// Observations returns e's observations in the order they were
// observed.
func (e *Estimator[K, V]) Observations() []Component[K, V] {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Component[K, V](nil), e.obs...)
}

// Recent returns at most n of e's observations, newest first.
func (e *Estimator[K, V]) Recent(n int) []Component[K, V] {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if n > len(e.obs) {
		n = len(e.obs)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Component[K, V], n)
	for i := range out {
		out[i] = e.obs[len(e.obs)-1-i]
	}
	return out
}

// Density returns the value of the mixture's probability density
// function at x.
func (e *Estimator[K, V]) Density(x K) V {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.density(x)
}

// DensityEach returns Density(xs[i]) for each i.
func (e *Estimator[K, V]) DensityEach(xs []K) []V {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ys := make([]V, len(xs))
	for i, x := range xs {
		ys[i] = e.density(x)
	}
	return ys
}

func (e *Estimator[K, V]) density(x K) V {
	if len(e.obs) == 0 || (x.Less(e.lo) && x.Less(e.hi)) {
		return 0
	}
	var sum V
	for _, o := range e.obs {
		sum += o.Density(x)
	}
	return V(float64(sum) * (1 / float64(len(e.obs))))
}

// LogDensity is not implemented for mixtures. It always returns
// ErrUnsupported.
func (e *Estimator[K, V]) LogDensity(x K) (V, error) {
	return 0, ErrUnsupported
}
