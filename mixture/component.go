// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import "golang.org/x/exp/rand"

// A Component is a distribution over points of type K that can be
// sampled and whose density can be evaluated.
//
// Components are immutable once constructed.
type Component[K any, V Scalar] interface {
	// Sample draws one point from this distribution using rng.
	Sample(rng *rand.Rand) K

	// Density returns the value of the probability density
	// function of this distribution at x. It must be
	// deterministic and non-negative. It need not integrate to 1
	// over any particular region.
	Density(x K) V
}

// A Point is a location in the domain of an Estimator. Points are
// partially ordered.
type Point[K any] interface {
	// Less reports whether the receiver is strictly less than q.
	Less(q K) bool

	// LessEqual reports whether the receiver is less than or
	// equal to q.
	LessEqual(q K) bool
}
