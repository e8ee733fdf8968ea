// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mixture implements an incremental, bounded mixture density
// estimator.
//
// An Estimator accumulates density components ("observations") one
// at a time and evaluates the equally-weighted average of their
// densities at arbitrary points, subject to a bound check against a
// fixed bounding region.
package mixture // import "github.com/aclements/go-mixture/mixture"

import "golang.org/x/exp/constraints"

// Scalar is the type of density values. Any floating-point type
// works: it has a zero value, supports addition, and converts to and
// from float64.
type Scalar interface {
	constraints.Float
}
