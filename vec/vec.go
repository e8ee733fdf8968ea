// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec provides the point types density estimators are
// evaluated over and helpers for building evaluation grids.
package vec // import "github.com/aclements/go-mixture/vec"

// Vec is a point in n-dimensional space.
type Vec []float64

// Dim returns the number of axes of v.
func (v Vec) Dim() int {
	return len(v)
}

// Copy returns a copy of v that shares no storage with v.
func (v Vec) Copy() Vec {
	v1 := make(Vec, len(v))
	copy(v1, v)
	return v1
}

// Less reports whether v is strictly less than q on every axis.
//
// This is a partial order: two vectors of different dimension, or
// two vectors that are less on some axes and greater on others, are
// unordered and Less returns false in both directions.
func (v Vec) Less(q Vec) bool {
	if len(v) != len(q) {
		return false
	}
	for i := range v {
		if !(v[i] < q[i]) {
			return false
		}
	}
	return true
}

// LessEqual reports whether v is less than or equal to q on every
// axis.
func (v Vec) LessEqual(q Vec) bool {
	if len(v) != len(q) {
		return false
	}
	for i := range v {
		if !(v[i] <= q[i]) {
			return false
		}
	}
	return true
}

// Real is a point on the real line.
type Real float64

func (r Real) Less(q Real) bool {
	return r < q
}

func (r Real) LessEqual(q Real) bool {
	return r <= q
}
