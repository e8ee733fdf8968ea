// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec

// Linspace returns n points evenly spaced over the half-open
// interval [lo, hi). If n <= 0, it returns nil.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n)
	}
	return xs
}

// Lattice returns the 2-D grid xs × ys in row-major order: the
// point (xs[i], ys[j]) is at index j*len(xs)+i.
func Lattice(xs, ys []float64) []Vec {
	out := make([]Vec, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			out = append(out, Vec{x, y})
		}
	}
	return out
}
