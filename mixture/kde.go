// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-mixture/vec"
	"gonum.org/v1/gonum/stat"
)

// KDE represents options for constructing a kernel density estimate
// as a bounded mixture.
//
// Kernel density estimation constructs an estimate ƒ̂(x) of an
// unknown distribution ƒ(x) given a sample from that distribution.
// Here the estimate is an Estimator with one Gaussian kernel observed
// per sample point, so further observations can be added to it
// later.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the per-axis standard deviation of each
	// kernel. If it is nil, the bandwidth of each axis is
	// computed from the sample using Rule.
	Bandwidth []float64

	// Rule is the bandwidth estimator to use when Bandwidth is
	// nil. If it is nil, BandwidthScott is used.
	Rule func(xs []float64) float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(xs []float64) float64 {
	return 1.06 * stat.StdDev(xs, nil) * math.Pow(float64(len(xs)), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	iqr := stat.Quantile(0.75, stat.LinInterp, sorted, nil) - stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	hScale := 1.06 * math.Pow(float64(len(xs)), -1.0/5)
	stdDev := stat.StdDev(xs, nil)
	if iqr == 0 || stdDev < iqr/1.349 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	}
	// Use IQR/1.349 as a robust estimator of the standard
	// deviation of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// From returns a mixture over the bounding region [lo, hi] with one
// kernel observed for each point in sample.
//
// It returns a *ConstructionError if the sample is empty, if its
// points differ in dimension, or if a bandwidth is not positive. The
// latter happens when every point shares the same coordinate on some
// axis and Bandwidth is nil.
func (k KDE) From(sample []vec.Vec, lo, hi vec.Vec) (*Estimator[vec.Vec, float64], error) {
	const name = "kernel density estimate"
	e, err := New[vec.Vec, float64](lo, hi)
	if err != nil {
		return nil, err
	}
	if len(sample) == 0 {
		return nil, &ConstructionError{name, ErrBadParameter}
	}
	dim := sample[0].Dim()
	for _, p := range sample {
		if p.Dim() != dim {
			return nil, &ConstructionError{name, ErrDimension}
		}
	}

	h := k.Bandwidth
	if h == nil {
		rule := k.Rule
		if rule == nil {
			rule = BandwidthScott
		}
		h = make([]float64, dim)
		axis := make([]float64, len(sample))
		for i := range h {
			for j, p := range sample {
				axis[j] = p[i]
			}
			h[i] = rule(axis)
		}
	} else if len(h) != dim {
		return nil, &ConstructionError{name, ErrDimension}
	}

	variances := make([]float64, dim)
	for i, b := range h {
		if !(b > 0) || math.IsInf(b, 0) {
			return nil, &ConstructionError{name, fmt.Errorf("%w: bandwidth %v on axis %d", ErrBadParameter, b, i)}
		}
		variances[i] = b * b
	}
	for _, p := range sample {
		kernel, err := NewDiagNormal[float64](p, variances)
		if err != nil {
			return nil, err
		}
		e.Observe(kernel)
	}
	return e, nil
}
