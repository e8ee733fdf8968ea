// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"github.com/aclements/go-mixture/mixture"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws randomly-parameterized normal components: the mean
// is uniform over the bounding region and each axis variance is
// uniform over the configured variance range.
type Sampler struct {
	loc   []distuv.Uniform
	scale distuv.Uniform
}

// NewSampler returns a Sampler for cfg drawing from src.
func NewSampler(cfg *Config, src rand.Source) *Sampler {
	s := &Sampler{
		loc:   make([]distuv.Uniform, len(cfg.Lower)),
		scale: distuv.Uniform{Min: cfg.VarMin, Max: cfg.VarMax, Src: src},
	}
	for i := range s.loc {
		s.loc[i] = distuv.Uniform{Min: cfg.Lower[i], Max: cfg.Upper[i], Src: src}
	}
	return s
}

// Component returns a new component with a diagonal covariance.
func (s *Sampler) Component() (*mixture.Normal[float64], error) {
	mu := make([]float64, len(s.loc))
	variances := make([]float64, len(s.loc))
	for i := range mu {
		mu[i] = s.loc[i].Rand()
	}
	for i := range variances {
		variances[i] = s.scale.Rand()
	}
	return mixture.NewDiagNormal[float64](mu, variances)
}
