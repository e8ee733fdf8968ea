// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver periodically feeds random components to a bounded
// mixture and samples the mixture's density on a lattice for
// display.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aclements/go-mixture/internal/logging"
	"github.com/aclements/go-mixture/mixture"
	"github.com/aclements/go-mixture/vec"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type component = mixture.Component[vec.Vec, float64]

// A Frame is the state of the mixture after one tick, sampled on the
// lattice Xs × Ys.
type Frame struct {
	Tick         int
	Observations int
	Xs, Ys       []float64

	// Mixture[j][i] is the mixture density at (Xs[i], Ys[j]).
	Mixture [][]float64

	// Components holds the newest observations, newest first, each
	// scaled by 1/Observations so it shows its share of Mixture.
	Components []Surface
}

// A Surface is one component's contribution to a Frame.
type Surface struct {
	ID uuid.UUID
	Z  [][]float64
}

type Option func(*Driver)

// WithComponentFunc replaces the Sampler as the source of new
// components.
func WithComponentFunc(f func() (component, error)) Option {
	return func(d *Driver) {
		d.next = f
	}
}

// Driver owns a mixture estimator and advances it one observation
// per tick. A Driver is not safe for concurrent use.
type Driver struct {
	cfg    *Config
	est    *mixture.Estimator[vec.Vec, float64]
	next   func() (component, error)
	labels []uuid.UUID // parallel to est's observations
	xs     []float64
	tick   int
}

// New returns a Driver for cfg with an empty mixture.
func New(cfg *Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	est, err := mixture.New[vec.Vec, float64](cfg.Lower, cfg.Upper)
	if err != nil {
		return nil, fmt.Errorf("mixture.New: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sampler := NewSampler(cfg, rand.NewSource(seed))
	d := &Driver{
		cfg: cfg,
		est: est,
		next: func() (component, error) {
			n, err := sampler.Component()
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		xs: vec.Linspace(-cfg.GridScale, cfg.GridScale, cfg.GridPoints),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Estimator returns the mixture d is driving. Callers may read it
// but must not Observe into it: d labels each observation it makes.
func (d *Driver) Estimator() *mixture.Estimator[vec.Vec, float64] {
	return d.est
}

// Tick observes one new component and returns the resulting frame.
//
// If the new component cannot be constructed, the tick observes
// nothing and the next tick tries again. Any other error from the
// component source is returned.
func (d *Driver) Tick(ctx context.Context) (Frame, error) {
	logger := logging.FromContext(ctx)
	d.tick++

	c, err := d.next()
	var cerr *mixture.ConstructionError
	switch {
	case errors.As(err, &cerr):
		logger.Warnw("discarding component", "tick", d.tick, "error", err)
	case err != nil:
		return Frame{}, fmt.Errorf("next component: %w", err)
	default:
		id := uuid.New()
		d.est.Observe(c)
		d.labels = append(d.labels, id)
		logger.Debugw("observed component", "tick", d.tick, "id", id, "observations", len(d.labels))
	}
	return d.frame(ctx)
}

func (d *Driver) frame(ctx context.Context) (Frame, error) {
	n := d.est.Len()
	f := Frame{
		Tick:         d.tick,
		Observations: n,
		Xs:           d.xs,
		Ys:           d.xs,
		Mixture:      make([][]float64, len(d.xs)),
	}
	recent := d.est.Recent(d.cfg.Recent)
	f.Components = make([]Surface, len(recent))

	g, ctx := errgroup.WithContext(ctx)
	for j, y := range f.Ys {
		j, y := j, y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f.Mixture[j] = d.est.DensityEach(vec.Lattice(f.Xs, []float64{y}))
			return nil
		})
	}
	for k, c := range recent {
		k, c := k, c
		f.Components[k].ID = d.labels[len(d.labels)-1-k]
		g.Go(func() error {
			z := make([][]float64, len(f.Ys))
			for j, y := range f.Ys {
				if err := ctx.Err(); err != nil {
					return err
				}
				z[j] = make([]float64, len(f.Xs))
				for i, x := range f.Xs {
					z[j][i] = c.Density(vec.Vec{x, y}) / float64(n)
				}
			}
			f.Components[k].Z = z
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// Run ticks every cfg.Interval and passes each frame to emit. It
// returns nil when ctx is cancelled or after cfg.Ticks ticks, and the
// error otherwise.
func (d *Driver) Run(ctx context.Context, emit func(Frame) error) error {
	logger := logging.FromContext(ctx)
	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Debugw("driver stopped", "ticks", d.tick)
			return nil
		case <-ticker.C:
			f, err := d.Tick(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("driver.Tick: %w", err)
			}
			if err := emit(f); err != nil {
				return fmt.Errorf("emit: %w", err)
			}
			if d.cfg.Ticks > 0 && f.Tick >= d.cfg.Ticks {
				logger.Infow("driver finished", "ticks", f.Tick, "observations", f.Observations)
				return nil
			}
		}
	}
}
