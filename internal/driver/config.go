// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"fmt"
	"time"

	"github.com/aclements/go-mixture/mixture"
	"github.com/aclements/go-mixture/vec"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "MIXWATCH"

// Config configures a Driver.
type Config struct {
	// Interval is the time between ticks.
	Interval time.Duration `envconfig:"INTERVAL" default:"100ms"`
	// Ticks is the number of ticks to run. 0 means until
	// cancelled.
	Ticks int `envconfig:"TICKS" default:"0"`

	// Lower and Upper are the corners of the bounding region. New
	// component means are drawn uniformly from it.
	Lower []float64 `envconfig:"LOWER" default:"-1,-1"`
	Upper []float64 `envconfig:"UPPER" default:"1,1"`

	// New component variances are drawn uniformly from
	// [VarMin, VarMax) on each axis.
	VarMin float64 `envconfig:"VAR_MIN" default:"0.0001"`
	VarMax float64 `envconfig:"VAR_MAX" default:"0.1"`

	// The mixture is evaluated on a GridPoints×GridPoints lattice
	// over [-GridScale, GridScale).
	GridPoints int     `envconfig:"GRID_POINTS" default:"10"`
	GridScale  float64 `envconfig:"GRID_SCALE" default:"1"`

	// Recent is how many of the newest components get their own
	// surface in each frame.
	Recent int `envconfig:"RECENT" default:"10"`

	// Seed seeds the component sampler. 0 picks a seed from the
	// clock.
	Seed uint64 `envconfig:"SEED" default:"0"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Load reads a Config from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configErr(field string, err error) error {
	return &mixture.ConfigError{Field: field, Err: err}
}

// Validate checks c for values the driver cannot run with.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return configErr("interval", fmt.Errorf("%w: %v", mixture.ErrBadParameter, c.Interval))
	}
	if c.Ticks < 0 {
		return configErr("ticks", mixture.ErrBadParameter)
	}
	if len(c.Lower) != 2 || len(c.Upper) != 2 {
		return configErr("bounds", fmt.Errorf("%w: lattice is 2-D", mixture.ErrDimension))
	}
	if !vec.Vec(c.Lower).LessEqual(c.Upper) {
		return configErr("bounds", mixture.ErrBadBounds)
	}
	if !(c.VarMin > 0) || !(c.VarMax > c.VarMin) {
		return configErr("variance range", fmt.Errorf("%w: [%v, %v)", mixture.ErrBadParameter, c.VarMin, c.VarMax))
	}
	if c.GridPoints <= 0 || !(c.GridScale > 0) {
		return configErr("grid", mixture.ErrBadParameter)
	}
	if c.Recent < 0 {
		return configErr("recent", mixture.ErrBadParameter)
	}
	return nil
}
