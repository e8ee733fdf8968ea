// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupported         = errors.New("unsupported operation")
	ErrNotPositiveDefinite = errors.New("covariance is not positive definite")
	ErrDimension           = errors.New("dimension mismatch")
	ErrBadParameter        = errors.New("bad parameter")
	ErrBadBounds           = errors.New("lower bound exceeds upper bound")
)

// A ConstructionError reports that a Component could not be built
// from the given parameters.
type ConstructionError struct {
	Component string
	Err       error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("mixture: cannot construct %s: %v", e.Component, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// A ConfigError reports a malformed configuration value, such as an
// inverted bounding region.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mixture: bad %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
