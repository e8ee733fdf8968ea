// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mixwatch grows a bounded mixture by one random normal component
// per tick and prints the mixture's density on a lattice after each
// tick.
//
// It is configured through MIXWATCH_* environment variables; see
// driver.Config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aclements/go-mixture/internal/driver"
	"github.com/aclements/go-mixture/internal/logging"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer done()

	if err := run(ctx); err != nil {
		logging.FromContext(ctx).Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := driver.Load()
	if err != nil {
		return fmt.Errorf("driver.Load: %w", err)
	}
	logger := logging.NewLogger(cfg.Debug)
	defer logger.Sync()
	ctx = logging.WithLogger(ctx, logger)

	d, err := driver.New(cfg)
	if err != nil {
		return fmt.Errorf("driver.New: %w", err)
	}
	logger.Infow("starting", "interval", cfg.Interval, "ticks", cfg.Ticks, "lower", cfg.Lower, "upper", cfg.Upper)
	return d.Run(ctx, func(f driver.Frame) error {
		return driver.WriteFrame(os.Stdout, f)
	})
}
