// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, DefaultLogger(), FromContext(context.Background()))

	logger := zap.NewNop().Sugar()
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger(false))
	assert.True(t, NewLogger(true).Desugar().Core().Enabled(zap.DebugLevel))
	assert.False(t, NewLogger(false).Desugar().Core().Enabled(zap.DebugLevel))
}
