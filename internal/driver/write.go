// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"bufio"
	"fmt"
	"io"
)

// WriteFrame writes a text rendering of f to w: a header, the
// mixture density grid with one row per Ys value, and the peak of
// each recent component's surface.
func WriteFrame(w io.Writer, f Frame) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "tick %d  %06d observations\n", f.Tick, f.Observations)
	fmt.Fprintf(bw, "%8s", "y\\x")
	for _, x := range f.Xs {
		fmt.Fprintf(bw, " %9.3f", x)
	}
	fmt.Fprintln(bw)
	for j, row := range f.Mixture {
		fmt.Fprintf(bw, "%8.3f", f.Ys[j])
		for _, z := range row {
			fmt.Fprintf(bw, " %9.4f", z)
		}
		fmt.Fprintln(bw)
	}
	for _, s := range f.Components {
		peak := 0.0
		for _, row := range s.Z {
			for _, z := range row {
				if z > peak {
					peak = z
				}
			}
		}
		fmt.Fprintf(bw, "  component %s  peak %.4f\n", s.ID, peak)
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}
