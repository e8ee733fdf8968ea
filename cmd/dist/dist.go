// dist reads points from stdin, one per line with whitespace-separated
// coordinates, and describes their distribution with a kernel
// density estimate.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-mixture/mixture"
	"github.com/aclements/go-mixture/vec"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Number of points per axis at which to sample the density.
const gridPoints = 20

func main() {
	sample, err := readInput(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(sample) == 0 {
		fmt.Fprintln(os.Stderr, "no input")
		os.Exit(1)
	}
	dim := sample[0].Dim()
	if dim != 1 && dim != 2 {
		fmt.Fprintf(os.Stderr, "cannot display %d-dimensional points\n", dim)
		os.Exit(1)
	}

	fmt.Printf("N %d\n", len(sample))
	lo, hi := make(vec.Vec, dim), make(vec.Vec, dim)
	axis := make([]float64, len(sample))
	for i := 0; i < dim; i++ {
		for j, p := range sample {
			axis[j] = p[i]
		}
		mean, std := stat.MeanStdDev(axis, nil)
		fmt.Printf("axis %d  mean %.6g  std dev %.6g  min %.6g  max %.6g\n", i, mean, std, floats.Min(axis), floats.Max(axis))

		// Expand the data range by 10% on each side to give
		// some margins.
		lo[i], hi[i] = floats.Min(axis), floats.Max(axis)
		width := hi[i] - lo[i]
		lo[i], hi[i] = lo[i]-0.1*width, hi[i]+0.1*width
	}
	fmt.Println()

	kde, err := mixture.KDE{}.From(sample, lo, hi)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	FprintDensity(os.Stdout, kde)
}

func readInput(r io.Reader) ([]vec.Vec, error) {
	var sample []vec.Vec
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		p := make(vec.Vec, len(fields))
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			p[i] = x
		}
		if len(sample) > 0 && p.Dim() != sample[0].Dim() {
			return nil, fmt.Errorf("line %d: want %d coordinates, got %d", line, sample[0].Dim(), p.Dim())
		}
		sample = append(sample, p)
	}
	return sample, scanner.Err()
}

// FprintDensity prints e's density over its bounding region. One-
// dimensional estimates are printed as an x, density table;
// two-dimensional ones as a grid with one row per y.
func FprintDensity(w io.Writer, e *mixture.Estimator[vec.Vec, float64]) {
	lo, hi := e.Bounds()
	xs := vec.Linspace(lo[0], hi[0], gridPoints)
	if lo.Dim() == 1 {
		pts := make([]vec.Vec, len(xs))
		for i, x := range xs {
			pts[i] = vec.Vec{x}
		}
		for i, y := range e.DensityEach(pts) {
			fmt.Fprintf(w, "%12.6g %12.6g\n", xs[i], y)
		}
		return
	}
	ys := vec.Linspace(lo[1], hi[1], gridPoints)
	zs := e.DensityEach(vec.Lattice(xs, ys))
	for j, y := range ys {
		fmt.Fprintf(w, "%10.4g", y)
		for i := range xs {
			fmt.Fprintf(w, " %9.4f", zs[j*len(xs)+i])
		}
		fmt.Fprintln(w)
	}
}
