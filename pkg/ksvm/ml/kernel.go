package ml

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Kernel defines a symmetric similarity function between two
// feature vectors.
type Kernel interface {
	Eval(x, y []float64) float64
}

// GaussianKernel implements the Gaussian (radial basis function)
// kernel k(x,y) = exp(-|x-y|^2/width).
type GaussianKernel struct {
	Width float64
}

// NewGaussianKernel creates a new Gaussian kernel with the given width.
func NewGaussianKernel(width float64) (*GaussianKernel, error) {
	if !(width > 0) || math.IsInf(width, 1) {
		return nil, fmt.Errorf("newGaussianKernel: invalid width %g", width)
	}
	return &GaussianKernel{Width: width}, nil
}

// Eval evaluates the kernel for the two given feature vectors.
func (k *GaussianKernel) Eval(x, y []float64) float64 {
	d := floats.Distance(x, y, 2)
	return math.Exp(-d * d / k.Width)
}

// KernelMatrix calculates the kernel matrix k(a_i,b_j) for the rows
// of a and b.  Blocks of rows are calculated in parallel.  It is an
// error if a or b has no rows.
func KernelMatrix(k Kernel, a, b *mat.Dense) (*mat.Dense, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra == 0 || rb == 0 {
		return nil, fmt.Errorf("kernelMatrix: empty input")
	}
	if ca != cb {
		return nil, fmt.Errorf("kernelMatrix: dimension mismatch: %d != %d", ca, cb)
	}
	out := mat.NewDense(ra, rb, nil)
	n := runtime.GOMAXPROCS(0)
	size := (ra + n - 1) / n
	var g errgroup.Group
	for from := 0; from < ra; from += size {
		from, to := from, from+size
		if to > ra {
			to = ra
		}
		g.Go(func() error {
			for i := from; i < to; i++ {
				x := a.RawRowView(i)
				row := out.RawRowView(i)
				for j := range row {
					row[j] = k.Eval(x, b.RawRowView(j))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("kernelMatrix: %v", err)
	}
	return out, nil
}
