package ml

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Predefined values for the two classes of binary labels.
const (
	Negative = float64(-1)
	Positive = float64(1)
)

// Errors reported by classifiers.
var (
	ErrUntrained    = errors.New("classifier is not trained")
	ErrNotConverged = errors.New("training did not converge")
)

// Bool converts a bool to the according binary label.
func Bool(t bool) float64 {
	if t {
		return Positive
	}
	return Negative
}

// Sign returns the binary label for the given decision value.  A
// decision value of 0 is positive.
func Sign(v float64) float64 {
	return Bool(v >= 0)
}

// Applier applies a trained classifier to feature vectors (one vector
// per row).
type Applier interface {
	Apply(x *mat.Dense) (*Labels, error)
}

// Trainer trains a classifier on feature vectors (one vector per row).
type Trainer interface {
	Train(x *mat.Dense) error
}
