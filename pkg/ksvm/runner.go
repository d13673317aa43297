package ksvm

import (
	"path/filepath"

	"git.sr.ht/~flobar/ksvm/pkg/ksvm/ml"
	"gonum.org/v1/gonum/mat"
)

// Names of the bundled example data files.
const (
	TrainFile  = "fm_train_real.dat"
	TestFile   = "fm_test_real.dat"
	LabelFile  = "label_train_twoclass.dat"
	GoldFile   = "label_test_twoclass.dat"
	DefaultDir = "data"
)

// Params defines the input files and the hyperparameters of a
// classification run.
type Params struct {
	Train   string  `json:"train"`   // Path to the training features
	Test    string  `json:"test"`    // Path to the test features
	Labels  string  `json:"labels"`  // Path to the training labels
	Width   float64 `json:"width"`   // Width of the Gaussian kernel
	C       float64 `json:"c"`       // Regularization constant
	Epsilon float64 `json:"epsilon"` // Convergence tolerance
}

// DefaultParams returns the default parameters that point to the
// bundled example data.
func DefaultParams() Params {
	return ExampleParamsIn(DefaultDir)[0]
}

// ExampleParamsIn returns the built-in example parameter list with
// the bundled data files located in the given directory.
func ExampleParamsIn(dir string) []Params {
	mk := func(width float64) Params {
		return Params{
			Train:   filepath.Join(dir, TrainFile),
			Test:    filepath.Join(dir, TestFile),
			Labels:  filepath.Join(dir, LabelFile),
			Width:   width,
			C:       1,
			Epsilon: 1e-5,
		}
	}
	return []Params{mk(2.1), mk(2.2)}
}

// Run reads the training features, the test features and the training
// labels, trains a LibSVM classifier with a Gaussian kernel and
// applies it to the test features.  It returns the predictions, the
// trained classifier and the raw predicted labels.  Errors are
// returned unchanged.
func Run(p Params) (*ml.Labels, *ml.LibSVM, []float64, error) {
	x, err := ml.ReadMatrix(p.Train)
	if err != nil {
		return nil, nil, nil, err
	}
	test, err := ml.ReadMatrix(p.Test)
	if err != nil {
		return nil, nil, nil, err
	}
	labels, err := ml.ReadLabels(p.Labels)
	if err != nil {
		return nil, nil, nil, err
	}
	svm, err := train(p, x, labels)
	if err != nil {
		return nil, nil, nil, err
	}
	predictions, err := svm.Apply(test)
	if err != nil {
		return nil, nil, nil, err
	}
	return predictions, svm, predictions.Labels(), nil
}

func train(p Params, x *mat.Dense, labels *ml.Labels) (*ml.LibSVM, error) {
	kernel, err := ml.NewGaussianKernel(p.Width)
	if err != nil {
		return nil, err
	}
	svm := ml.NewLibSVM(p.C, kernel, labels)
	svm.SetEpsilon(p.Epsilon)
	if err := svm.Train(x); err != nil {
		return nil, err
	}
	Log("trained in %d iterations: %d support vectors, bias=%g",
		svm.Iterations(), len(svm.SupportVectors()), svm.Bias())
	if LogEnabled() {
		alphas := svm.Alphas()
		for i, sv := range svm.SupportVectors() {
			Log("support vector %d: alpha=%g", sv, alphas[i])
		}
	}
	return svm, nil
}
