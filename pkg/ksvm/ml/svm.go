package ml

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DefaultMaxIter is the default maximal number of optimization steps
// for the training of LibSVM classifiers.
const DefaultMaxIter = 10000000

// LibSVM implements a binary C-support vector classifier.
type LibSVM struct {
	kernel  Kernel
	labels  *Labels
	sv      *mat.Dense // support vectors (one per row)
	svIndex []int
	alphas  []float64
	bias    float64
	c, eps  float64
	iter    int
	trained bool
	MaxIter int
}

// NewLibSVM creates a new untrained classifier for the given
// regularization constant, kernel and training labels.  The
// convergence tolerance defaults to 1e-3.
func NewLibSVM(c float64, kernel Kernel, labels *Labels) *LibSVM {
	return &LibSVM{
		kernel:  kernel,
		labels:  labels,
		c:       c,
		eps:     1e-3,
		MaxIter: DefaultMaxIter,
	}
}

// SetEpsilon sets the convergence tolerance of the training.
func (svm *LibSVM) SetEpsilon(eps float64) {
	svm.eps = eps
}

// Epsilon returns the convergence tolerance.
func (svm *LibSVM) Epsilon() float64 {
	return svm.eps
}

// C returns the regularization constant.
func (svm *LibSVM) C() float64 {
	return svm.c
}

// Kernel returns the kernel of the classifier.
func (svm *LibSVM) Kernel() Kernel {
	return svm.kernel
}

// Trained returns true if the classifier has been trained.
func (svm *LibSVM) Trained() bool {
	return svm.trained
}

// Iterations returns the number of optimization steps of the last
// training.
func (svm *LibSVM) Iterations() int {
	return svm.iter
}

// SupportVectors returns the indices of the support vectors in the
// training data.
func (svm *LibSVM) SupportVectors() []int {
	return append([]int(nil), svm.svIndex...)
}

// Alphas returns the signed weights y_i*a_i of the support vectors.
func (svm *LibSVM) Alphas() []float64 {
	return append([]float64(nil), svm.alphas...)
}

// Bias returns the bias of the decision function.
func (svm *LibSVM) Bias() float64 {
	return svm.bias
}

// Train trains the classifier with the given training feature vectors
// (one per row).  The number of feature vectors must equal the number
// of training labels.  If the training fails, the classifier is left
// untrained.
func (svm *LibSVM) Train(x *mat.Dense) error {
	svm.trained = false
	if err := svm.check(x); err != nil {
		return fmt.Errorf("train: %v", err)
	}
	k, err := KernelMatrix(svm.kernel, x, x)
	if err != nil {
		return fmt.Errorf("train: %v", err)
	}
	r, _ := x.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = k.RawRowView(i)
	}
	s := newSolver(rows, svm.labels.Labels(), svm.c, svm.eps)
	ok := s.solve(svm.MaxIter)
	svm.iter = s.iter
	if !ok {
		return fmt.Errorf("train: %w after %d iterations", ErrNotConverged, s.iter)
	}
	svm.svIndex = svm.svIndex[:0]
	svm.alphas = svm.alphas[:0]
	for i, a := range s.alpha {
		if a > 0 {
			svm.svIndex = append(svm.svIndex, i)
			svm.alphas = append(svm.alphas, s.y[i]*a)
		}
	}
	svm.sv = nil
	if len(svm.svIndex) > 0 {
		_, c := x.Dims()
		svm.sv = mat.NewDense(len(svm.svIndex), c, nil)
		for i, idx := range svm.svIndex {
			svm.sv.SetRow(i, x.RawRowView(idx))
		}
	}
	svm.bias = -s.rho()
	svm.trained = true
	return nil
}

func (svm *LibSVM) check(x *mat.Dense) error {
	if svm.kernel == nil {
		return fmt.Errorf("missing kernel")
	}
	if svm.labels == nil {
		return fmt.Errorf("missing labels")
	}
	if !(svm.c > 0) {
		return fmt.Errorf("invalid C: %g", svm.c)
	}
	if !(svm.eps > 0) {
		return fmt.Errorf("invalid epsilon: %g", svm.eps)
	}
	if r, _ := x.Dims(); r != svm.labels.Len() {
		return fmt.Errorf("%d feature vectors but %d labels", r, svm.labels.Len())
	}
	if neg, pos := svm.labels.Count(); neg == 0 || pos == 0 {
		return fmt.Errorf("need samples of both classes: %d negative, %d positive", neg, pos)
	}
	return nil
}

// Apply classifies the given feature vectors (one per row).  The
// returned labels hold the decision values.  An empty matrix yields
// empty labels.
func (svm *LibSVM) Apply(x *mat.Dense) (*Labels, error) {
	if !svm.trained {
		return nil, fmt.Errorf("apply: %w", ErrUntrained)
	}
	r, c := x.Dims()
	values := make([]float64, r)
	if r == 0 || svm.sv == nil {
		for i := range values {
			values[i] = svm.bias
		}
		return labelsFromValues(values), nil
	}
	if _, svc := svm.sv.Dims(); svc != c {
		return nil, fmt.Errorf("apply: dimension mismatch: %d != %d", c, svc)
	}
	k, err := KernelMatrix(svm.kernel, x, svm.sv)
	if err != nil {
		return nil, fmt.Errorf("apply: %v", err)
	}
	out := mat.NewVecDense(r, values)
	out.MulVec(k, mat.NewVecDense(len(svm.alphas), svm.alphas))
	for i := range values {
		values[i] += svm.bias
	}
	return labelsFromValues(values), nil
}

type svmdata struct {
	Width          float64
	C              float64
	Epsilon        float64
	MaxIter        int
	Bias           float64
	Indices        []int
	Alphas         []float64
	SupportVectors [][]float64
}

func (svm *LibSVM) data() (svmdata, error) {
	k, ok := svm.kernel.(*GaussianKernel)
	if !ok {
		return svmdata{}, fmt.Errorf("cannot encode kernel %T", svm.kernel)
	}
	if !svm.trained {
		return svmdata{}, ErrUntrained
	}
	data := svmdata{
		Width:   k.Width,
		C:       svm.c,
		Epsilon: svm.eps,
		MaxIter: svm.MaxIter,
		Bias:    svm.bias,
		Indices: svm.SupportVectors(),
		Alphas:  svm.Alphas(),
	}
	for i := range svm.svIndex {
		data.SupportVectors = append(data.SupportVectors, svm.sv.RawRowView(i))
	}
	return data, nil
}

func (svm *LibSVM) setData(data svmdata) error {
	if len(data.Indices) != len(data.Alphas) || len(data.Alphas) != len(data.SupportVectors) {
		return fmt.Errorf("bad number of support vectors")
	}
	*svm = LibSVM{
		kernel:  &GaussianKernel{Width: data.Width},
		c:       data.C,
		eps:     data.Epsilon,
		MaxIter: data.MaxIter,
		bias:    data.Bias,
		svIndex: data.Indices,
		alphas:  data.Alphas,
		trained: true,
	}
	if len(data.SupportVectors) == 0 {
		return nil
	}
	c := len(data.SupportVectors[0])
	svm.sv = mat.NewDense(len(data.SupportVectors), c, nil)
	for i, row := range data.SupportVectors {
		if len(row) != c {
			return fmt.Errorf("bad support vector dimension")
		}
		svm.sv.SetRow(i, row)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (svm *LibSVM) MarshalJSON() ([]byte, error) {
	data, err := svm.data()
	if err != nil {
		return nil, fmt.Errorf("marshalJSON: %v", err)
	}
	return json.Marshal(data)
}

// GobEncode implements the GobEncoder interface.
func (svm *LibSVM) GobEncode() ([]byte, error) {
	data, err := svm.data()
	if err != nil {
		return nil, fmt.Errorf("gobEncode: %v", err)
	}
	var buf bytes.Buffer
	err = gob.NewEncoder(&buf).Encode(data)
	return buf.Bytes(), err
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (svm *LibSVM) UnmarshalJSON(data []byte) error {
	var tmp svmdata
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if err := svm.setData(tmp); err != nil {
		return fmt.Errorf("unmarshalJSON: %v", err)
	}
	return nil
}

// GobDecode implements the GobDecoder interface.
func (svm *LibSVM) GobDecode(data []byte) error {
	var tmp svmdata
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&tmp); err != nil {
		return err
	}
	if err := svm.setData(tmp); err != nil {
		return fmt.Errorf("gobDecode: %v", err)
	}
	return nil
}
