package ml

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	sepxs = mat.NewDense(8, 2, []float64{
		-2, -2,
		-2, -1,
		-1, -2,
		-3, -2,
		2, 2,
		2, 1,
		1, 2,
		3, 2,
	})
	sepys = []float64{-1, -1, -1, -1, 1, 1, 1, 1}
)

func trainSep(t *testing.T, width, c float64) *LibSVM {
	t.Helper()
	labels, err := NewLabels(sepys)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	svm := NewLibSVM(c, &GaussianKernel{Width: width}, labels)
	svm.SetEpsilon(1e-5)
	if err := svm.Train(sepxs); err != nil {
		t.Fatalf("got error: %v", err)
	}
	return svm
}

func TestLibSVMSeparable(t *testing.T) {
	svm := trainSep(t, 2.1, 1)
	if !svm.Trained() {
		t.Fatalf("expected trained classifier")
	}
	got, err := svm.Apply(sepxs)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if !reflect.DeepEqual(got.Labels(), sepys) {
		t.Fatalf("expected %v; got %v", sepys, got.Labels())
	}
	test := mat.NewDense(2, 2, []float64{-2, -1.5, 2, 1.5})
	got, err = svm.Apply(test)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if want := []float64{-1, 1}; !reflect.DeepEqual(got.Labels(), want) {
		t.Fatalf("expected %v; got %v", want, got.Labels())
	}
}

func TestLibSVMDualConstraints(t *testing.T) {
	for _, c := range []float64{.1, 1, 10} {
		svm := trainSep(t, 2.1, c)
		alphas := svm.Alphas()
		idx := svm.SupportVectors()
		if len(alphas) == 0 || len(alphas) != len(idx) {
			t.Fatalf("C=%g: bad number of support vectors: %d alphas, %d indices",
				c, len(alphas), len(idx))
		}
		for i, a := range alphas {
			if a == 0 || math.Abs(a) > c+1e-9 {
				t.Errorf("C=%g: alpha %g out of bounds", c, a)
			}
			if math.Signbit(a) != (sepys[idx[i]] < 0) {
				t.Errorf("C=%g: alpha %g has wrong sign for label %g", c, a, sepys[idx[i]])
			}
		}
		if sum := floats.Sum(alphas); math.Abs(sum) > 1e-6 {
			t.Errorf("C=%g: sum of alphas %g != 0", c, sum)
		}
	}
}

func TestLibSVMApplyConsistent(t *testing.T) {
	svm := trainSep(t, 2.1, 1)
	a, err := svm.Apply(sepxs)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	b, err := svm.Apply(sepxs)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if !reflect.DeepEqual(a.Values(), b.Values()) {
		t.Fatalf("expected %v; got %v", a.Values(), b.Values())
	}
	for i, v := range a.Values() {
		if Sign(v) != a.At(i) {
			t.Fatalf("label %g does not match decision value %g", a.At(i), v)
		}
	}
}

func TestLibSVMErrors(t *testing.T) {
	labels, _ := NewLabels(sepys)
	one, _ := NewLabels([]float64{1, 1, 1, 1, 1, 1, 1, 1})
	short, _ := NewLabels([]float64{1, -1})
	k := &GaussianKernel{Width: 2.1}
	for _, tc := range []struct {
		name string
		svm  *LibSVM
	}{
		{"missing kernel", NewLibSVM(1, nil, labels)},
		{"missing labels", NewLibSVM(1, k, nil)},
		{"bad C", NewLibSVM(0, k, labels)},
		{"bad number of labels", NewLibSVM(1, k, short)},
		{"one class", NewLibSVM(1, k, one)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.svm.Train(sepxs); err == nil {
				t.Fatalf("expected error")
			}
			if tc.svm.Trained() {
				t.Fatalf("expected untrained classifier")
			}
		})
	}
	svm := NewLibSVM(1, k, labels)
	svm.SetEpsilon(-1)
	if err := svm.Train(sepxs); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLibSVMUntrained(t *testing.T) {
	labels, _ := NewLabels(sepys)
	svm := NewLibSVM(1, &GaussianKernel{Width: 2.1}, labels)
	if _, err := svm.Apply(sepxs); !errors.Is(err, ErrUntrained) {
		t.Fatalf("expected %v; got %v", ErrUntrained, err)
	}
	if _, err := json.Marshal(svm); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLibSVMFailedRetrain(t *testing.T) {
	svm := trainSep(t, 2.1, 1)
	svm.MaxIter = 0
	if err := svm.Train(sepxs); !errors.Is(err, ErrNotConverged) {
		t.Fatalf("expected %v; got %v", ErrNotConverged, err)
	}
	if svm.Trained() {
		t.Fatalf("expected untrained classifier")
	}
	if _, err := svm.Apply(sepxs); !errors.Is(err, ErrUntrained) {
		t.Fatalf("expected %v; got %v", ErrUntrained, err)
	}
}

func TestLibSVMApplyEmpty(t *testing.T) {
	svm := trainSep(t, 2.1, 1)
	got, err := svm.Apply(&mat.Dense{})
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if got.Len() != 0 || len(got.Values()) != 0 {
		t.Fatalf("expected empty labels; got %v", got.Labels())
	}
}

func TestSign(t *testing.T) {
	for _, tc := range []struct {
		v, want float64
	}{
		{-1e-9, Negative},
		{0, Positive},
		{1e-9, Positive},
	} {
		if got := Sign(tc.v); got != tc.want {
			t.Errorf("sign(%g): expected %g; got %g", tc.v, tc.want, got)
		}
	}
}

func TestLibSVMNotConverged(t *testing.T) {
	labels, _ := NewLabels(sepys)
	svm := NewLibSVM(1, &GaussianKernel{Width: 2.1}, labels)
	svm.MaxIter = 0
	if err := svm.Train(sepxs); !errors.Is(err, ErrNotConverged) {
		t.Fatalf("expected %v; got %v", ErrNotConverged, err)
	}
}

func TestLibSVMDimensionMismatch(t *testing.T) {
	svm := trainSep(t, 2.1, 1)
	if _, err := svm.Apply(mat.NewDense(1, 3, []float64{1, 2, 3})); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLibSVMJSON(t *testing.T) {
	svm := trainSep(t, 2.1, 1)
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(svm); err != nil {
		t.Fatalf("got error: %v", err)
	}
	var svm2 LibSVM
	if err := json.NewDecoder(&buf).Decode(&svm2); err != nil {
		t.Fatalf("got error: %v", err)
	}
	checkSameModel(t, svm, &svm2)
}

func TestLibSVMGob(t *testing.T) {
	svm := trainSep(t, 2.2, 1)
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(svm); err != nil {
		t.Fatalf("got error: %v", err)
	}
	var svm2 LibSVM
	if err := gob.NewDecoder(&buf).Decode(&svm2); err != nil {
		t.Fatalf("got error: %v", err)
	}
	checkSameModel(t, svm, &svm2)
}

func checkSameModel(t *testing.T, a, b *LibSVM) {
	t.Helper()
	if a.C() != b.C() || a.Epsilon() != b.Epsilon() || a.Bias() != b.Bias() {
		t.Fatalf("expected %g/%g/%g; got %g/%g/%g",
			a.C(), a.Epsilon(), a.Bias(), b.C(), b.Epsilon(), b.Bias())
	}
	if !reflect.DeepEqual(a.Kernel(), b.Kernel()) {
		t.Fatalf("expected %v; got %v", a.Kernel(), b.Kernel())
	}
	if !reflect.DeepEqual(a.SupportVectors(), b.SupportVectors()) {
		t.Fatalf("expected %v; got %v", a.SupportVectors(), b.SupportVectors())
	}
	if !reflect.DeepEqual(a.Alphas(), b.Alphas()) {
		t.Fatalf("expected %v; got %v", a.Alphas(), b.Alphas())
	}
	pa, err := a.Apply(sepxs)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	pb, err := b.Apply(sepxs)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if !floats.EqualApprox(pa.Values(), pb.Values(), 1e-12) {
		t.Fatalf("expected %v; got %v", pa.Values(), pb.Values())
	}
}
