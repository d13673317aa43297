package ml

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	gold, _ := NewLabels([]float64{1, 1, -1, -1, 1})
	pred, _ := NewLabels([]float64{1, -1, -1, 1, 1})
	s, err := Evaluate(gold, pred)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if want := (Stats{TP: 2, TN: 1, FP: 1, FN: 1}); s != want {
		t.Fatalf("expected %+v; got %+v", want, s)
	}
	for _, tc := range []struct {
		name      string
		got, want float64
	}{
		{"accuracy", s.Accuracy(), .6},
		{"precision", s.Precision(), 2.0 / 3.0},
		{"recall", s.Recall(), 2.0 / 3.0},
		{"f1", s.F1(), 2.0 / 3.0},
	} {
		if math.Abs(tc.got-tc.want) > 1e-9 {
			t.Errorf("%s: expected %g; got %g", tc.name, tc.want, tc.got)
		}
	}
	short, _ := NewLabels([]float64{1})
	if _, err := Evaluate(gold, short); err == nil {
		t.Fatalf("expected error")
	}
}

func TestEmptyStats(t *testing.T) {
	var s Stats
	if s.Accuracy() != 0 || s.Precision() != 0 || s.Recall() != 0 || s.F1() != 0 {
		t.Fatalf("expected zero stats; got %+v", s)
	}
}
