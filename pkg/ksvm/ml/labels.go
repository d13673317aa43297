package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Labels holds binary labels.  Labels that are the result of applying
// a classifier additionally carry the raw decision values.
type Labels struct {
	labels []float64
	values []float64
}

// NewLabels creates new binary labels.  All labels must be either -1
// or +1.
func NewLabels(labels []float64) (*Labels, error) {
	for i, l := range labels {
		if l != Negative && l != Positive {
			return nil, fmt.Errorf("newLabels: bad label %g at %d: not -1 or +1", l, i)
		}
	}
	return &Labels{labels: labels}, nil
}

// labelsFromValues builds the labels from the given decision values.
func labelsFromValues(values []float64) *Labels {
	labels := make([]float64, len(values))
	for i, v := range values {
		labels[i] = Sign(v)
	}
	return &Labels{labels: labels, values: values}
}

// Len returns the number of labels.
func (l *Labels) Len() int {
	return len(l.labels)
}

// At returns the i-th label.
func (l *Labels) At(i int) float64 {
	return l.labels[i]
}

// Labels returns a copy of the labels.
func (l *Labels) Labels() []float64 {
	return append([]float64(nil), l.labels...)
}

// Values returns a copy of the decision values or nil if the labels
// do not stem from a classifier.
func (l *Labels) Values() []float64 {
	if l.values == nil {
		return nil
	}
	return append([]float64(nil), l.values...)
}

// Vec returns the labels as vector.
func (l *Labels) Vec() *mat.VecDense {
	return mat.NewVecDense(len(l.labels), l.Labels())
}

// Count returns the number of negative and positive labels.
func (l *Labels) Count() (neg, pos int) {
	for _, x := range l.labels {
		if x == Positive {
			pos++
		} else {
			neg++
		}
	}
	return neg, pos
}
