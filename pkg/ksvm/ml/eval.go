package ml

import "fmt"

// Stats holds the confusion counts of a binary classification.  The
// positive class is +1.
type Stats struct {
	TP, TN, FP, FN int
}

// Evaluate compares the predicted labels with the gold labels.
func Evaluate(gold, predicted *Labels) (Stats, error) {
	if gold.Len() != predicted.Len() {
		return Stats{}, fmt.Errorf("evaluate: %d gold labels but %d predictions",
			gold.Len(), predicted.Len())
	}
	var s Stats
	for i := 0; i < gold.Len(); i++ {
		s.Add(gold.At(i), predicted.At(i))
	}
	return s, nil
}

// Add adds one (gold, prediction) pair to the stats.
func (s *Stats) Add(y, p float64) {
	switch {
	case y == Positive && p == Positive:
		s.TP++
	case y == Positive:
		s.FN++
	case p == Positive:
		s.FP++
	default:
		s.TN++
	}
}

// Total returns the number of evaluated pairs.
func (s Stats) Total() int {
	return s.TP + s.TN + s.FP + s.FN
}

// Accuracy returns the ratio of correct predictions.
func (s Stats) Accuracy() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.TP+s.TN) / float64(s.Total())
}

// Recall returns the recall of the positive class.
func (s Stats) Recall() float64 {
	if s.TP == 0 && s.FN == 0 {
		return 0
	}
	return float64(s.TP) / float64(s.TP+s.FN)
}

// Precision returns the precision of the positive class.
func (s Stats) Precision() float64 {
	if s.TP == 0 && s.FP == 0 {
		return 0
	}
	return float64(s.TP) / float64(s.TP+s.FP)
}

// F1 returns the harmonic mean of precision and recall.
func (s Stats) F1() float64 {
	p, r := s.Precision(), s.Recall()
	if p == 0 && r == 0 {
		return 0
	}
	return (2 * p * r) / (p + r)
}
