package ml

import "math"

const tau = 1e-12

// solver solves the dual problem of the C-SVC
//
//	min 0.5 a^T Q a - e^T a  s.t.  y^T a = 0, 0 <= a_i <= C
//
// with Q_ij = y_i y_j k(x_i,x_j) using SMO with second order working
// set selection (Fan, Chen and Lin, JMLR 6 (2005), 1889-1918).
type solver struct {
	k      [][]float64 // kernel matrix rows
	y      []float64
	alpha  []float64
	grad   []float64
	c, eps float64
	iter   int
}

func newSolver(k [][]float64, y []float64, c, eps float64) *solver {
	s := &solver{
		k:     k,
		y:     y,
		alpha: make([]float64, len(y)),
		grad:  make([]float64, len(y)),
		c:     c,
		eps:   eps,
	}
	// All alphas start at 0, so the gradient is -e.
	for i := range s.grad {
		s.grad[i] = -1
	}
	return s
}

func (s *solver) q(i, j int) float64 {
	return s.y[i] * s.y[j] * s.k[i][j]
}

func (s *solver) upper(i int) bool {
	return s.alpha[i] >= s.c
}

func (s *solver) lower(i int) bool {
	return s.alpha[i] <= 0
}

// solve runs the optimization and returns false if it did not
// converge within maxIter iterations.
func (s *solver) solve(maxIter int) bool {
	for s.iter = 0; s.iter < maxIter; s.iter++ {
		i, j, ok := s.workingSet()
		if !ok {
			return true
		}
		s.update(i, j)
	}
	_, _, ok := s.workingSet()
	return !ok
}

// workingSet selects the maximal violating pair.  It returns false if
// the KKT conditions hold within eps.
func (s *solver) workingSet() (int, int, bool) {
	gmax, gmax2 := math.Inf(-1), math.Inf(-1)
	i := -1
	for t := range s.y {
		if s.y[t] > 0 {
			if !s.upper(t) && -s.grad[t] >= gmax {
				gmax = -s.grad[t]
				i = t
			}
		} else if !s.lower(t) && s.grad[t] >= gmax {
			gmax = s.grad[t]
			i = t
		}
	}
	j := -1
	objmin := math.Inf(1)
	for t := range s.y {
		var diff float64
		if s.y[t] > 0 {
			if s.lower(t) {
				continue
			}
			diff = gmax + s.grad[t]
			if s.grad[t] >= gmax2 {
				gmax2 = s.grad[t]
			}
		} else {
			if s.upper(t) {
				continue
			}
			diff = gmax - s.grad[t]
			if -s.grad[t] >= gmax2 {
				gmax2 = -s.grad[t]
			}
		}
		if i == -1 || diff <= 0 {
			continue
		}
		quad := s.k[i][i] + s.k[t][t] - 2*s.k[i][t]
		if quad <= 0 {
			quad = tau
		}
		if obj := -(diff * diff) / quad; obj <= objmin {
			objmin = obj
			j = t
		}
	}
	if gmax+gmax2 < s.eps || j == -1 {
		return -1, -1, false
	}
	return i, j, true
}

// update analytically solves the two variable sub problem for i and j
// and updates the gradient.
func (s *solver) update(i, j int) {
	ci, cj := s.c, s.c
	oldi, oldj := s.alpha[i], s.alpha[j]
	if s.y[i] != s.y[j] {
		quad := s.k[i][i] + s.k[j][j] + 2*s.q(i, j)
		if quad <= 0 {
			quad = tau
		}
		delta := (-s.grad[i] - s.grad[j]) / quad
		diff := s.alpha[i] - s.alpha[j]
		s.alpha[i] += delta
		s.alpha[j] += delta
		if diff > 0 {
			if s.alpha[j] < 0 {
				s.alpha[j] = 0
				s.alpha[i] = diff
			}
		} else if s.alpha[i] < 0 {
			s.alpha[i] = 0
			s.alpha[j] = -diff
		}
		if diff > ci-cj {
			if s.alpha[i] > ci {
				s.alpha[i] = ci
				s.alpha[j] = ci - diff
			}
		} else if s.alpha[j] > cj {
			s.alpha[j] = cj
			s.alpha[i] = cj + diff
		}
	} else {
		quad := s.k[i][i] + s.k[j][j] - 2*s.q(i, j)
		if quad <= 0 {
			quad = tau
		}
		delta := (s.grad[i] - s.grad[j]) / quad
		sum := s.alpha[i] + s.alpha[j]
		s.alpha[i] -= delta
		s.alpha[j] += delta
		if sum > ci {
			if s.alpha[i] > ci {
				s.alpha[i] = ci
				s.alpha[j] = sum - ci
			}
		} else if s.alpha[j] < 0 {
			s.alpha[j] = 0
			s.alpha[i] = sum
		}
		if sum > cj {
			if s.alpha[j] > cj {
				s.alpha[j] = cj
				s.alpha[i] = sum - cj
			}
		} else if s.alpha[i] < 0 {
			s.alpha[i] = 0
			s.alpha[j] = sum
		}
	}
	di, dj := s.alpha[i]-oldi, s.alpha[j]-oldj
	for t := range s.grad {
		s.grad[t] += s.q(i, t)*di + s.q(j, t)*dj
	}
}

// rho calculates the offset of the decision function
// f(x) = sum_i y_i a_i k(x_i,x) - rho.
func (s *solver) rho() float64 {
	ub, lb := math.Inf(1), math.Inf(-1)
	var sum float64
	var nfree int
	for i := range s.y {
		yg := s.y[i] * s.grad[i]
		switch {
		case s.upper(i):
			if s.y[i] < 0 {
				ub = math.Min(ub, yg)
			} else {
				lb = math.Max(lb, yg)
			}
		case s.lower(i):
			if s.y[i] > 0 {
				ub = math.Min(ub, yg)
			} else {
				lb = math.Max(lb, yg)
			}
		default:
			nfree++
			sum += yg
		}
	}
	if nfree > 0 {
		return sum / float64(nfree)
	}
	return (ub + lb) / 2
}
