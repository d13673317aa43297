package ml

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadMatrix reads a feature matrix from a delimited text file.  See
// ParseMatrix for the format.
func ReadMatrix(path string) (*mat.Dense, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readMatrix %s: %v", path, err)
	}
	defer in.Close()
	x, err := ParseMatrix(in)
	if err != nil {
		return nil, fmt.Errorf("readMatrix %s: %v", path, err)
	}
	return x, nil
}

// ParseMatrix parses a feature matrix.  Each non empty line holds one
// feature vector.  The fields are separated by commas, semicolons or
// white space.  Lines starting with # are ignored.  All feature
// vectors must have the same dimension.
func ParseMatrix(in io.Reader) (*mat.Dense, error) {
	var data []float64
	var rows, cols int
	s := bufio.NewScanner(in)
	for lineno := 1; s.Scan(); lineno++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		n := len(data)
		var err error
		if data, err = parseLine(data, line); err != nil {
			return nil, fmt.Errorf("parseMatrix: line %d: %v", lineno, err)
		}
		if len(data) == n {
			return nil, fmt.Errorf("parseMatrix: line %d: no values", lineno)
		}
		if rows > 0 && len(data)-n != cols {
			return nil, fmt.Errorf("parseMatrix: line %d: bad dimension %d: expected %d",
				lineno, len(data)-n, cols)
		}
		cols = len(data) - n
		rows++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("parseMatrix: %v", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("parseMatrix: empty input")
	}
	return mat.NewDense(rows, cols, data), nil
}

func parseLine(data []float64, line string) ([]float64, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	for _, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse float: %q", field)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("non-finite value %q", field)
		}
		data = append(data, f)
	}
	return data, nil
}

// ReadLabels reads binary labels from a delimited text file.  See
// ParseLabels for the format.
func ReadLabels(path string) (*Labels, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readLabels %s: %v", path, err)
	}
	defer in.Close()
	labels, err := ParseLabels(in)
	if err != nil {
		return nil, fmt.Errorf("readLabels %s: %v", path, err)
	}
	return labels, nil
}

// ParseLabels parses binary labels.  The labels are given either one
// per line or as a single delimited line.  Each label must be -1 or
// +1.
func ParseLabels(in io.Reader) (*Labels, error) {
	x, err := ParseMatrix(in)
	if err != nil {
		return nil, fmt.Errorf("parseLabels: %v", err)
	}
	r, c := x.Dims()
	if r != 1 && c != 1 {
		return nil, fmt.Errorf("parseLabels: bad dimensions %dx%d", r, c)
	}
	labels, err := NewLabels(x.RawMatrix().Data)
	if err != nil {
		return nil, fmt.Errorf("parseLabels: %v", err)
	}
	return labels, nil
}
