package ksvm

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"git.sr.ht/~flobar/ksvm/pkg/ksvm/ml"
	"github.com/google/uuid"
)

// Model holds a trained classifier together with the parameters it
// was trained with.
type Model struct {
	ID      string     `json:"id"`
	Created time.Time  `json:"created"`
	Params  Params     `json:"params"`
	SVM     *ml.LibSVM `json:"svm"`
}

// NewModel creates a new model with a fresh id for the given trained
// classifier.
func NewModel(p Params, svm *ml.LibSVM) *Model {
	return &Model{
		ID:      uuid.New().String(),
		Created: time.Now().UTC(),
		Params:  p,
		SVM:     svm,
	}
}

// Train reads the training features and labels, trains a new
// classifier and returns the according model.  The test file of the
// parameters is ignored.
func Train(p Params) (*Model, error) {
	x, err := ml.ReadMatrix(p.Train)
	if err != nil {
		return nil, err
	}
	labels, err := ml.ReadLabels(p.Labels)
	if err != nil {
		return nil, err
	}
	svm, err := train(p, x, labels)
	if err != nil {
		return nil, err
	}
	return NewModel(p, svm), nil
}

// Apply reads the feature vectors from the given file and classifies
// them with the model's classifier.
func (m *Model) Apply(path string) (*ml.Labels, error) {
	x, err := ml.ReadMatrix(path)
	if err != nil {
		return nil, err
	}
	return m.SVM.Apply(x)
}

// ReadModel reads a model from a gzip compressed json file.
func ReadModel(path string) (*Model, error) {
	Log("reading model from %s", path)
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readModel %s: %v", path, err)
	}
	defer in.Close()
	zip, err := gzip.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("readModel %s: %v", path, err)
	}
	defer zip.Close()
	var m Model
	if err := json.NewDecoder(zip).Decode(&m); err != nil {
		return nil, fmt.Errorf("readModel %s: %v", path, err)
	}
	if m.SVM == nil {
		return nil, fmt.Errorf("readModel %s: missing classifier", path)
	}
	return &m, nil
}

// Write writes the model as json encoded, gziped file to the given
// path overwriting any previous existing models.
func (m *Model) Write(path string) (err error) {
	Log("writing model %s to %s", m.ID, path)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %v", path, err)
	}
	defer func() {
		if exx := out.Close(); exx != nil && err == nil {
			err = fmt.Errorf("write %s: %v", path, exx)
		}
	}()
	zip := gzip.NewWriter(out)
	defer func() {
		if exx := zip.Close(); exx != nil && err == nil {
			err = fmt.Errorf("write %s: %v", path, exx)
		}
	}()
	if err := json.NewEncoder(zip).Encode(m); err != nil {
		return fmt.Errorf("write %s: %v", path, err)
	}
	return nil
}
