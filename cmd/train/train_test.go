package train

import (
	"path/filepath"
	"testing"

	"git.sr.ht/~flobar/ksvm/pkg/ksvm"
)

func TestTrain(t *testing.T) {
	p := ksvm.ExampleParamsIn(filepath.Join("..", "..", "data"))[1]
	path := filepath.Join(t.TempDir(), "model.json.gz")
	m, err := train(p, path)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	got, err := ksvm.ReadModel(path)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if got.ID != m.ID || got.Params != p {
		t.Fatalf("expected %s %+v; got %s %+v", m.ID, p, got.ID, got.Params)
	}
}

func TestTrainBadDir(t *testing.T) {
	p := ksvm.ExampleParamsIn(filepath.Join("..", "..", "data"))[0]
	path := filepath.Join(t.TempDir(), "missing", "model.json.gz")
	if _, err := train(p, path); err == nil {
		t.Fatalf("expected error")
	}
}
