package run

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"git.sr.ht/~flobar/ksvm/pkg/ksvm"
)

func TestClassify(t *testing.T) {
	p := ksvm.ExampleParamsIn(filepath.Join("..", "..", "data"))[0]
	for _, values := range []bool{false, true} {
		var buf bytes.Buffer
		if err := classify(&buf, p, values); err != nil {
			t.Fatalf("got error: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 20 {
			t.Fatalf("expected 20 lines; got %d", len(lines))
		}
		for _, line := range lines {
			fields := strings.Fields(line)
			if values && len(fields) != 2 || !values && len(fields) != 1 {
				t.Fatalf("bad line: %q", line)
			}
			if fields[0] != "1" && fields[0] != "-1" {
				t.Fatalf("bad label: %q", line)
			}
		}
	}
}

func TestClassifyMissingFile(t *testing.T) {
	p := ksvm.DefaultParams()
	p.Train = filepath.Join(t.TempDir(), "missing")
	var buf bytes.Buffer
	if err := classify(&buf, p, false); err == nil {
		t.Fatalf("expected error")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output; got %q", buf.String())
	}
}
