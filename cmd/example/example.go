package example

import (
	"fmt"
	"io"

	"git.sr.ht/~flobar/ksvm/pkg/ksvm"
)

// Label is printed before the example is run.
const Label = "LibSVM"

// Run prints the label and runs the first built-in example parameter
// set with the data files in the given directory.
func Run(out io.Writer, dir string) error {
	if _, err := fmt.Fprintln(out, Label); err != nil {
		return err
	}
	_, _, _, err := ksvm.Run(ksvm.ExampleParamsIn(dir)[0])
	return err
}
