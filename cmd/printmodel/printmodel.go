package printmodel

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~flobar/ksvm/pkg/ksvm"
	"git.sr.ht/~flobar/ksvm/pkg/ksvm/ml"
	"github.com/spf13/cobra"
)

// CMD runs the ksvm printmodel command.
var CMD = &cobra.Command{
	Use:   "printmodel [MODEL...]",
	Short: "Print information about a model",
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	for _, name := range args {
		model, err := ksvm.ReadModel(name)
		chk(err)
		chk(printmodel(os.Stdout, name, model))
	}
}

func printmodel(out io.Writer, name string, m *ksvm.Model) error {
	var width float64
	if k, ok := m.SVM.Kernel().(*ml.GaussianKernel); ok {
		width = k.Width
	}
	_, err := fmt.Fprintf(out, "%s id=%s created=%s width=%g C=%g epsilon=%g bias=%g nsv=%d\n",
		name, m.ID, m.Created.Format("2006-01-02T15:04:05Z"), width,
		m.SVM.C(), m.SVM.Epsilon(), m.SVM.Bias(), len(m.SVM.SupportVectors()))
	if err != nil {
		return err
	}
	alphas := m.SVM.Alphas()
	for i, sv := range m.SVM.SupportVectors() {
		if _, err := fmt.Fprintf(out, "%s sv(%d) %f\n", name, sv, alphas[i]); err != nil {
			return err
		}
	}
	return nil
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
