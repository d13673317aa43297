package apply

import (
	"io"
	"log"
	"os"

	"git.sr.ht/~flobar/ksvm/cmd/internal"
	"git.sr.ht/~flobar/ksvm/pkg/ksvm"
	"github.com/spf13/cobra"
)

// CMD defines the ksvm apply command.
var CMD = &cobra.Command{
	Use:   "apply MODEL [FEATURES...]",
	Short: "Classify feature files with a trained model",
	Args:  cobra.MinimumNArgs(1),
	Run:   run,
}

var flags = struct {
	values bool
}{}

func init() {
	CMD.Flags().BoolVarP(&flags.values, "values", "v", false,
		"print the decision values")
}

func run(_ *cobra.Command, args []string) {
	m, err := ksvm.ReadModel(args[0])
	chk(err)
	files := args[1:]
	if len(files) == 0 {
		files = []string{m.Params.Test}
	}
	for _, file := range files {
		chk(apply(os.Stdout, m, file, flags.values))
	}
}

func apply(out io.Writer, m *ksvm.Model, file string, values bool) error {
	log.Printf("apply: model %s: %s", m.ID, file)
	labels, err := m.Apply(file)
	if err != nil {
		return err
	}
	return internal.WriteLabels(out, labels, values)
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
