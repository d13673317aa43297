package run

import (
	"io"
	"log"
	"os"

	"git.sr.ht/~flobar/ksvm/cmd/internal"
	"git.sr.ht/~flobar/ksvm/pkg/ksvm"
	"github.com/spf13/cobra"
)

// CMD defines the ksvm run command.
var CMD = &cobra.Command{
	Use:   "run",
	Short: "Train a classifier and classify the test features",
	Args:  cobra.NoArgs,
	Run:   run,
}

var flags = struct {
	internal.Flags
	values bool
}{}

func init() {
	flags.Init(CMD)
	CMD.Flags().BoolVarP(&flags.values, "values", "v", false,
		"print the decision values")
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Config()
	chk(err)
	chk(classify(os.Stdout, c.Params(), flags.values))
}

func classify(out io.Writer, p ksvm.Params, values bool) error {
	log.Printf("run: train=%s test=%s labels=%s width=%g C=%g epsilon=%g",
		p.Train, p.Test, p.Labels, p.Width, p.C, p.Epsilon)
	predictions, svm, _, err := ksvm.Run(p)
	if err != nil {
		return err
	}
	log.Printf("run: %d support vectors, %d predictions",
		len(svm.SupportVectors()), predictions.Len())
	return internal.WriteLabels(out, predictions, values)
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
