package main

import (
	"log"
	"os"

	"git.sr.ht/~flobar/ksvm/cmd/apply"
	"git.sr.ht/~flobar/ksvm/cmd/eval"
	"git.sr.ht/~flobar/ksvm/cmd/example"
	"git.sr.ht/~flobar/ksvm/cmd/printmodel"
	"git.sr.ht/~flobar/ksvm/cmd/run"
	"git.sr.ht/~flobar/ksvm/cmd/train"
	"git.sr.ht/~flobar/ksvm/cmd/version"
	"git.sr.ht/~flobar/ksvm/pkg/ksvm"
	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:   "ksvm",
	Short: "Binary support vector classification with a Gaussian kernel",
	Long: `Binary support vector classification with a Gaussian kernel.
Without a sub command, ksvm runs the built-in example with the bundled data.`,
	PersistentPreRun: func(*cobra.Command, []string) {
		ksvm.SetLog(flags.log)
	},
	Run: func(*cobra.Command, []string) {
		if err := example.Run(os.Stdout, ksvm.DefaultDir); err != nil {
			log.Fatalf("error: %v", err)
		}
	},
}

var flags = struct {
	log bool
}{}

func init() {
	root.PersistentFlags().BoolVarP(&flags.log, "log", "L", false, "enable debug logging")
	root.AddCommand(
		apply.CMD,
		eval.CMD,
		printmodel.CMD,
		run.CMD,
		train.CMD,
		version.CMD,
	)
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
