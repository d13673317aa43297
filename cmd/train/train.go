package train

import (
	"log"

	"git.sr.ht/~flobar/ksvm/cmd/internal"
	"git.sr.ht/~flobar/ksvm/pkg/ksvm"
	"github.com/spf13/cobra"
)

// CMD defines the ksvm train command.
var CMD = &cobra.Command{
	Use:   "train",
	Short: "Train a classifier and write the model",
	Args:  cobra.NoArgs,
	Run:   run,
}

var flags = struct {
	internal.Flags
	model string
}{}

func init() {
	flags.Init(CMD)
	CMD.Flags().StringVarP(&flags.model, "model", "M", "",
		"set the model path (overwrites the setting in the configuration file)")
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Config()
	chk(err)
	internal.UpdateInConfig(&c.Model, flags.model)
	if c.Model == "" {
		c.Model = "model.json.gz"
	}
	m, err := train(c.Params(), c.Model)
	chk(err)
	log.Printf("train: wrote model %s to %s", m.ID, c.Model)
}

func train(p ksvm.Params, path string) (*ksvm.Model, error) {
	log.Printf("train: train=%s labels=%s width=%g C=%g epsilon=%g",
		p.Train, p.Labels, p.Width, p.C, p.Epsilon)
	m, err := ksvm.Train(p)
	if err != nil {
		return nil, err
	}
	if err := m.Write(path); err != nil {
		return nil, err
	}
	return m, nil
}

func chk(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
