package internal

import (
	"fmt"
	"io"

	"git.sr.ht/~flobar/ksvm/pkg/ksvm/ml"
	"github.com/spf13/cobra"
)

// Version of ksvm.
const Version = "v0.1.0"

// Flags is used to define the standard command-line parameters for
// ksvm sub commands.  Set values overwrite the according settings in
// the configuration file.
type Flags struct {
	Params              string // Path to the configuration file
	Train, Test, Labels string // Paths to the data files
	Width, C, Epsilon   float64
}

// Init initializes the standard command line arguments for the given
// subcommand.
func (flags *Flags) Init(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flags.Params, "parameters", "P", "",
		"set path to configuration file")
	cmd.Flags().StringVarP(&flags.Train, "train", "x", "",
		"set path to the training features (overwrites the setting in the configuration file)")
	cmd.Flags().StringVarP(&flags.Test, "test", "t", "",
		"set path to the test features (overwrites the setting in the configuration file)")
	cmd.Flags().StringVarP(&flags.Labels, "labels", "y", "",
		"set path to the training labels (overwrites the setting in the configuration file)")
	cmd.Flags().Float64VarP(&flags.Width, "width", "w", 0,
		"set the kernel width (overwrites the setting in the configuration file)")
	cmd.Flags().Float64VarP(&flags.C, "cost", "C", 0,
		"set the regularization constant (overwrites the setting in the configuration file)")
	cmd.Flags().Float64VarP(&flags.Epsilon, "epsilon", "e", 0,
		"set the convergence tolerance (overwrites the setting in the configuration file)")
}

// Config reads the configuration file and overwrites its settings
// with the set command line arguments.
func (flags *Flags) Config() (*Config, error) {
	c, err := ReadConfig(flags.Params)
	if err != nil {
		return nil, err
	}
	UpdateInConfig(&c.Train, flags.Train)
	UpdateInConfig(&c.Test, flags.Test)
	UpdateInConfig(&c.Labels, flags.Labels)
	UpdateInConfig(&c.Width, flags.Width)
	UpdateInConfig(&c.C, flags.C)
	UpdateInConfig(&c.Epsilon, flags.Epsilon)
	return c, nil
}

// WriteLabels writes one label per line.  If values is set, the
// decision value is appended to each label.
func WriteLabels(out io.Writer, labels *ml.Labels, values bool) error {
	vs := labels.Values()
	for i := 0; i < labels.Len(); i++ {
		var err error
		if values && vs != nil {
			_, err = fmt.Fprintf(out, "%g %g\n", labels.At(i), vs[i])
		} else {
			_, err = fmt.Fprintf(out, "%g\n", labels.At(i))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
