package eval

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"git.sr.ht/~flobar/ksvm/cmd/internal"
	"git.sr.ht/~flobar/ksvm/pkg/ksvm"
	"git.sr.ht/~flobar/ksvm/pkg/ksvm/ml"
	"github.com/spf13/cobra"
)

// CMD defines the ksvm eval command.
var CMD = &cobra.Command{
	Use:   "eval MODEL",
	Short: "Evaluate a model on labeled test data",
	Args:  cobra.ExactArgs(1),
	Run:   run,
}

var flags = struct {
	internal.Flags
	gold string
}{}

func init() {
	CMD.Flags().StringVarP(&flags.Params, "parameters", "P", "",
		"set path to configuration file")
	CMD.Flags().StringVarP(&flags.Test, "test", "t", "",
		"set path to the test features (overwrites the setting in the configuration file)")
	CMD.Flags().StringVarP(&flags.gold, "gold", "g", "",
		"set path to the test labels (overwrites the setting in the configuration file)")
}

func run(_ *cobra.Command, args []string) {
	c, err := flags.Config()
	chk(err)
	internal.UpdateInConfig(&c.Gold, flags.gold)
	m, err := ksvm.ReadModel(args[0])
	chk(err)
	test, gold := files(c, m)
	log.Printf("eval: model %s: test=%s gold=%s", m.ID, test, gold)
	s, err := eval(m, test, gold)
	chk(err)
	chk(write(os.Stdout, s, args[0]))
}

// files returns the test features and test labels.  The test
// features default to the model's test features, the test labels
// default to the bundled test labels.
func files(c *internal.Config, m *ksvm.Model) (test, gold string) {
	test = m.Params.Test
	internal.UpdateInConfig(&test, c.Test)
	gold = filepath.Join(ksvm.DefaultDir, ksvm.GoldFile)
	internal.UpdateInConfig(&gold, c.Gold)
	return test, gold
}

func eval(m *ksvm.Model, test, gold string) (ml.Stats, error) {
	labels, err := ml.ReadLabels(gold)
	if err != nil {
		return ml.Stats{}, err
	}
	predictions, err := m.Apply(test)
	if err != nil {
		return ml.Stats{}, err
	}
	return ml.Evaluate(labels, predictions)
}

func write(out io.Writer, s ml.Stats, name string) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(out, format, args...)
		}
	}
	for _, line := range []struct {
		key string
		val interface{}
	}{
		{"tp", s.TP}, {"fp", s.FP}, {"tn", s.TN}, {"fn", s.FN},
	} {
		printf("%s %s %d\n", name, line.key, line.val)
	}
	for _, line := range []struct {
		key string
		val float64
	}{
		{"acc", s.Accuracy()}, {"pr", s.Precision()}, {"re", s.Recall()}, {"f1", s.F1()},
	} {
		printf("%s %s %f\n", name, line.key, line.val)
	}
	return err
}

func chk(err error) {
	if err != nil {
		log.Fatalf("eval: %v", err)
	}
}
