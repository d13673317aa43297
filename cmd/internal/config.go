package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~flobar/ksvm/pkg/ksvm"
	"github.com/BurntSushi/toml"
)

// Config defines the command's configuration.
type Config struct {
	Train   string  `json:"train"`   // training features
	Test    string  `json:"test"`    // test features
	Labels  string  `json:"labels"`  // training labels
	Gold    string  `json:"gold"`    // test labels for evaluation
	Model   string  `json:"model"`   // model file
	Width   float64 `json:"width"`   // Gaussian kernel width
	C       float64 `json:"c"`       // regularization constant
	Epsilon float64 `json:"epsilon"` // convergence tolerance
}

// Params returns the run parameters of the configuration.  Unset
// values are taken from the default parameters.
func (c *Config) Params() ksvm.Params {
	p := ksvm.DefaultParams()
	UpdateInConfig(&p.Train, c.Train)
	UpdateInConfig(&p.Test, c.Test)
	UpdateInConfig(&p.Labels, c.Labels)
	UpdateInConfig(&p.Width, c.Width)
	UpdateInConfig(&p.C, c.C)
	UpdateInConfig(&p.Epsilon, c.Epsilon)
	return p
}

// UpdateInConfig overwrites *dest with val unless val is the zero
// value of its type.  Dest must point to a string, int, float64 or
// bool and val must have the pointed-to type; anything else panics.
func UpdateInConfig(dest, val interface{}) {
	switch p := dest.(type) {
	case *string:
		if v := val.(string); v != "" {
			*p = v
		}
	case *int:
		if v := val.(int); v != 0 {
			*p = v
		}
	case *float64:
		if v := val.(float64); v != 0 {
			*p = v
		}
	case *bool:
		if val.(bool) {
			*p = true
		}
	default:
		panic(fmt.Sprintf("cannot update config value of type %T", dest))
	}
}

// ReadConfig returns the configuration given by name.  An empty name
// gives the empty configuration.  A name enclosed in '{' and '}' is
// decoded as inline json.  Otherwise name is a file path, decoded as
// toml if it ends in .toml and as json else.
func ReadConfig(name string) (*Config, error) {
	var config Config
	var err error
	switch {
	case name == "":
	case strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}"):
		err = json.NewDecoder(strings.NewReader(name)).Decode(&config)
	default:
		err = decodeFile(name, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	return &config, nil
}

func decodeFile(path string, config *Config) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	if filepath.Ext(path) == ".toml" {
		_, err = toml.DecodeReader(in, config)
		return err
	}
	return json.NewDecoder(in).Decode(config)
}
