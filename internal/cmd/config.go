package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigView is the resolved top-level configuration, bound by main so
// commands do not depend on the CLI structure.
type ConfigView struct {
	Log LogView `json:"log" yaml:"log" toml:"log"`
}

// LogView mirrors the logging section of the configuration.
type LogView struct {
	Level string `json:"level" yaml:"level" toml:"level"`
	File  string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`
}

// Config renders the effective configuration in the requested format,
// suitable as a starting point for a config file.
type Config struct {
	Format string `help:"Output format" enum:"yaml,toml,json" default:"yaml"`
}

func (c *Config) Run(view ConfigView) error {
	var (
		out []byte
		err error
	)
	switch c.Format {
	case "toml":
		out, err = toml.Marshal(view)
	case "json":
		out, err = json.MarshalIndent(view, "", "  ")
		out = append(out, '\n')
	default:
		out, err = yaml.Marshal(view)
	}
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
