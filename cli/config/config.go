// Package config handles YAML config file loading for hashcli.
//
// A config file supplies defaults for the compute flags; CLI flags always
// override config values. The file is optional: a missing default config
// is not an error.
package config

import (
	"fmt"

	"github.com/asingingbird/hashcli/digest"
)

// DefaultFile is the config file looked up in the working directory when
// --config is not given.
const DefaultFile = "hashcli.yaml"

// Config represents a hashcli.yaml configuration file.
// All values are optional and act as defaults for compute flags.
type Config struct {
	Algorithm string `yaml:"algorithm"`
	Hex       bool   `yaml:"hex"`
	Update    bool   `yaml:"update"`
	Quiet     bool   `yaml:"quiet"`
	Verbose   bool   `yaml:"verbose"`
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if c.Algorithm != "" {
		if _, err := digest.ParseAlgorithm(c.Algorithm); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}
