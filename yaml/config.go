// Package yaml loads enumgen configuration files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/enumgen"
	"gopkg.in/yaml.v3"
)

// ParseConfig decodes a YAML configuration over enumgen.DefaultConfig.
// Keys absent from the document keep their default; lists given in the
// document replace the default lists. Unknown keys are rejected.
func ParseConfig(r io.Reader) (*enumgen.Config, error) {
	cfg := enumgen.DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, enumgen.Errorf(enumgen.EINVALID, "invalid config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes the configuration file at path.
func LoadConfig(path string) (*enumgen.Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, enumgen.Errorf(enumgen.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	return ParseConfig(f)
}
