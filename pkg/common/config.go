package common

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type PrintOptions struct {
	Format            string `yaml:"option-format,omitempty"`
	Indent            int    `yaml:"option-indent,omitempty"`
	IncludeTypes      bool   `yaml:"option-include-types,omitempty"`
	TrimTokenOnOutput int    `yaml:"option-trim-token-on-output,omitempty"`
}

// LoadPrintOptions loads print options from a YAML file.
func LoadPrintOptions(filename string) (*PrintOptions, error) {
	return LoadPrintOptionsOver(filename, PrintOptions{})
}

// LoadPrintOptionsOver loads print options from a YAML file. Settings the
// file leaves out keep their value from defaults; an explicit zero in the
// file still wins.
func LoadPrintOptionsOver(filename string, defaults PrintOptions) (*PrintOptions, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	options := defaults
	err = yaml.Unmarshal(data, &options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	return &options, nil
}
