package common

import (
	"io"

	"gopkg.in/yaml.v3"
)

func PrintChainYAML(chain *Chain, output io.Writer, options *PrintOptions) error {
	encoder := yaml.NewEncoder(output)
	if options.Indent > 0 {
		encoder.SetIndent(options.Indent)
	}
	if err := encoder.Encode(chain); err != nil {
		return err
	}
	return encoder.Close()
}
