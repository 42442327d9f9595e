package common

import (
	"encoding/json"
	"io"
	"strings"
)

func PrintChainJSON(chain *Chain, output io.Writer, options *PrintOptions) error {
	encoder := json.NewEncoder(output)
	if options.Indent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", options.Indent))
	}
	return encoder.Encode(chain)
}

func ReadChainJSON(input io.Reader) (*Chain, error) {
	var chain Chain
	decoder := json.NewDecoder(input)
	err := decoder.Decode(&chain)
	if err != nil {
		return nil, err
	}
	return &chain, nil
}
