package common

import (
	"fmt"
	"io"
	"strings"
)

// PrintChainText writes a one-line summary such as "xs: [1 -> 2 -> 3] size=3".
func PrintChainText(chain *Chain, output io.Writer, options *PrintOptions) error {
	values := make([]string, 0, len(chain.Links))
	for _, link := range chain.Links {
		values = append(values, displayValue(link, options))
	}
	label := ""
	if chain.Name != "" {
		label = chain.Name + ": "
	}
	_, err := fmt.Fprintf(output, "%s[%s] size=%d\n", label, strings.Join(values, " -> "), chain.Size)
	return err
}
